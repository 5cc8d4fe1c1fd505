package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/canvas"
	"github.com/iburimskiy/breathing-bubble/internal/sim"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"snapshot", "simulate"} {
		if !names[want] {
			t.Fatalf("missing subcommand %q", want)
		}
	}
}

func TestSimulateCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"simulate", "--duration", "8s", "--press", "6s-8s"})
	if err := root.Execute(); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	got := out.String()
	for _, want := range []string{"phase", "Inhale", "Hold", "Exhale", "final sync"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
}

func TestSimulateRejectsBadWindows(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"simulate", "--press", "9s-2s"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for reversed window")
	}
}

func TestRenderReport(t *testing.T) {
	res := sim.Result{
		Samples: []sim.Sample{
			{At: 0, Phase: breath.PhaseInhale, Scale: 1, Sync: 100},
			{At: 7 * time.Second, Phase: breath.PhaseExhale, Scale: 1.4, Sync: 88, Pressing: true},
		},
		Ticks:          421,
		OffWindowTicks: 60,
		Final:          88,
	}
	got := renderReport(res)
	for _, want := range []string{"Inhale", "Exhale", "held", "88%", "held off window 1.0s", "ticks 421"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
}

func TestSnapshotCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	root := newRootCmd()
	root.SetArgs([]string{"snapshot", "--at", "9s", "--width", "160", "--height", "120", "-o", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty PNG")
	}
}

func TestRenderSnapshotIsDeterministic(t *testing.T) {
	fonts, err := canvas.NewFonts()
	if err != nil {
		t.Fatalf("fonts: %v", err)
	}
	a := renderSnapshot(fonts, 120, 90, 3*time.Second, 4).RGBA()
	b := renderSnapshot(fonts, 120, 90, 3*time.Second, 4).RGBA()
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("same seed and time should render identical frames")
	}
}
