package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/session"
)

func newSession() *session.Session {
	return session.New(breath.DefaultCycle(), zerolog.Nop())
}

func TestParseWindows(t *testing.T) {
	ws, err := ParseWindows("2s-6s, 14.5s-18s")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ws) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(ws))
	}
	if ws[1].From != 14500*time.Millisecond || ws[1].To != 18*time.Second {
		t.Fatalf("unexpected window %+v", ws[1])
	}

	empty, err := ParseWindows("  ")
	if err != nil || empty != nil {
		t.Fatalf("expected no windows, got %v %v", empty, err)
	}

	for _, bad := range []string{"2s", "x-3s", "2s-y", "5s-3s", "-1s-2s"} {
		if _, err := ParseWindows(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRunWithoutPressKeepsFullScore(t *testing.T) {
	res, err := Run(context.Background(), newSession(), Options{Duration: 14 * time.Second, TPS: 60})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Final != 100 {
		t.Fatalf("expected 100, got %v", res.Final)
	}
	if res.Ticks != 14*60+1 {
		t.Fatalf("expected %d ticks, got %d", 14*60+1, res.Ticks)
	}
	if len(res.Samples) != 15 {
		t.Fatalf("expected one sample per second, got %d", len(res.Samples))
	}
	if res.Samples[0].Phase != breath.PhaseInhale || res.Samples[5].Phase != breath.PhaseHold {
		t.Fatalf("unexpected phases %s %s", res.Samples[0].Phase, res.Samples[5].Phase)
	}
}

func TestRunScoresPressWindows(t *testing.T) {
	ws, _ := ParseWindows("7s-10s")
	res, err := Run(context.Background(), newSession(), Options{Duration: 12 * time.Second, Presses: ws, TPS: 60})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.InWindowTicks != 0 || res.OffWindowTicks != 180 {
		t.Fatalf("expected 180 off-window ticks, got in=%d off=%d", res.InWindowTicks, res.OffWindowTicks)
	}
	if res.Final < 63.9 || res.Final > 64.1 {
		t.Fatalf("expected about 64, got %v", res.Final)
	}
	for _, s := range res.Samples {
		if s.Sync < 0 || s.Sync > 100 {
			t.Fatalf("sync out of range at %v: %v", s.At, s.Sync)
		}
	}
}

func TestRunHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, newSession(), Options{Duration: time.Minute, TPS: 60})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Ticks != 0 {
		t.Fatalf("expected no ticks, got %d", res.Ticks)
	}
}

func TestRunRejectsZeroTPS(t *testing.T) {
	if _, err := Run(context.Background(), newSession(), Options{Duration: time.Second}); !errors.Is(err, ErrNoTicks) {
		t.Fatalf("expected ErrNoTicks, got %v", err)
	}
}
