package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "window", false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged at info level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "window") {
		t.Fatalf("expected info line tagged with component: %s", out)
	}

	buf.Reset()
	log = NewWithWriter(&buf, "simulate", true)
	log.Debug().Msg("phase")
	if !strings.Contains(buf.String(), "phase") {
		t.Fatalf("expected debug line when verbose: %s", buf.String())
	}
}
