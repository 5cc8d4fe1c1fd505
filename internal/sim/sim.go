// Package sim drives a session headlessly at a fixed tick rate with a scripted
// press schedule.
package sim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/session"
)

// Window is a span of session time during which the press is held.
type Window struct {
	From, To time.Duration
}

func (w Window) contains(t time.Duration) bool {
	return t >= w.From && t < w.To
}

// ParseWindows reads a comma separated list like "2s-6s,14.5s-18s".
func ParseWindows(s string) ([]Window, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []Window
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		from, to, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("invalid press window %q: expected FROM-TO", part)
		}
		f, err := time.ParseDuration(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("invalid press window %q: %w", part, err)
		}
		t, err := time.ParseDuration(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("invalid press window %q: %w", part, err)
		}
		if f < 0 || t <= f {
			return nil, fmt.Errorf("invalid press window %q: end must follow start", part)
		}
		out = append(out, Window{From: f, To: t})
	}
	return out, nil
}

type Options struct {
	Duration time.Duration
	Presses  []Window
	TPS      int
	// SampleEvery controls how often a Sample is recorded, in ticks.
	SampleEvery int
}

// Sample is the session state after one tick.
type Sample struct {
	At       time.Duration
	Phase    breath.Phase
	Scale    float64
	Sync     float64
	Pressing bool
}

type Result struct {
	Samples        []Sample
	Ticks          int
	InWindowTicks  int // ticks pressed during inhale or hold
	OffWindowTicks int // ticks pressed during exhale or rest
	Final          float64
}

var ErrNoTicks = errors.New("tick rate must be positive")

// Run starts s and ticks it until opts.Duration. Cancelling ctx stops the run
// and returns what was recorded so far together with the context error.
func Run(ctx context.Context, s *session.Session, opts Options) (Result, error) {
	if opts.TPS <= 0 {
		return Result{}, ErrNoTicks
	}
	every := opts.SampleEvery
	if every <= 0 {
		every = opts.TPS
	}
	dt := time.Second / time.Duration(opts.TPS)
	clock := &session.ManualClock{}

	var res Result
	s.Start()

	pressed := false
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			res.Final = s.Sync()
			return res, err
		}
		clock.Set(time.Duration(i) * dt)
		now := clock.Now()
		if now > opts.Duration {
			break
		}

		want := false
		for _, w := range opts.Presses {
			if w.contains(now) {
				want = true
				break
			}
		}
		if want && !pressed {
			s.PressBegin(now)
		} else if !want && pressed {
			s.PressEnd()
		}
		pressed = want

		f := s.Tick(now)
		res.Ticks++
		if pressed {
			if f.Phase.InSyncWindow() {
				res.InWindowTicks++
			} else {
				res.OffWindowTicks++
			}
		}
		if i%every == 0 {
			res.Samples = append(res.Samples, Sample{
				At:       now,
				Phase:    f.Phase,
				Scale:    f.Scale,
				Sync:     s.Sync(),
				Pressing: pressed,
			})
		}
	}
	res.Final = s.Sync()
	return res, nil
}
