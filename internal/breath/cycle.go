package breath

import (
	"time"

	"github.com/iburimskiy/breathing-bubble/internal/config"
)

// Cycle holds the durations of the four breathing phases.
type Cycle struct {
	Inhale time.Duration
	Hold   time.Duration
	Exhale time.Duration
	Rest   time.Duration
}

// Frame is the state of the cycle at one instant.
type Frame struct {
	Phase    Phase
	Progress float64 // 0 at phase start, approaching 1 at phase end
	Scale    float64
	Glow     float64
}

func DefaultCycle() Cycle {
	return Cycle{
		Inhale: config.InhaleDuration,
		Hold:   config.HoldDuration,
		Exhale: config.ExhaleDuration,
		Rest:   config.RestDuration,
	}
}

// IdleFrame is drawn while no session is running.
func IdleFrame() Frame {
	return Frame{Phase: PhaseReady, Scale: config.ScaleMin, Glow: config.GlowMin}
}

// Period is the length of one full cycle.
func (c Cycle) Period() time.Duration {
	return c.Inhale + c.Hold + c.Exhale + c.Rest
}

// Boundaries returns the cumulative end offsets of inhale, hold, exhale and rest.
func (c Cycle) Boundaries() [4]time.Duration {
	return [4]time.Duration{
		c.Inhale,
		c.Inhale + c.Hold,
		c.Inhale + c.Hold + c.Exhale,
		c.Period(),
	}
}

// position locates elapsed within the cycle: the phase, when it started and
// how long it lasts.
func (c Cycle) position(elapsed time.Duration) (Phase, time.Duration, time.Duration, time.Duration) {
	period := c.Period()
	if period <= 0 {
		return PhaseRest, 0, 0, 0
	}
	t := elapsed % period
	if t < 0 {
		t += period
	}

	b := c.Boundaries()
	switch {
	case t < b[0]:
		return PhaseInhale, t, 0, c.Inhale
	case t < b[1]:
		return PhaseHold, t, b[0], c.Hold
	case t < b[2]:
		return PhaseExhale, t, b[1], c.Exhale
	default:
		return PhaseRest, t, b[2], c.Rest
	}
}

// Sample computes the frame for elapsed time since the session origin.
func (c Cycle) Sample(elapsed time.Duration) Frame {
	phase, t, start, length := c.position(elapsed)

	progress := 0.0
	if length > 0 {
		progress = float64(t-start) / float64(length)
	}

	f := Frame{Phase: phase, Progress: progress}
	switch phase {
	case PhaseInhale:
		eased := EaseInOutCubic(progress)
		f.Scale = config.ScaleMin + eased*(config.ScaleMax-config.ScaleMin)
		f.Glow = config.GlowMin + eased*(config.GlowMax-config.GlowMin)
	case PhaseHold:
		f.Scale = config.ScaleMax
		f.Glow = config.GlowMax
	case PhaseExhale:
		eased := EaseOutQuad(progress)
		f.Scale = config.ScaleMax - eased*(config.ScaleMax-config.ScaleMin)
		f.Glow = config.GlowMax - eased*(config.GlowMax-config.GlowMin)
	default:
		f.Scale = config.ScaleMin
		f.Glow = config.GlowMin
	}
	return f
}

// Remaining returns the time left in the phase elapsed falls into.
func (c Cycle) Remaining(elapsed time.Duration) time.Duration {
	_, t, start, length := c.position(elapsed)
	return start + length - t
}
