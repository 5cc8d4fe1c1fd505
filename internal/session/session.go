// Package session owns the exercise state: whether it runs, the cycle origin,
// the press flag and the sync score.
package session

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/config"
)

// View is a read-only copy of the session used by the HUD.
type View struct {
	Active    bool
	Phase     breath.Phase
	Sync      int
	Pressing  bool
	Elapsed   time.Duration
	Remaining time.Duration
}

type Session struct {
	cycle breath.Cycle
	log   zerolog.Logger

	active  bool
	phase   breath.Phase
	hasOrig bool // false until the first tick after Start
	origin  time.Duration
	elapsed time.Duration
	sync    float64
	frame   breath.Frame

	pressing   bool
	pressStart time.Duration
}

func New(cycle breath.Cycle, log zerolog.Logger) *Session {
	return &Session{
		cycle: cycle,
		log:   log,
		phase: breath.PhaseReady,
		sync:  config.SyncMax,
		frame: breath.IdleFrame(),
	}
}

// Start begins a run. The cycle origin is taken from the next Tick so the
// first reported phase is always Inhale.
func (s *Session) Start() {
	s.active = true
	s.hasOrig = false
	s.elapsed = 0
	s.sync = config.SyncMax
	s.log.Info().Dur("period", s.cycle.Period()).Msg("session started")
}

// Reset stops the run and clears score and press state.
func (s *Session) Reset() {
	s.active = false
	s.hasOrig = false
	s.elapsed = 0
	s.phase = breath.PhaseReady
	s.sync = config.SyncMax
	s.frame = breath.IdleFrame()
	s.pressing = false
	s.log.Info().Msg("session reset")
}

func (s *Session) PressBegin(at time.Duration) {
	s.pressing = true
	s.pressStart = at
}

// PressEnd clears the flag. The press start timestamp is kept.
func (s *Session) PressEnd() {
	s.pressing = false
}

// Tick advances the session to now and returns the frame to draw.
func (s *Session) Tick(now time.Duration) breath.Frame {
	if !s.active {
		return s.frame
	}
	if !s.hasOrig {
		s.origin = now
		s.hasOrig = true
	}

	s.elapsed = now - s.origin
	f := s.cycle.Sample(s.elapsed)
	if f.Phase != s.phase {
		s.log.Debug().Stringer("from", s.phase).Stringer("to", f.Phase).Dur("elapsed", s.elapsed).Msg("phase")
	}
	s.phase = f.Phase
	s.frame = f

	if s.pressing {
		delta := -config.SyncPenalty
		if s.phase.InSyncWindow() {
			delta = config.SyncReward
		}
		s.sync = clamp(s.sync+delta*config.SyncRate, config.SyncMin, config.SyncMax)
	}
	return f
}

func (s *Session) Active() bool              { return s.active }
func (s *Session) Phase() breath.Phase       { return s.phase }
func (s *Session) Sync() float64             { return s.sync }
func (s *Session) Pressing() bool            { return s.pressing }
func (s *Session) PressStart() time.Duration { return s.pressStart }
func (s *Session) Frame() breath.Frame       { return s.frame }
func (s *Session) Elapsed() time.Duration    { return s.elapsed }

// SyncPercent is the score rounded for display.
func (s *Session) SyncPercent() int {
	return int(math.Round(s.sync))
}

func (s *Session) Snapshot() View {
	v := View{
		Active:   s.active,
		Phase:    s.phase,
		Sync:     s.SyncPercent(),
		Pressing: s.pressing,
		Elapsed:  s.elapsed,
	}
	if s.active && s.hasOrig {
		v.Remaining = s.cycle.Remaining(s.elapsed)
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
