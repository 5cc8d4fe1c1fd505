// Package breath maps elapsed time onto the four-phase breathing cycle and
// derives the bubble animation parameters for each moment of it.
package breath

// Phase is a segment of the breathing cycle. PhaseReady is reported while no
// session is running.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseInhale
	PhaseHold
	PhaseExhale
	PhaseRest
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "Inhale"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Exhale"
	case PhaseRest:
		return "Rest"
	default:
		return "Ready"
	}
}

// InSyncWindow reports whether pressing during p counts towards the sync score.
func (p Phase) InSyncWindow() bool {
	return p == PhaseInhale || p == PhaseHold
}
