package breath

import "math"

// EaseInOutCubic accelerates through the first half of t and decelerates
// through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad starts fast and settles towards 1.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
