// Package level contains the pet leveling curve.
package level

import (
	"math"
)

// FromXP converts accumulated experience to a level.
// The curve is floor(sqrt(xp/2))+1, so it is monotonic and starts at 1.
func FromXP(xp uint64) uint8 {
	l := math.Floor(math.Sqrt(float64(xp)/2)) + 1

	if l > math.MaxUint8 {
		return math.MaxUint8
	}

	return uint8(l)
}

// Threshold returns the xp value at which FromXP first exceeds the given level.
// It is used for progress-bar display only, never for gating.
func Threshold(level uint8) uint64 {
	return uint64(level) * uint64(level) * 2
}

// Stage converts a level to a coarse visual tier, capped at 7.
func Stage(level uint8) uint8 {
	s := level / 10
	if s > 7 {
		return 7
	}

	return s
}
