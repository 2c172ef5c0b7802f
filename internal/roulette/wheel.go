package roulette

import "math"

// ExtraTurns is the number of full turns added before the wheel settles
const ExtraTurns = 5

const fullTurn = 360.0

// SegmentAngle is the width of one wedge in degrees
func SegmentAngle(n int) float64 {
	return fullTurn / float64(n)
}

// TargetAngle is the clockwise rotation that puts the middle of wedge i under
// the pointer at the top of the wheel.
func TargetAngle(i, n int) float64 {
	seg := SegmentAngle(n)
	return fullTurn - float64(i)*seg - seg/2
}

// Rotation is the total rotation for a spin that lands on wedge i.
// Spins always start from a wheel resting at 0.
func Rotation(i, n int) float64 {
	return ExtraTurns*fullTurn + TargetAngle(i, n)
}

// WedgeAt returns the wedge under the pointer after the wheel turned by rotation degrees.
func WedgeAt(rotation float64, n int) int {
	turned := math.Mod(rotation, fullTurn)
	if turned < 0 {
		turned += fullTurn
	}
	under := math.Mod(fullTurn-turned, fullTurn)
	i := int(math.Floor(under / SegmentAngle(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
