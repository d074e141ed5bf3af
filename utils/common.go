package utils

import "math"

const (
	// STEPTOL absorbs round off when counting time steps across an interval
	STEPTOL = 1.e-9
)

// StepCount returns the number of dt steps needed to cover [tStart, tEnd]
func StepCount(tStart, tEnd, dt float64) int {
	return int(math.Ceil((tEnd-tStart)/dt - STEPTOL))
}

// BLASBackend names the BLAS implementation behind the dense solves
var BLASBackend = "gonum (pure Go)"
