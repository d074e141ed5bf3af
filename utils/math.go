package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// RoundTo rounds x to the given number of decimals
func RoundTo[T constraints.Float](x T, decimals int) T {
	scale := math.Pow(10, float64(decimals))
	return T(math.Round(float64(x)*scale) / scale)
}

func NearlyEqual[T constraints.Float](a, b, tol T) bool {
	scale := T(math.Max(1, math.Max(float64(Abs(a)), float64(Abs(b)))))
	return Abs(a-b) <= tol*scale
}
