package FD1D

import (
	"errors"
	"fmt"
)

var ErrAccuracy = errors.New("FD1D: accuracy must be at least 1")

// InflatedAccuracy is the stencil length used to reach the requested accuracy
// for a derivative of the given order
func InflatedAccuracy(order, acc int) int {
	if acc < order {
		return order + 2
	}
	return acc + order
}

/*
GenerateWeights computes Fornberg's finite difference weights around x0 = 0.
The result C[n][nu][m] is the weight of points[nu] in the m-th derivative
approximation that uses the first n+1 points, for n <= accuracy and
m <= min(order, accuracy).
*/
func GenerateWeights(order, accuracy int, points []int) (C [][][]float64) {
	var (
		nm = min(order, accuracy) + 1
		c1 = 1.
	)
	if len(points) < accuracy+1 {
		panic(fmt.Errorf("need %d points for accuracy %d, have %d", accuracy+1, accuracy, len(points)))
	}
	C = make([][][]float64, accuracy+1)
	for n := range C {
		C[n] = make([][]float64, accuracy+1)
		for nu := range C[n] {
			C[n][nu] = make([]float64, nm)
		}
	}
	C[0][0][0] = 1
	for n := 0; n < accuracy; n++ {
		var (
			nt  = n + 1
			c2  = 1.
			xnt = float64(points[nt])
		)
		for nu := 0; nu < nt; nu++ {
			c3 := xnt - float64(points[nu])
			c2 *= c3
			for m := 0; m <= min(nt, order); m++ {
				val := xnt * C[nt-1][nu][m]
				if m > 0 {
					val -= float64(m) * C[nt-1][nu][m-1]
				}
				C[nt][nu][m] = val / c3
			}
		}
		xprev := float64(points[nt-1])
		for m := 0; m <= min(nt, order); m++ {
			val := -xprev * C[nt-1][nt-1][m]
			if m > 0 {
				val += float64(m) * C[nt-1][nt-1][m-1]
			}
			C[nt][nt][m] = c1 / c2 * val
		}
		c1 = c2
	}
	return
}

// firstNonZeroRow finds the shortest stencil able to express derivative m
func firstNonZeroRow(C [][][]float64, m int) int {
	for n := range C {
		for nu := range C[n] {
			if C[n][nu][m] != 0 {
				return n
			}
		}
	}
	return -1
}

/*
SelectWeights extracts, for each derivative 0..order, the weight vector of the
stencil that reaches accuracy acc, scaled by that derivative's coefficient in
coeffs (coeffs[d+1] multiplies the d-th derivative, as in an Equation side).
*/
func SelectWeights(coeffs []float64, method Method, acc int) (weights [][]float64, points []int, err error) {
	var (
		order = len(coeffs) - 2
	)
	if acc < 1 {
		err = fmt.Errorf("%w, have %d", ErrAccuracy, acc)
		return
	}
	if order < 0 {
		err = fmt.Errorf("%w: need at least a constant and a U coefficient, have %v", ErrDegenerateEquation, coeffs)
		return
	}
	accuracy := InflatedAccuracy(order, acc)
	points = method.Points(accuracy)
	C := GenerateWeights(order, accuracy, points)
	points = points[:accuracy+1]
	weights = make([][]float64, order+1)
	for d := range weights {
		row := firstNonZeroRow(C, d) + acc - 1
		weights[d] = make([]float64, accuracy+1)
		for nu := range weights[d] {
			weights[d][nu] = C[row][nu][d] * coeffs[d+1]
		}
	}
	return
}
