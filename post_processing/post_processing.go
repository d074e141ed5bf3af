package post_processing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofd/utils"
)

// Marched is a problem that has been stepped in time
type Marched interface {
	Grid() []float64
	Times() []float64
	History() []utils.Vector
	FullDomain(u utils.Vector) ([]float64, error)
}

// FullHistory returns every level of the history on the whole grid, one row per
// time level
func FullHistory(p Marched) (R utils.Matrix, err error) {
	var (
		history = p.History()
		Ngrid   = len(p.Grid())
		full    []float64
	)
	if len(history) == 0 {
		err = ErrNoSolution
		return
	}
	R = utils.NewMatrix(len(history), Ngrid)
	for n, u := range history {
		if full, err = p.FullDomain(u); err != nil {
			return
		}
		if len(full) != Ngrid {
			err = fmt.Errorf("level %d covers %d grid points of %d", n, len(full), Ngrid)
			return
		}
		R.M.SetRow(n, full)
	}
	return
}

// ErrorNorm is the Frobenius norm of the difference between the full domain
// history and the exact solution, taken over every level
func ErrorNorm(p Marched, exact Exact) (norm float64, err error) {
	var (
		U, E utils.Matrix
		diff mat.Dense
	)
	if U, err = FullHistory(p); err != nil {
		return
	}
	if E, err = exact.Sample(p.Grid(), p.Times()); err != nil {
		return
	}
	diff.Sub(U.M, E.M)
	norm = mat.Norm(&diff, 2)
	return
}

// Bounds returns the range of the history together with the exact solution
func Bounds(U utils.Matrix, exact ...utils.Matrix) (fmin, fmax float64) {
	fmin, fmax = U.Min(), U.Max()
	for _, E := range exact {
		fmin, fmax = min(fmin, E.Min()), max(fmax, E.Max())
	}
	if fmin == fmax {
		fmin, fmax = fmin-0.5, fmax+0.5
	}
	return
}
