package post_processing

import (
	"errors"
	"fmt"

	"github.com/notargets/gofd/utils"
)

var (
	ErrExactShape = errors.New("post_processing: exact solution does not match the grid")
	ErrNoSolution = errors.New("post_processing: no solution, run ForwardInTime first")
)

// Exact samples a reference solution as an Nt x Ngrid matrix, one row per time
type Exact interface {
	Sample(x, t []float64) (utils.Matrix, error)
}

type ExactFunc func(x, t float64) float64

func (f ExactFunc) Sample(x, t []float64) (R utils.Matrix, err error) {
	R = utils.NewMatrix(len(t), len(x))
	for n, tt := range t {
		for i, xx := range x {
			R.M.Set(n, i, f(xx, tt))
		}
	}
	return
}

/*
ExactTable holds tabulated values laid out by grid point first:

	[ u(x0,t0), u(x0,t1), ..., u(x1,t0), u(x1,t1), ... ]
*/
type ExactTable []float64

func (et ExactTable) Sample(x, t []float64) (R utils.Matrix, err error) {
	var (
		Nx, Nt = len(x), len(t)
	)
	if len(et) != Nx*Nt {
		err = fmt.Errorf("%w: specify a function or %d values (%d points by %d times), have %d",
			ErrExactShape, Nx*Nt, Nx, Nt, len(et))
		return
	}
	R = utils.NewMatrix(Nt, Nx)
	for i := 0; i < Nx; i++ {
		for n := 0; n < Nt; n++ {
			R.M.Set(n, i, et[i*Nt+n])
		}
	}
	return
}
