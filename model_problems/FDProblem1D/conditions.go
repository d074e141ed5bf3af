package FDProblem1D

import (
	"fmt"
	"sort"

	"github.com/notargets/gofd/utils"
)

/*
BoundaryCondition gives the value at one boundary grid point as an affine
function of the interior unknowns nearest to its edge:

	U(boundary) = Constant + Coeffs[0]*U(first interior) + Coeffs[1]*U(second interior) + ...

A plain Dirichlet value has no Coeffs.
*/
type BoundaryCondition struct {
	Constant float64
	Coeffs   []float64
}

func Dirichlet(val float64) BoundaryCondition {
	return BoundaryCondition{Constant: val}
}

// Value evaluates the condition against the interior solution, counting the
// interior from the left edge when fromLeft is set and from the right otherwise
func (bc BoundaryCondition) Value(interior []float64, fromLeft bool) (val float64) {
	var (
		Nx = len(interior)
	)
	val = bc.Constant
	for m, c := range bc.Coeffs {
		if fromLeft {
			val += c * interior[m]
		} else {
			val += c * interior[Nx-1-m]
		}
	}
	return
}

func (bc BoundaryCondition) String() string {
	str := fmt.Sprintf("%g", bc.Constant)
	for m, c := range bc.Coeffs {
		str += fmt.Sprintf(" %+g*U[%d]", c, m)
	}
	return str
}

/*
BoundaryMap holds one position per boundary condition: k >= 0 is the k-th grid
point from the left edge (0 is the domain start) and k < 0 the |k|-th grid point
from the right edge (-1 is the domain end). The positions of each side must be
contiguous from its edge.
*/
type BoundaryMap []int

// DefaultBoundaryMap splits count conditions between the edges, using the
// stencil reach when it accounts for all of them and an even split otherwise
func DefaultBoundaryMap(count, reachLeft, reachRight int) (bm BoundaryMap, err error) {
	var (
		left, right int
	)
	switch {
	case count == reachLeft+reachRight:
		left, right = reachLeft, reachRight
	case count%2 == 0:
		left, right = count/2, count/2
	default:
		err = fmt.Errorf("%w: cannot split %d conditions between the edges, provide a boundary map",
			ErrBoundaryMap, count)
		return
	}
	for k := 0; k < left; k++ {
		bm = append(bm, k)
	}
	for k := 1; k <= right; k++ {
		bm = append(bm, -k)
	}
	return
}

// Sides checks the map and returns the number of boundary points on each side
func (bm BoundaryMap) Sides() (left, right int, err error) {
	var (
		lefts, rights []int
	)
	for _, k := range bm {
		if k >= 0 {
			lefts = append(lefts, k)
		} else {
			rights = append(rights, -k-1)
		}
	}
	for _, side := range [][]int{lefts, rights} {
		sort.Ints(side)
		for i, k := range side {
			if k != i {
				err = fmt.Errorf("%w: positions %v are not contiguous from the edges", ErrBoundaryMap, []int(bm))
				return
			}
		}
	}
	left, right = len(lefts), len(rights)
	return
}

// edgeConditions orders the conditions by position, edge point first on each side
func edgeConditions(bcs []BoundaryCondition, bm BoundaryMap) (left, right []BoundaryCondition) {
	var (
		nl, nr, _ = bm.Sides()
	)
	left, right = make([]BoundaryCondition, nl), make([]BoundaryCondition, nr)
	for i, k := range bm {
		if k >= 0 {
			left[k] = bcs[i]
		} else {
			right[-k-1] = bcs[i]
		}
	}
	return
}

type InitialKind uint8

const (
	ConstantIC InitialKind = iota
	ArrayIC
	AffineIC
)

/*
InitialCondition sets one retained time level, oldest level first. A level is
a constant, a full array over the interior points, or an affine combination of
the other levels at the same point:

	level[i] = Value + sum_j Weights[j]*level[j]
*/
type InitialCondition struct {
	Kind    InitialKind
	Value   float64
	Values  []float64
	Weights map[int]float64
}

func InitialConstant(val float64) InitialCondition {
	return InitialCondition{Kind: ConstantIC, Value: val}
}

func InitialArray(vals []float64) InitialCondition {
	return InitialCondition{Kind: ArrayIC, Values: vals}
}

func InitialAffine(constant float64, weights map[int]float64) InitialCondition {
	return InitialCondition{Kind: AffineIC, Value: constant, Weights: weights}
}

func (ic InitialCondition) at(i int) float64 {
	if ic.Kind == ArrayIC {
		return ic.Values[i]
	}
	return ic.Value
}

func (ic InitialCondition) String() string {
	switch ic.Kind {
	case ArrayIC:
		return fmt.Sprintf("array[%d]", len(ic.Values))
	case AffineIC:
		str := fmt.Sprintf("%g", ic.Value)
		levels := make([]int, 0, len(ic.Weights))
		for j := range ic.Weights {
			levels = append(levels, j)
		}
		sort.Ints(levels)
		for _, j := range levels {
			str += fmt.Sprintf(" %+g*level[%d]", ic.Weights[j], j)
		}
		return str
	}
	return fmt.Sprintf("%g", ic.Value)
}

/*
initialLevels expands the initial conditions into Nx values per level. When
any level depends on the others, the L x L coupling matrix is inverted once and
applied at every interior point.
*/
func initialLevels(ics []InitialCondition, Nx int) (levels []utils.Vector, err error) {
	var (
		L        = len(ics)
		coupled  bool
		levelErr = func(i int, format string, args ...interface{}) error {
			return fmt.Errorf("%w: initial condition %d: %s", ErrInitialCount, i, fmt.Sprintf(format, args...))
		}
	)
	for i, ic := range ics {
		switch ic.Kind {
		case ArrayIC:
			if len(ic.Values) != Nx {
				return nil, levelErr(i, "have %d values for %d interior points", len(ic.Values), Nx)
			}
		case AffineIC:
			coupled = true
			for j := range ic.Weights {
				if j < 0 || j >= L || j == i {
					return nil, levelErr(i, "depends on level %d, levels are 0..%d", j, L-1)
				}
			}
		}
	}
	levels = make([]utils.Vector, L)
	for i := range levels {
		levels[i] = utils.NewVector(Nx)
	}
	if !coupled {
		for i, ic := range ics {
			for n := 0; n < Nx; n++ {
				levels[i].V.SetVec(n, ic.at(n))
			}
		}
		return
	}
	var (
		A    = utils.NewMatrix(L, L)
		Ainv utils.Matrix
	)
	for i, ic := range ics {
		A.Set(i, i, 1)
		for j, w := range ic.Weights {
			A.AddAt(i, j, -w)
		}
	}
	if Ainv, err = A.Inverse(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularInitial, err)
	}
	err = utils.ParallelRange(Nx, func(n int) error {
		for i := range levels {
			var val float64
			for j, ic := range ics {
				val += Ainv.At(i, j) * ic.at(n)
			}
			levels[i].V.SetVec(n, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// fullDomain pads the interior values with the boundary values, in grid order
func fullDomain(interior []float64, left, right []BoundaryCondition) (u []float64) {
	var (
		nl, nr = len(left), len(right)
		Nx     = len(interior)
	)
	u = make([]float64, nl+Nx+nr)
	for k, bc := range left {
		u[k] = bc.Value(interior, true)
	}
	copy(u[nl:], interior)
	for k, bc := range right {
		u[nl+Nx+nr-1-k] = bc.Value(interior, false)
	}
	return
}
