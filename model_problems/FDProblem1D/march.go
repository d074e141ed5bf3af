package FDProblem1D

import (
	"fmt"

	"github.com/notargets/gofd/utils"
)

// marcher holds what stays fixed across the time steps
type marcher struct {
	Nx          int
	left, right []BoundaryCondition
	matrix      utils.Matrix
	explicitOp  *utils.CSR // space operator over the padded previous level
	rhsT        map[int]float64
	boundary    map[int]float64
	kmin        int
	source      float64
}

func (p *FDProblem) newMarcher() (mr *marcher, err error) {
	var (
		bm BoundaryMap
	)
	mr = &marcher{source: p.Disc.Source}
	if mr.Nx, err = p.Nx(); err != nil {
		return
	}
	if bm, err = p.boundaryMap(); err != nil {
		return
	}
	mr.left, mr.right = edgeConditions(p.Boundary, bm)
	if mr.matrix, err = p.Disc.Interior.ToMatrix(mr.Nx); err != nil {
		return
	}
	if mr.rhsT, err = p.Disc.RHST.Floats(); err != nil {
		return
	}
	if mr.boundary, err = p.Disc.Boundary.Floats(); err != nil {
		return
	}
	mr.kmin, _ = p.Disc.Time.Map.MinKey()
	if p.Disc.RHSX != nil {
		var (
			spaceOp map[int]float64
			nl, nr  = len(mr.left), len(mr.right)
		)
		if spaceOp, err = p.Disc.RHSX.Floats(); err != nil {
			return
		}
		op := utils.NewBandedRect(mr.Nx, nl+mr.Nx+nr, nl, spaceOp).ToCSR()
		mr.explicitOp = &op
	}
	return
}

/*
ForwardInTime marches the initial levels across the time interval. It returns
the whole history, the initial levels first then one level per time step, and
keeps it in p.Solution. Nothing is returned when any step fails.
*/
func (p *FDProblem) ForwardInTime() (history []utils.Vector, err error) {
	var (
		mr       *marcher
		levels   []utils.Vector
		retained *utils.RingBuffer[utils.Vector]
		lu       utils.LUFactors
		Nsteps   = utils.StepCount(p.Interval[0], p.Interval[1], p.Dt)
		Time     = p.Interval[0]
	)
	if err = p.Check(); err != nil {
		return
	}
	if mr, err = p.newMarcher(); err != nil {
		return
	}
	if levels, err = initialLevels(p.Initial, mr.Nx); err != nil {
		return
	}
	retained = utils.NewRingBuffer[utils.Vector](len(levels))
	for _, level := range levels {
		retained.Push(level)
		history = append(history, level)
	}
	if p.Verbose {
		if !p.printedApprox {
			fmt.Print(p.Disc.Approximation())
			p.printedApprox = true
		}
		fmt.Printf("Nx = %d, dx = %8.6f, Nsteps = %d, dt = %8.6f\n", mr.Nx, p.Dx, Nsteps, p.Dt)
	}
	for tstep := 0; tstep < Nsteps; tstep++ {
		var (
			u     utils.Vector
			first = tstep == 0
		)
		rhs := mr.createRHS(retained)
		if mr.explicitOp == nil {
			mr.implementBC(rhs, first)
		}
		// Boundary terms only touch the matrix on the first step
		if first {
			if lu, err = mr.matrix.Factorize(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
			}
			mr.matrix.SetReadOnly("march matrix")
		}
		if u, err = lu.Solve(rhs); err != nil {
			return nil, fmt.Errorf("step %d: %w", tstep, err)
		}
		if utils.IsNan(u) {
			return nil, fmt.Errorf("%w: NaN found at step %d, time %8.4f", ErrDiverged, tstep, Time+p.Dt)
		}
		retained.Push(u)
		history = append(history, u)
		Time += p.Dt
		if p.Verbose && (tstep%p.LogFrequency == 0 || tstep == Nsteps-1) {
			fmt.Printf("Time = %8.4f, step = %d, umin = %8.6f, umax = %8.6f\n", Time, tstep, u.Min(), u.Max())
		}
	}
	if p.Verbose {
		fmt.Println(utils.GetMemUsage())
	}
	p.Solution = history
	return
}

// createRHS combines the retained levels, oldest first, with the time weights
// and, for the explicit scheme, applies the space operator to the current level
func (mr *marcher) createRHS(retained *utils.RingBuffer[utils.Vector]) (rhs utils.Vector) {
	rhs = utils.NewVectorConst(mr.Nx, mr.source)
	for k, w := range mr.rhsT {
		rhs.AXPY(w, retained.At(k-mr.kmin))
	}
	if mr.explicitOp != nil {
		current := retained.At(-mr.kmin)
		padded := fullDomain(current.Data(), mr.left, mr.right)
		rhs.AXPY(1, mr.explicitOp.MulVec(utils.NewVector(len(padded), padded)))
	}
	return
}

/*
implementBC moves the space terms that fall outside the interior to the right
hand side. A term c*U at an exterior point governed by U = b0 + sum_m b_m*U[m]
adds c*b0 to the rhs and, on the first step only, -c*b_m to the matrix.
*/
func (mr *marcher) implementBC(rhs utils.Vector, first bool) {
	var (
		Nx   = mr.Nx
		nl   = len(mr.left)
		nr   = len(mr.right)
		data = rhs.Data()
	)
	apply := func(r int, c float64, bc BoundaryCondition, fromLeft bool) {
		data[r] += c * bc.Constant
		if !first {
			return
		}
		for m, b := range bc.Coeffs {
			col := m
			if !fromLeft {
				col = Nx - 1 - m
			}
			mr.matrix.AddAt(r, col, -c*b)
		}
	}
	for k, c := range mr.boundary {
		switch {
		case k < 0:
			for r := 0; r < -k && r < Nx; r++ {
				// grid position counted from the left edge
				apply(r, c, mr.left[nl+r+k], true)
			}
		case k > 0:
			for r := max(0, Nx-k); r < Nx; r++ {
				// e = 0 is the boundary point next to the interior
				e := r + k - Nx
				apply(r, c, mr.right[nr-1-e], false)
			}
		}
	}
}

// FullDomain pads an interior level with the boundary values, left edge first
func (p *FDProblem) FullDomain(u utils.Vector) (full []float64, err error) {
	var (
		bm BoundaryMap
	)
	if bm, err = p.boundaryMap(); err != nil {
		return
	}
	if len(bm) != len(p.Boundary) {
		err = fmt.Errorf("%w: %d positions for %d conditions", ErrBoundaryMap, len(bm), len(p.Boundary))
		return
	}
	left, right := edgeConditions(p.Boundary, bm)
	full = fullDomain(u.Data(), left, right)
	return
}

// Grid returns the coordinates of every grid point, both edges included
func (p *FDProblem) Grid() (x []float64) {
	return utils.NewVector(p.M+1).Linspace(p.Domain[0], p.Domain[1]).Data()
}

// Times returns the time of every level in the solution history. Initial levels
// older than the newest one sit before the start of the interval.
func (p *FDProblem) Times() (t []float64) {
	var (
		older = p.RequiredInitial() - 1
	)
	t = make([]float64, len(p.Solution))
	for i := range t {
		t[i] = p.Interval[0] + float64(i-older)*p.Dt
	}
	return
}

func (p *FDProblem) History() []utils.Vector { return p.Solution }
