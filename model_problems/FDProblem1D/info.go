package FDProblem1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gofd/utils"
)

/*
Info reports what the problem needs before ForwardInTime can run: the equation
and its approximation, the grid, the boundary conditions expected on each side,
the number of initial levels, and whatever is still missing.
*/
func (p *FDProblem) Info() string {
	var (
		sb             strings.Builder
		reachL, reachR = p.Reach()
		required       = p.RequiredInitial()
		opt            = p.Disc.Options
	)
	fmt.Fprintf(&sb, "%s\n", p.Equation)
	fmt.Fprintf(&sb, "Scheme: %s, space stencil: %s (accuracy %d), time stencil: %s (accuracy %d)\n",
		opt.Scheme, opt.MethodX, opt.AccuracyX, opt.MethodT, opt.AccuracyT)
	sb.WriteString(p.Disc.Approximation())
	fmt.Fprintf(&sb, "Domain: [%g, %g], %d intervals, dx = %8.6f\n", p.Domain[0], p.Domain[1], p.M, p.Dx)
	fmt.Fprintf(&sb, "Time interval: [%g, %g], dt = %8.6f, %d steps\n",
		p.Interval[0], p.Interval[1], p.Dt, utils.StepCount(p.Interval[0], p.Interval[1], p.Dt))
	if Nx, err := p.Nx(); err == nil {
		fmt.Fprintf(&sb, "Interior points: Nx = %d\n", Nx)
	}
	fmt.Fprintf(&sb, "Boundary conditions: at least %d at the left edge and %d at the right edge, have %d\n",
		reachL, reachR, len(p.Boundary))
	switch bm, err := p.boundaryMap(); {
	case err != nil:
		fmt.Fprintf(&sb, "Boundary map: %v\n", err)
	case p.BoundaryMap == nil:
		fmt.Fprintf(&sb, "Boundary map: default %v\n", []int(bm))
	default:
		fmt.Fprintf(&sb, "Boundary map: %v\n", []int(bm))
	}
	for i, bc := range p.Boundary {
		fmt.Fprintf(&sb, "\tBC[%d]: U = %s\n", i, bc)
	}
	fmt.Fprintf(&sb, "Initial conditions: %d levels oldest first, have %d\n", required, len(p.Initial))
	for i, ic := range p.Initial {
		fmt.Fprintf(&sb, "\tIC[%d]: %s\n", i, ic)
	}
	if err := p.Check(); err != nil {
		fmt.Fprintf(&sb, "Missing: %v\n", err)
	} else {
		sb.WriteString("Ready to march\n")
	}
	fmt.Fprintf(&sb, "Linear algebra: %s\n", utils.BLASBackend)
	return sb.String()
}
