package FDProblem1D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gofd/FD1D"
	"github.com/notargets/gofd/diagmap"
	"github.com/notargets/gofd/utils"
)

var (
	ErrConfiguration   = errors.New("FDProblem1D: invalid configuration")
	ErrDomain          = fmt.Errorf("%w: domain", ErrConfiguration)
	ErrIncrement       = fmt.Errorf("%w: increment", ErrConfiguration)
	ErrScheme          = fmt.Errorf("%w: scheme", ErrConfiguration)
	ErrMethod          = fmt.Errorf("%w: stencil", ErrConfiguration)
	ErrBoundaryCount   = fmt.Errorf("%w: boundary conditions", ErrConfiguration)
	ErrBoundaryMap     = fmt.Errorf("%w: boundary map, see Info()", ErrConfiguration)
	ErrInitialCount    = fmt.Errorf("%w: initial conditions", ErrConfiguration)
	ErrSingularInitial = errors.New("FDProblem1D: initial conditions do not determine the levels")
	ErrDiverged        = errors.New("FDProblem1D: solution diverged")
)

type Config struct {
	Domain, Interval     [2]float64
	Dx, Dt               float64
	Equation             FD1D.Equation
	Scheme               string // implicit (default) or explicit
	MethodX, MethodT     string // forward, backward or centered; centered and forward by default
	AccuracyX, AccuracyT int    // 2 and 1 by default
	Boundary             []BoundaryCondition
	BoundaryMap          BoundaryMap // optional, see DefaultBoundaryMap
	Initial              []InitialCondition
	Verbose              bool
	LogFrequency         int
}

type FDProblem struct {
	// Input parameters
	Domain, Interval [2]float64
	Dx, Dt           float64 // Dx is snapped so the domain holds a whole number of intervals
	Equation         FD1D.Equation
	Boundary         []BoundaryCondition
	BoundaryMap      BoundaryMap
	Initial          []InitialCondition
	Verbose          bool
	LogFrequency     int

	Disc     FD1D.Discretization
	M        int // number of dx intervals across the domain
	Solution []utils.Vector

	printedApprox bool
}

func NewFDProblem(cfg Config) (p *FDProblem, err error) {
	var (
		opt = FD1D.Options{AccuracyX: cfg.AccuracyX, AccuracyT: cfg.AccuracyT, Dt: cfg.Dt}
	)
	if cfg.Domain[0] >= cfg.Domain[1] {
		return nil, fmt.Errorf("%w: provide the domain in increasing order, have %v", ErrDomain, cfg.Domain)
	}
	if cfg.Interval[0] >= cfg.Interval[1] {
		return nil, fmt.Errorf("%w: provide the time interval in increasing order, have %v", ErrDomain, cfg.Interval)
	}
	if cfg.Dx <= 0 || cfg.Dt <= 0 {
		return nil, fmt.Errorf("%w: increments must be positive, have dx = %v and dt = %v", ErrIncrement, cfg.Dx, cfg.Dt)
	}
	if err = cfg.Equation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if opt.Scheme, err = diagmap.ParseScheme(orDefault(cfg.Scheme, "implicit")); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheme, err)
	}
	if opt.MethodX, err = FD1D.ParseMethod(orDefault(cfg.MethodX, "centered")); err != nil {
		return nil, fmt.Errorf("%w: space: %w", ErrMethod, err)
	}
	if opt.MethodT, err = FD1D.ParseMethod(orDefault(cfg.MethodT, "forward")); err != nil {
		return nil, fmt.Errorf("%w: time: %w", ErrMethod, err)
	}
	if opt.AccuracyX == 0 {
		opt.AccuracyX = 2
	}
	if opt.AccuracyT == 0 {
		opt.AccuracyT = 1
	}
	p = &FDProblem{
		Domain:       cfg.Domain,
		Interval:     cfg.Interval,
		Dt:           cfg.Dt,
		Equation:     cfg.Equation,
		Verbose:      cfg.Verbose,
		LogFrequency: cfg.LogFrequency,
	}
	if p.LogFrequency < 1 {
		p.LogFrequency = 50
	}
	if err = p.createMesh(cfg.Dx); err != nil {
		return nil, err
	}
	opt.Dx = p.Dx
	if p.Disc, err = FD1D.Discretize(cfg.Equation, opt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if kmin, _ := p.Disc.Time.Map.MinKey(); opt.Scheme == diagmap.Explicit && (p.Disc.NewLevel <= 0 || kmin > 0) {
		return nil, fmt.Errorf("%w: the explicit scheme needs the space terms on a known level, "+
			"the %s time stencil reaches no further than the current level", ErrScheme, opt.MethodT)
	}
	if err = p.Add(cfg.Boundary, cfg.BoundaryMap, cfg.Initial); err != nil {
		return nil, err
	}
	return
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (p *FDProblem) createMesh(dx float64) (err error) {
	var (
		L = p.Domain[1] - p.Domain[0]
	)
	p.M = int(math.Round(L / dx))
	if p.M < 1 {
		return fmt.Errorf("%w: dx = %v does not fit in the domain %v", ErrIncrement, dx, p.Domain)
	}
	p.Dx = L / float64(p.M)
	return
}

/*
Add supplies boundary and initial data after construction, so that a problem
can be built first and queried with Info() for what it needs. Accepted items:

	BoundaryCondition, InitialCondition    appended
	[]BoundaryCondition, []InitialCondition replace the current set
	BoundaryMap, []int                     replace the boundary map

nil slices are ignored.
*/
func (p *FDProblem) Add(items ...interface{}) (err error) {
	for _, item := range items {
		switch v := item.(type) {
		case BoundaryCondition:
			p.Boundary = append(p.Boundary, v)
		case []BoundaryCondition:
			if v != nil {
				p.Boundary = v
			}
		case BoundaryMap:
			if v != nil {
				p.BoundaryMap = v
			}
		case []int:
			if v != nil {
				p.BoundaryMap = v
			}
		case InitialCondition:
			p.Initial = append(p.Initial, v)
		case []InitialCondition:
			if v != nil {
				p.Initial = v
			}
		case nil:
		default:
			return fmt.Errorf("%w: cannot add a %T", ErrConfiguration, item)
		}
	}
	return
}

// Reach is the number of boundary points the space stencil needs on each side
func (p *FDProblem) Reach() (left, right int) {
	return p.Disc.Space.Map.Reach()
}

// RequiredInitial is the number of time levels that must be known before the
// first step, oldest first
func (p *FDProblem) RequiredInitial() int {
	kmin, _ := p.Disc.Time.Map.MinKey()
	return p.Disc.NewLevel - kmin
}

func (p *FDProblem) boundaryMap() (bm BoundaryMap, err error) {
	if p.BoundaryMap != nil {
		return p.BoundaryMap, nil
	}
	left, right := p.Reach()
	return DefaultBoundaryMap(len(p.Boundary), left, right)
}

// Sides returns how many grid points each edge keeps out of the unknowns
func (p *FDProblem) Sides() (left, right int, err error) {
	var bm BoundaryMap
	if len(p.Boundary) == 0 {
		left, right = p.Reach()
		return
	}
	if bm, err = p.boundaryMap(); err != nil {
		return
	}
	return bm.Sides()
}

// Nx is the number of interior unknowns, the grid points not set by a boundary condition
func (p *FDProblem) Nx() (Nx int, err error) {
	var left, right int
	if left, right, err = p.Sides(); err != nil {
		return
	}
	Nx = p.M + 1 - left - right
	if Nx < 1 {
		err = fmt.Errorf("%w: %d boundary points leave no interior points on %d grid points",
			ErrBoundaryCount, left+right, p.M+1)
	}
	return
}

// X returns the coordinates of the interior unknowns
func (p *FDProblem) X() (x []float64, err error) {
	var left, Nx int
	if left, _, err = p.Sides(); err != nil {
		return
	}
	if Nx, err = p.Nx(); err != nil {
		return
	}
	x = make([]float64, Nx)
	for i := range x {
		x[i] = p.Domain[0] + float64(left+i)*p.Dx
	}
	return
}

// Check validates the boundary and initial data against the discretization
func (p *FDProblem) Check() (err error) {
	var (
		reachL, reachR = p.Reach()
		required       = p.RequiredInitial()
		bm             BoundaryMap
		left, right    int
		Nx             int
	)
	if len(p.Boundary) == 0 && reachL+reachR > 0 {
		return fmt.Errorf("%w: none given, expected %d at the left edge and %d at the right edge",
			ErrBoundaryCount, reachL, reachR)
	}
	if bm, err = p.boundaryMap(); err != nil {
		return
	}
	if len(bm) != len(p.Boundary) {
		return fmt.Errorf("%w: %d positions for %d conditions", ErrBoundaryMap, len(bm), len(p.Boundary))
	}
	if left, right, err = bm.Sides(); err != nil {
		return
	}
	if left < reachL || right < reachR {
		return fmt.Errorf("%w: wrong number of boundary conditions, expected %d at the left edge and %d at the right edge, have %d and %d",
			ErrBoundaryCount, reachL, reachR, left, right)
	}
	if Nx, err = p.Nx(); err != nil {
		return
	}
	for i, bc := range p.Boundary {
		if len(bc.Coeffs) > Nx {
			return fmt.Errorf("%w: condition %d depends on %d interior points, the mesh has %d",
				ErrBoundaryCount, i, len(bc.Coeffs), Nx)
		}
	}
	if len(p.Initial) != required {
		return fmt.Errorf("%w: wrong number of initial conditions, expected %d, have %d",
			ErrInitialCount, required, len(p.Initial))
	}
	return
}

func (p *FDProblem) String() string {
	return p.Equation.String()
}
