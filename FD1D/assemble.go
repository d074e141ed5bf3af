package FD1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gofd/diagmap"
	"github.com/notargets/gofd/expressions"
)

type Options struct {
	MethodX, MethodT     Method
	AccuracyX, AccuracyT int
	Dx, Dt               float64
	Scheme               diagmap.Scheme
}

// Discretization is an Equation turned into the banded operators the time
// march needs
type Discretization struct {
	Equation    Equation
	Options     Options
	Space, Time Stencil
	diagmap.Combination
	Source float64 // uniform right hand side term from the equation constants
}

func Discretize(eq Equation, opt Options) (d Discretization, err error) {
	if err = eq.Validate(); err != nil {
		return
	}
	d = Discretization{Equation: eq, Options: opt, Source: eq.Source()}
	timeW, timeP, err := SelectWeights(eq.Time, opt.MethodT, opt.AccuracyT)
	if err != nil {
		return d, fmt.Errorf("time side: %w", err)
	}
	if d.Time, err = BuildStencil(timeW, timeP, "dt", opt.Dt, TimeLabel); err != nil {
		return d, fmt.Errorf("time side: %w", err)
	}
	// Implicit space terms live on the new level, explicit ones on the current
	spaceLevel := 0
	if opt.Scheme == diagmap.Implicit {
		spaceLevel = d.Time.MaxKey
	}
	spaceW, spaceP, err := SelectWeights(eq.Space, opt.MethodX, opt.AccuracyX)
	if err != nil {
		return d, fmt.Errorf("space side: %w", err)
	}
	if d.Space, err = BuildStencil(spaceW, spaceP, "dx", opt.Dx, SpaceLabel(spaceLevel)); err != nil {
		return d, fmt.Errorf("space side: %w", err)
	}
	d.Combination, err = diagmap.Combine(d.Space.Map, d.Time.Map, opt.Scheme)
	return
}

// Approximation describes both stencils the way they are applied on the grid
func (d Discretization) Approximation() string {
	var (
		sb    strings.Builder
		steps []string
	)
	sb.WriteString("*******************Approximation*****************\n")
	fmt.Fprintf(&sb, "Left hand side: %s\n", d.Space.Expression)
	fmt.Fprintf(&sb, "Right hand side: %s\n", d.Time.Expression)
	sb.WriteString("Where U(i, j) means at point x = i*delta x and t = j * delta t\n")
	for _, e := range []expressions.Expression{d.Space.Expression, d.Time.Expression} {
		for _, name := range expressions.Symbols(e) {
			switch name {
			case "dx":
				steps = append(steps, fmt.Sprintf("dx = %g", d.Options.Dx))
			case "dt":
				steps = append(steps, fmt.Sprintf("dt = %g", d.Options.Dt))
			}
		}
	}
	if len(steps) != 0 {
		fmt.Fprintf(&sb, "Step sizes: %s\n", strings.Join(steps, ", "))
	}
	return sb.String()
}
