package FD1D

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDegenerateEquation = errors.New("FD1D: degenerate equation")

/*
Equation holds the coefficients of a linear PDE written as

	Space[0] + Space[1]*U + Space[2]*Ux + Space[3]*Uxx + ... =
	    Time[0] + Time[1]*U + Time[2]*Ut + Time[3]*Utt + ...

Index 0 is a free constant, index 1 multiplies U and index k >= 2 multiplies
the (k-1)-th derivative.
*/
type Equation struct {
	Space, Time []float64
}

func NewEquation(space, time []float64) (eq Equation, err error) {
	eq = Equation{Space: space, Time: time}
	err = eq.Validate()
	return
}

func (eq Equation) Validate() (err error) {
	for _, side := range []struct {
		name   string
		coeffs []float64
	}{{"space", eq.Space}, {"time", eq.Time}} {
		if len(side.coeffs) < 2 {
			return fmt.Errorf("%w: %s side needs a constant and a U coefficient, have %v",
				ErrDegenerateEquation, side.name, side.coeffs)
		}
		if side.coeffs[len(side.coeffs)-1] == 0 {
			return fmt.Errorf("%w: 0 is not expected as the last %s coefficient, "+
				"did you write the equation in the right way?", ErrDegenerateEquation, side.name)
		}
	}
	return
}

func (eq Equation) SpaceOrder() int { return len(eq.Space) - 2 }
func (eq Equation) TimeOrder() int  { return len(eq.Time) - 2 }

// Source is the constant left over on the space side once both sides are collected
func (eq Equation) Source() float64 {
	return coeff(eq.Space, 0) - coeff(eq.Time, 0)
}

func coeff(c []float64, i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return 0
}

// String renders e.g. "Equation: +10Uxxx +4Ux -1U -1 = -1Ut"
func (eq Equation) String() string {
	var (
		constant = coeff(eq.Space, 0) - coeff(eq.Time, 0)
		uCoeff   = coeff(eq.Space, 1) - coeff(eq.Time, 1)
		uTerm    string
		cTerm    string
	)
	if uCoeff != 0 {
		uTerm = fmt.Sprintf(" %+gU", uCoeff)
	}
	if constant != 0 {
		cTerm = fmt.Sprintf(" %+g", constant)
	}
	return "Equation: " + derivativeTerms(eq.Space, "x") + uTerm + cTerm +
		" = " + derivativeTerms(eq.Time, "t")
}

func derivativeTerms(coeffs []float64, label string) string {
	var (
		terms []string
	)
	if len(coeffs) <= 2 {
		return "0"
	}
	for idx := len(coeffs) - 1; idx >= 2; idx-- {
		if coeffs[idx] == 0 {
			continue
		}
		terms = append(terms, fmt.Sprintf("%+gU%s", coeffs[idx], strings.Repeat(label, idx-1)))
	}
	return strings.Join(terms, " ")
}
