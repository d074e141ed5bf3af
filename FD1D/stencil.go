package FD1D

import (
	"fmt"

	"github.com/notargets/gofd/diagmap"
	"github.com/notargets/gofd/expressions"
	"github.com/notargets/gofd/utils"
)

type Stencil struct {
	Expression expressions.Expression // display form, weights rounded to 2 decimals
	Symbolic   diagmap.DiagonalMap    // weights over powers of the step symbol
	Map        diagmap.DiagonalMap    // Symbolic evaluated at the step size
	MaxKey     int
}

// Labeler names the grid value sitting at a stencil offset
type Labeler func(offset int) string

func signed(k int) string {
	if k == 0 {
		return ""
	}
	return fmt.Sprintf("%+d", k)
}

// SpaceLabel gives U(i+p,j+q), q being the time offset of the level the space
// terms are evaluated at
func SpaceLabel(timeOffset int) Labeler {
	return func(p int) string {
		return fmt.Sprintf("U(i%s,j%s)", signed(p), signed(timeOffset))
	}
}

func TimeLabel(q int) string {
	return fmt.Sprintf("U(i,j%s)", signed(q))
}

/*
BuildStencil turns per derivative weights into the displayed sum of
coeff*U terms and into a DiagonalMap keyed by points. The d-th derivative group
is divided by step^d, step being the symbol name (dx, dt) and stepSize its value.
*/
func BuildStencil(weights [][]float64, points []int, step string, stepSize float64,
	label Labeler) (s Stencil, err error) {
	var (
		h = expressions.NewSymbol(step)
	)
	s.Symbolic = diagmap.New(nil)
	for d, w := range weights {
		var (
			group    expressions.Expression
			entries  = make(map[int]float64, len(w))
			groupMap diagmap.DiagonalMap
		)
		for nu, val := range w {
			entries[points[nu]] = val
			if val == 0 {
				continue
			}
			term := expressions.Mul(utils.RoundTo(val, 2), expressions.NewSymbol(label(points[nu])))
			if group == nil {
				group = term
			} else {
				group = expressions.Add(group, term)
			}
		}
		groupMap = diagmap.FromFloats(entries)
		if d != 0 {
			hd := expressions.Pow(h, d)
			if group != nil {
				if group, err = expressions.Div(group, hd); err != nil {
					return
				}
			}
			if groupMap, err = groupMap.Div(hd); err != nil {
				return
			}
		}
		s.Symbolic = s.Symbolic.Add(groupMap)
		if group == nil {
			continue
		}
		if s.Expression == nil {
			s.Expression = group
		} else {
			s.Expression = expressions.Add(s.Expression, group)
		}
	}
	if s.Expression == nil {
		s.Expression = expressions.NewNumber(0)
	}
	if s.Map, err = s.Symbolic.Substitute(stepSize, step); err != nil {
		return
	}
	s.MaxKey, _ = s.Map.MaxKey()
	return
}
