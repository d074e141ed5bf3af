package post_processing

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ConvergenceStudy holds a difference norm per mesh spacing, coarsest first
type ConvergenceStudy struct {
	Title string
	Dx    []float64
	Norm  []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{Title: title}
}

func (cs *ConvergenceStudy) Add(dx, norm float64) {
	cs.Dx = append(cs.Dx, dx)
	cs.Norm = append(cs.Norm, norm)
}

// Orders returns the observed order between each pair of successive entries
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	for i := 1; i < len(cs.Dx); i++ {
		orders = append(orders, math.Log(cs.Norm[i-1]/cs.Norm[i])/math.Log(cs.Dx[i-1]/cs.Dx[i]))
	}
	return
}

func (cs *ConvergenceStudy) String() string {
	var (
		sb     strings.Builder
		orders = cs.Orders()
	)
	fmt.Fprintf(&sb, "Title = %s\n", cs.Title)
	for i := range cs.Dx {
		fmt.Fprintf(&sb, "dx = %10.6f, norm = %12.6e", cs.Dx[i], cs.Norm[i])
		if i > 0 {
			fmt.Fprintf(&sb, ", order = %6.3f", orders[i-1])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"Title", "dx", "norm"}); err != nil {
		return
	}
	for i := range cs.Dx {
		rec := []string{cs.Title,
			strconv.FormatFloat(cs.Dx[i], 'g', -1, 64),
			strconv.FormatFloat(cs.Norm[i], 'g', -1, 64)}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadConvergenceCSV reads studies written by WriteCSV, keyed by title
func ReadConvergenceCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records  [][]string
		dx, norm float64
		cs       *ConvergenceStudy
		ok       bool
	)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	studies = make(map[string]*ConvergenceStudy)
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("line %d: have %d fields, want 3", i+1, len(rec))
		}
		if dx, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if norm, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if cs, ok = studies[rec[0]]; !ok {
			cs = NewConvergenceStudy(rec[0])
			studies[rec[0]] = cs
		}
		cs.Add(dx, norm)
	}
	return
}

/*
Refine runs the problem built by build at dx, dx/2, ... for the given number of
levels, and records the RMS difference between the final level of each run and
the next finer run on the shared grid points.
*/
func Refine(title string, build func(dx float64) (Marched, error), dx float64, levels int) (cs *ConvergenceStudy, err error) {
	var (
		finals [][]float64
		dxs    []float64
	)
	if levels < 2 {
		return nil, fmt.Errorf("a refinement study needs at least 2 levels, have %d", levels)
	}
	for l := 0; l < levels; l++ {
		var (
			p    Marched
			full []float64
		)
		if p, err = build(dx); err != nil {
			return
		}
		history := p.History()
		if len(history) == 0 {
			return nil, ErrNoSolution
		}
		if full, err = p.FullDomain(history[len(history)-1]); err != nil {
			return
		}
		finals = append(finals, full)
		dxs = append(dxs, dx)
		dx /= 2
	}
	cs = NewConvergenceStudy(title)
	for l := 0; l < levels-1; l++ {
		coarse, fine := finals[l], finals[l+1]
		if len(fine) != 2*len(coarse)-1 {
			return nil, fmt.Errorf("%w: %d grid points do not refine %d", ErrExactShape, len(fine), len(coarse))
		}
		shared := make([]float64, len(coarse))
		for i := range shared {
			shared[i] = fine[2*i]
		}
		cs.Add(dxs[l], floats.Distance(coarse, shared, 2)/math.Sqrt(float64(len(coarse))))
	}
	return
}
