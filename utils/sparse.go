package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims and At minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// ToMatrix expands the sparse storage into a writable dense Matrix
func (m DOK) ToMatrix() Matrix {
	var (
		nr, nc = m.Dims()
		R      = NewMatrix(nr, nc)
	)
	R.M.Copy(m.M.ToDense())
	return R
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// NewBanded places each diagonal value at its offset, 0 being the main diagonal,
// +k the k-th band above and -k the k-th band below. Entries falling outside
// the N x N matrix are dropped.
func NewBanded(N int, diagonals map[int]float64) (B DOK) {
	return NewBandedRect(N, N, 0, diagonals)
}

// NewBandedRect is NewBanded for an nr x nc matrix whose main diagonal starts
// at column shift, so row i holds diagonal k in column i+shift+k. The result is
// read only, ToMatrix gives a writable copy.
func NewBandedRect(nr, nc, shift int, diagonals map[int]float64) (B DOK) {
	var (
		offsets = make([]int, 0, len(diagonals))
	)
	B = NewDOK(nr, nc)
	for k := range diagonals {
		offsets = append(offsets, k)
	}
	sort.Ints(offsets)
	for _, k := range offsets {
		val := diagonals[k]
		if val == 0 {
			continue
		}
		for i := 0; i < nr; i++ {
			j := i + shift + k
			if j < 0 || j >= nc {
				continue
			}
			B.Set(i, j, val)
		}
	}
	B.SetReadOnly("banded")
	return
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

// MulVec returns m*x
func (m CSR) MulVec(x Vector) (y Vector) {
	var (
		nr, nc = m.Dims()
	)
	if x.Len() != nc {
		panic(fmt.Errorf("dimension mismatch: matrix %dx%d, vector %d", nr, nc, x.Len()))
	}
	y = NewVector(nr)
	y.V.MulVec(m.M, x.V)
	return
}
