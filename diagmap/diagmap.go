package diagmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/gofd/expressions"
	"github.com/notargets/gofd/utils"
)

var (
	ErrNotSymbol  = errors.New("diagmap: division is only defined by a symbol")
	ErrNotNumeric = errors.New("diagmap: entry still holds symbols")
)

/*
DiagonalMap maps a signed diagonal offset to the value found on that diagonal:
0 is the main diagonal, +k the k-th band above and -k the k-th band below.
Values are expressions so that step sizes can stay symbolic until Substitute
collapses them to numbers. Missing offsets are zero, and all operations return
a new map.
*/
type DiagonalMap struct {
	entries map[int]expressions.Expression
}

func New(entries map[int]expressions.Expression) (dm DiagonalMap) {
	dm = DiagonalMap{entries: make(map[int]expressions.Expression, len(entries))}
	for k, v := range entries {
		dm.entries[k] = v
	}
	return
}

func FromFloats(entries map[int]float64) (dm DiagonalMap) {
	dm = DiagonalMap{entries: make(map[int]expressions.Expression, len(entries))}
	for k, v := range entries {
		dm.entries[k] = expressions.NewNumber(v)
	}
	return
}

func (dm DiagonalMap) Len() int { return len(dm.entries) }

// Keys returns the offsets present, ascending
func (dm DiagonalMap) Keys() (keys []int) {
	keys = make([]int, 0, len(dm.entries))
	for k := range dm.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return
}

func (dm DiagonalMap) Get(k int) (e expressions.Expression, ok bool) {
	e, ok = dm.entries[k]
	return
}

// Float returns the numeric value on diagonal k, zero when absent
func (dm DiagonalMap) Float(k int) (f float64, err error) {
	e, ok := dm.entries[k]
	if !ok {
		return
	}
	n, isNum := e.(expressions.Number)
	if !isNum {
		err = fmt.Errorf("%w: offset %d holds %s", ErrNotNumeric, k, e)
		return
	}
	f = n.Value
	return
}

func (dm DiagonalMap) IsNumeric() bool {
	for _, e := range dm.entries {
		if _, ok := e.(expressions.Number); !ok {
			return false
		}
	}
	return true
}

func (dm DiagonalMap) Floats() (f map[int]float64, err error) {
	f = make(map[int]float64, len(dm.entries))
	for k := range dm.entries {
		if f[k], err = dm.Float(k); err != nil {
			return nil, err
		}
	}
	return
}

// MustFloats is Floats for maps known to be numeric
func (dm DiagonalMap) MustFloats() map[int]float64 {
	f, err := dm.Floats()
	if err != nil {
		panic(err)
	}
	return f
}

func (dm DiagonalMap) Add(other DiagonalMap) DiagonalMap {
	return dm.pointwise(other, expressions.OpAdd)
}

func (dm DiagonalMap) Sub(other DiagonalMap) DiagonalMap {
	return dm.pointwise(other, expressions.OpSub)
}

func (dm DiagonalMap) pointwise(other DiagonalMap, kind expressions.OpKind) (R DiagonalMap) {
	var (
		zero = expressions.NewNumber(0)
	)
	R = New(nil)
	for k := range keyUnion(dm, other) {
		a, ok := dm.entries[k]
		if !ok {
			a = zero
		}
		b, ok := other.entries[k]
		if !ok {
			b = zero
		}
		R.entries[k] = fold(kind, a, b)
	}
	return
}

func (dm DiagonalMap) Scale(a float64) (R DiagonalMap) {
	R = New(nil)
	for k, v := range dm.entries {
		R.entries[k] = fold(expressions.OpMul, v, expressions.NewNumber(a))
	}
	return
}

// Div divides every entry by a step symbol, or a step symbol raised to a
// numeric power
func (dm DiagonalMap) Div(divisor expressions.Expression) (R DiagonalMap, err error) {
	if !isSymbolic(divisor) {
		err = fmt.Errorf("%w: cannot divide by %s", ErrNotSymbol, divisor)
		return
	}
	R = New(nil)
	for k, v := range dm.entries {
		if R.entries[k], err = expressions.Div(v, divisor); err != nil {
			return DiagonalMap{}, err
		}
	}
	return
}

func isSymbolic(e expressions.Expression) bool {
	switch d := e.(type) {
	case expressions.Symbol:
		return true
	case expressions.Operator:
		if d.Kind != expressions.OpPow {
			return false
		}
		_, baseOK := d.Left.(expressions.Symbol)
		_, expOK := d.Right.(expressions.Number)
		return baseOK && expOK
	}
	return false
}

// Shift moves every entry by offset places
func (dm DiagonalMap) Shift(offset int) (R DiagonalMap) {
	R = New(nil)
	for k, v := range dm.entries {
		R.entries[k+offset] = v
	}
	return
}

// Substitute evaluates every entry with symbol bound to value and drops the
// resulting zeros. Entries must not reference any other symbol.
func (dm DiagonalMap) Substitute(value float64, symbol string) (R DiagonalMap, err error) {
	var (
		bindings = map[string]float64{symbol: value}
	)
	R = New(nil)
	for k, v := range dm.entries {
		var f float64
		if f, err = expressions.EvaluateFloat(v, bindings); err != nil {
			return DiagonalMap{}, fmt.Errorf("offset %d: %w", k, err)
		}
		R.entries[k] = expressions.NewNumber(f)
	}
	R = R.Clean()
	return
}

// Clean drops numeric zero entries
func (dm DiagonalMap) Clean() (R DiagonalMap) {
	R = New(nil)
	for k, v := range dm.entries {
		if expressions.IsNumber(v, 0) {
			continue
		}
		R.entries[k] = v
	}
	return
}

// Without returns a copy of the map with the given offsets removed
func (dm DiagonalMap) Without(offsets ...int) (R DiagonalMap) {
	R = New(dm.entries)
	for _, k := range offsets {
		delete(R.entries, k)
	}
	return
}

func (dm DiagonalMap) MaxKey() (k int, ok bool) {
	keys := dm.Keys()
	if len(keys) == 0 {
		return
	}
	return keys[len(keys)-1], true
}

func (dm DiagonalMap) MinKey() (k int, ok bool) {
	keys := dm.Keys()
	if len(keys) == 0 {
		return
	}
	return keys[0], true
}

// Reach returns how far the map extends below and above the main diagonal
func (dm DiagonalMap) Reach() (below, above int) {
	for k := range dm.Clean().entries {
		switch {
		case k < 0 && -k > below:
			below = -k
		case k > 0 && k > above:
			above = k
		}
	}
	return
}

// Round rounds numeric entries to the given decimals, symbolic entries are kept
func (dm DiagonalMap) Round(decimals int) (R DiagonalMap) {
	R = New(nil)
	for k, v := range dm.entries {
		if n, ok := v.(expressions.Number); ok {
			v = expressions.NewNumber(utils.RoundTo(n.Value, decimals))
		}
		R.entries[k] = v
	}
	return
}

func (dm DiagonalMap) Equal(other DiagonalMap) bool {
	return dm.EqualWithin(other, 0)
}

// EqualWithin compares two maps after cleaning, numeric entries within a
// relative tolerance and symbolic ones by their printed form
func (dm DiagonalMap) EqualWithin(other DiagonalMap, tol float64) bool {
	var (
		a, b = dm.Clean(), other.Clean()
	)
	if a.Len() != b.Len() {
		return false
	}
	for k, va := range a.entries {
		vb, ok := b.entries[k]
		if !ok {
			return false
		}
		na, aNum := va.(expressions.Number)
		nb, bNum := vb.(expressions.Number)
		switch {
		case aNum && bNum:
			if !utils.NearlyEqual(na.Value, nb.Value, tol) {
				return false
			}
		case aNum != bNum:
			return false
		default:
			if va.String() != vb.String() {
				return false
			}
		}
	}
	return true
}

func (dm DiagonalMap) String() string {
	var (
		terms = make([]string, 0, len(dm.entries))
	)
	for _, k := range dm.Keys() {
		terms = append(terms, fmt.Sprintf("%d: %s", k, dm.entries[k]))
	}
	return "{" + strings.Join(terms, ", ") + "}"
}

// ToDOK realizes a numeric map as an N x N banded sparse matrix
func (dm DiagonalMap) ToDOK(N int) (B utils.DOK, err error) {
	var f map[int]float64
	if f, err = dm.Floats(); err != nil {
		return
	}
	B = utils.NewBanded(N, f)
	return
}

// ToMatrix realizes a numeric map as a dense N x N banded matrix
func (dm DiagonalMap) ToMatrix(N int) (M utils.Matrix, err error) {
	var B utils.DOK
	if B, err = dm.ToDOK(N); err != nil {
		return
	}
	M = B.ToMatrix()
	return
}

func keyUnion(a, b DiagonalMap) (keys map[int]struct{}) {
	keys = make(map[int]struct{}, len(a.entries)+len(b.entries))
	for k := range a.entries {
		keys[k] = struct{}{}
	}
	for k := range b.entries {
		keys[k] = struct{}{}
	}
	return
}

// fold builds l op r, collapsing numeric operands right away
func fold(kind expressions.OpKind, l, r expressions.Expression) expressions.Expression {
	a, aNum := l.(expressions.Number)
	b, bNum := r.(expressions.Number)
	if aNum && bNum {
		switch kind {
		case expressions.OpAdd:
			return expressions.NewNumber(a.Value + b.Value)
		case expressions.OpSub:
			return expressions.NewNumber(a.Value - b.Value)
		case expressions.OpMul:
			return expressions.NewNumber(a.Value * b.Value)
		}
	}
	switch {
	case kind == expressions.OpAdd && expressions.IsNumber(l, 0):
		return r
	case kind != expressions.OpMul && expressions.IsNumber(r, 0):
		return l
	}
	switch kind {
	case expressions.OpAdd:
		return expressions.Add(l, r)
	case expressions.OpSub:
		return expressions.Sub(l, r)
	default:
		return expressions.Mul(l, r)
	}
}
