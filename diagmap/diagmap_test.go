package diagmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/expressions"
)

func TestArithmetic(t *testing.T) {
	var (
		A = FromFloats(map[int]float64{0: 5, -1: 6, 1: 4})
		B = FromFloats(map[int]float64{-2: 3, 0: 2, 1: -5})
	)
	{
		sum := A.Add(B)
		assert.Equal(t, map[int]float64{-2: 3, -1: 6, 0: 7, 1: -1}, sum.MustFloats())
		diff := A.Sub(B)
		assert.Equal(t, map[int]float64{-2: -3, -1: 6, 0: 3, 1: 9}, diff.MustFloats())
	}
	{
		assert.Equal(t, map[int]float64{0: 10, -1: 12, 1: 8}, A.Scale(2).MustFloats())
		assert.Equal(t, "{-1: 6, 0: 5, 1: 4}", A.String())
		assert.Equal(t, []int{-1, 0, 1}, A.Keys())
		kmax, ok := B.MaxKey()
		assert.True(t, ok)
		assert.Equal(t, 1, kmax)
		kmin, _ := B.MinKey()
		assert.Equal(t, -2, kmin)
		_, ok = New(nil).MaxKey()
		assert.False(t, ok)
		below, above := B.Reach()
		assert.Equal(t, 2, below)
		assert.Equal(t, 1, above)
	}
	{
		f, err := A.Float(7)
		require.NoError(t, err)
		assert.Equal(t, 0., f)
	}
}

func TestAlgebraicProperties(t *testing.T) {
	var (
		maps = []DiagonalMap{
			FromFloats(map[int]float64{0: 5, -1: 6, 1: 4}),
			FromFloats(map[int]float64{-2: 3, 0: 2, 1: -5}),
			FromFloats(map[int]float64{0: -2, 1: 1, -1: 1}),
			FromFloats(map[int]float64{3: 0.125}),
			New(nil),
		}
	)
	for _, A := range maps {
		for _, B := range maps {
			assert.True(t, A.Add(B).Sub(B).Equal(A), "(A+B)-B == A for A=%s B=%s", A, B)
			assert.True(t, A.Add(B).Equal(B.Add(A)), "A+B == B+A for A=%s B=%s", A, B)
		}
		for _, k := range []int{-3, -1, 0, 2, 5} {
			assert.True(t, A.Shift(k).Shift(-k).Equal(A))
		}
	}
	{
		S := FromFloats(map[int]float64{0: -1, -1: 1}).Shift(1)
		assert.Equal(t, map[int]float64{1: -1, 0: 1}, S.MustFloats())
	}
}

func TestSymbolicEntries(t *testing.T) {
	var (
		x = expressions.NewSymbol("x")
	)
	{
		A := FromFloats(map[int]float64{0: 5, -1: 6, 1: 4})
		D, err := A.Div(x)
		require.NoError(t, err)
		assert.False(t, D.IsNumeric())
		for _, k := range A.Keys() {
			e, _ := D.Get(k)
			assert.Equal(t, "/x", e.String()[1:], "offset %d", k)
		}
		_, err = D.Floats()
		assert.ErrorIs(t, err, ErrNotNumeric)
		_, err = A.Div(expressions.NewNumber(2))
		assert.ErrorIs(t, err, ErrNotSymbol)
		_, err = A.Div(expressions.Add(x, 1))
		assert.ErrorIs(t, err, ErrNotSymbol)
		_, err = A.Div(expressions.Pow(x, 2))
		assert.NoError(t, err)
	}
	{
		A := New(map[int]expressions.Expression{
			0:  expressions.MustDiv(1, x),
			-1: expressions.Mul(5, x),
			1:  expressions.Add(x, 2),
			2:  expressions.Sub(x, x),
		})
		S, err := A.Substitute(0.1, "x")
		require.NoError(t, err)
		assert.True(t, S.EqualWithin(FromFloats(map[int]float64{0: 10, -1: 0.5, 1: 2.1}), 1.e-12))
		assert.Equal(t, 3, S.Len())
		// Substituting a numeric map again leaves it alone
		S2, err := S.Substitute(0.1, "x")
		require.NoError(t, err)
		assert.True(t, S2.Equal(S))
		_, err = A.Substitute(0.1, "y")
		assert.ErrorIs(t, err, expressions.ErrUnknownSymbol)
	}
	{
		A := FromFloats(map[int]float64{0: 0, 1: 2}).Clean()
		assert.Equal(t, []int{1}, A.Keys())
		R := FromFloats(map[int]float64{0: 93333.33, 1: -1666.6667}).Round(0)
		assert.Equal(t, map[int]float64{0: 93333, 1: -1667}, R.MustFloats())
	}
}

func TestToMatrix(t *testing.T) {
	{
		M, err := FromFloats(map[int]float64{0: 4, 1: -1, -1: -1}).ToMatrix(3)
		require.NoError(t, err)
		assert.Equal(t, []float64{
			4, -1, 0,
			-1, 4, -1,
			0, -1, 4,
		}, M.Data())
	}
	{
		D, _ := FromFloats(map[int]float64{0: 1}).Div(expressions.NewSymbol("h"))
		_, err := D.ToMatrix(3)
		assert.ErrorIs(t, err, ErrNotNumeric)
	}
}

func TestCombine(t *testing.T) {
	// Uxx = 2*Ut, implicit
	{
		space := FromFloats(map[int]float64{0: -2, 1: 1, -1: 1})
		time := FromFloats(map[int]float64{0: -2, 1: 2})
		c, err := Combine(space, time, Implicit)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{0: 4, 1: -1, -1: -1}, c.Interior.MustFloats())
		assert.Equal(t, map[int]float64{0: 2}, c.RHST.MustFloats())
		assert.Equal(t, map[int]float64{1: 1, -1: 1}, c.Boundary.MustFloats())
		assert.Nil(t, c.RHSX)
		assert.Equal(t, 1, c.NewLevel)
	}
	// A zero weight at a nonzero offset reaches no boundary point
	{
		space := FromFloats(map[int]float64{0: -2, 1: 1, -1: 1, 2: 0})
		time := FromFloats(map[int]float64{0: -2, 1: 2})
		c, err := Combine(space, time, Implicit)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{1: 1, -1: 1}, c.Boundary.MustFloats())
	}
	{
		space := FromFloats(map[int]float64{0: 1, -1: 2, 1: 3})
		time := FromFloats(map[int]float64{0: 4, 1: 5})
		c, err := Combine(space, time, Implicit)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{-1: -2, 0: 4, 1: -3}, c.Interior.MustFloats())
		assert.Equal(t, map[int]float64{0: -4}, c.RHST.MustFloats())
		assert.Equal(t, map[int]float64{-1: 2, 1: 3}, c.Boundary.MustFloats())

		c, err = Combine(space, time, Explicit)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{0: 5}, c.Interior.MustFloats())
		require.NotNil(t, c.RHSX)
		assert.True(t, c.RHSX.Equal(space))
		assert.Equal(t, map[int]float64{0: -4}, c.RHST.MustFloats())
		assert.Equal(t, map[int]float64{-1: 2, 1: 3}, c.Boundary.MustFloats())
	}
	{
		// The inputs are left untouched
		space := FromFloats(map[int]float64{0: -5, -1: 5})
		time := FromFloats(map[int]float64{0: -5, 1: 5})
		_, err := Combine(space, time, Implicit)
		require.NoError(t, err)
		assert.Equal(t, 2, time.Len())
		assert.Equal(t, 2, space.Len())
	}
	{
		_, err := Combine(FromFloats(map[int]float64{0: 1}), FromFloats(map[int]float64{0: 1}), Implicit)
		assert.ErrorIs(t, err, ErrSteadyResidual)
		_, err = Combine(FromFloats(map[int]float64{0: 1}), FromFloats(map[int]float64{0: 1, 1: 2}), Scheme(7))
		assert.ErrorIs(t, err, ErrUnknownScheme)
	}
}

func TestParseScheme(t *testing.T) {
	for name, want := range map[string]Scheme{"implicit": Implicit, "imp": Implicit, "Explicit": Explicit, "exp": Explicit} {
		s, err := ParseScheme(name)
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}
	_, err := ParseScheme("crank")
	assert.ErrorIs(t, err, ErrUnknownScheme)
	assert.Equal(t, "explicit", Explicit.String())
}
