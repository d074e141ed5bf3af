package expressions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	var (
		x     = NewSymbol("x")
		y     = NewSymbol("y")
		three = NewNumber(3)
		zero  = NewNumber(0)
	)
	// Neutral elements
	{
		assert.Equal(t, "x+y", Add(x, y).String())
		assert.Equal(t, "3+y", Add(three, y).String())
		assert.Equal(t, "3", Add(three, zero).String())
		assert.Equal(t, "x-y", Sub(x, y).String())
		assert.Equal(t, "3", Sub(three, zero).String())
		assert.Equal(t, "-y", Sub(zero, y).String())
		assert.Equal(t, "x*y", Mul(x, y).String())
		assert.Equal(t, "0", Mul(three, zero).String())
		assert.Equal(t, "y", Mul(1, y).String())
		assert.Equal(t, "y", Mul(y, 1).String())
		assert.Equal(t, "(x+y)", Mul(Add(x, y), 1).String())
		assert.Equal(t, "x", MustDiv(x, 1).String())
		assert.Equal(t, "3/y", MustDiv(three, y).String())
		assert.Equal(t, "x^y", Pow(x, y).String())
		assert.Equal(t, "3^0", Pow(three, zero).String())
	}
	// Precedence
	{
		cases := []struct {
			expr Expression
			str  string
		}{
			{Sub(Mul(Add(2, x), 3), MustDiv(2, Add(5, y))), "(2+x)*3-2/(5+y)"},
			{MustDiv(MustDiv(1, x), Sub(y, x)), "1/x/(y-x)"},
			{Sub(Add(Add(y, 2), Mul(5, x)), Add(2, Mul(5, Add(x, 2)))), "y+2+5*x-(2+5*(x+2))"},
			{Mul(Mul(Add(2, Mul(x, 5)), Mul(NewNumber(2), NewNumber(4))), Add(2, y)), "(2+x*5)*2*4*(2+y)"},
			{Add(Pow(x, Add(y, 2)), MustDiv(Pow(2, MustDiv(x, y)), Add(Pow(2, x), y))), "x^(y+2)+2^(x/y)/(2^x+y)"},
			{MustDiv(x, Mul(y, 2)), "x/(y*2)"},
			{Add(Mul(0.5, x), Mul(-0.5, y)), "0.5*x-0.5*y"},
			{Add(x, -3), "x-3"},
		}
		for _, c := range cases {
			assert.Equal(t, c.str, c.expr.String())
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	{
		_, err := Div(NewNumber(3), NewNumber(0))
		require.ErrorIs(t, err, ErrDivisionByZero)
		_, err = Div(NewNumber(3), 0)
		require.ErrorIs(t, err, ErrDivisionByZero)
	}
	{
		// A hand built zero denominator fails when printed
		bad := Operator{Kind: OpDiv, Left: NewSymbol("x"), Right: NewNumber(0)}
		_, err := Format(bad)
		assert.ErrorIs(t, err, ErrDivisionByZero)
		assert.Panics(t, func() { _ = bad.String() })
	}
	{
		e := MustDiv(1, NewSymbol("h"))
		_, err := EvaluateFloat(e, map[string]float64{"h": 0})
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}
}

func TestEvaluate(t *testing.T) {
	var (
		x = NewSymbol("x")
		y = NewSymbol("y")
	)
	cases := []struct {
		expr   Expression
		x, y   float64
		result float64
	}{
		{Sub(Add(MustDiv(1, x), 2), y), 4, 2, 0.25},
		{Add(Sub(Add(MustDiv(x, y), Mul(2, x)), y), 1), 8, 2, 19},
		{Sub(Add(Mul(x, x), Mul(2, y)), Mul(y, 5)), 2, 3, -5},
		{Sub(Mul(x, Add(2, y)), Mul(Add(y, x), Add(x, Mul(2, y)))), 1, 2, -11},
		{Add(Add(Pow(x, y), Pow(y, 2)), Mul(2, Pow(Add(x, y), 5))), 1, 2, 491},
	}
	for _, c := range cases {
		res, err := EvaluateFloat(c.expr, map[string]float64{"x": c.x, "y": c.y})
		require.NoError(t, err)
		assert.InDelta(t, c.result, res, 1.e-12, c.expr.String())
	}
	{
		_, err := EvaluateFloat(Add(x, y), map[string]float64{"x": 1})
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	}
}

func TestEvaluateVector(t *testing.T) {
	var (
		x = NewSymbol("x")
		h = NewSymbol("h")
	)
	{
		e := MustDiv(Add(Mul(2, x), 1), h)
		res, err := Evaluate(e, map[string]Value{
			"x": Vector([]float64{1, 2, 3}),
			"h": Scalar(0.5),
		})
		require.NoError(t, err)
		assert.True(t, res.IsVector())
		assert.InDeltaSlice(t, []float64{6, 10, 14}, res.Floats(0), 1.e-12)
	}
	{
		e := Sub(1, Pow(x, 2))
		res, err := Evaluate(e, map[string]Value{"x": Vector([]float64{0, 1, 2})})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 0, -3}, res.Floats(0), 1.e-12)
	}
	{
		_, err := Evaluate(Add(x, h), map[string]Value{
			"x": Vector([]float64{1, 2}),
			"h": Vector([]float64{1, 2, 3}),
		})
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
}

func TestPrintedTreeEvaluates(t *testing.T) {
	// The printed form is diagnostic only, the tree it came from evaluates like the algebra on paper
	var (
		h = NewSymbol("h")
		u = NewSymbol("u")
	)
	e := MustDiv(Add(Mul(-2, u), Mul(1, u)), Pow(h, 2))
	assert.Equal(t, "(-2*u+u)/h^2", e.String())
	res, err := EvaluateFloat(e, map[string]float64{"h": 0.1, "u": 3})
	require.NoError(t, err)
	assert.InDelta(t, (-2*3.+3.)/(0.1*0.1), res, 1.e-9)
}

func TestSymbols(t *testing.T) {
	e := Add(Mul(NewSymbol("a"), NewSymbol("b")), NewSymbol("a"))
	assert.Equal(t, []string{"a", "b"}, Symbols(e))
	assert.Nil(t, Symbols(NewNumber(2)))
	assert.True(t, IsNumber(NewNumber(2), 2))
	assert.False(t, IsNumber(NewSymbol("x"), 2))
}
