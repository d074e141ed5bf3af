package expressions

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Value is the result of evaluating an Expression. Symbol bindings may be
// vectors, in which case arithmetic is element-wise with scalar broadcasting.
type Value struct {
	scalar float64
	vector []float64
	isVec  bool
}

func Scalar(f float64) Value {
	return Value{scalar: f}
}

func Vector(v []float64) Value {
	return Value{vector: v, isVec: true}
}

func (v Value) IsVector() bool { return v.isVec }

// Float returns the scalar content. It panics on vectors.
func (v Value) Float() float64 {
	if v.isVec {
		panic("expressions: Float called on a vector value")
	}
	return v.scalar
}

// Floats returns a copy of the vector content, or the scalar broadcast to length n.
func (v Value) Floats(n int) []float64 {
	if v.isVec {
		out := make([]float64, len(v.vector))
		copy(out, v.vector)
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v.scalar
	}
	return out
}

func (v Value) String() string {
	if v.isVec {
		return fmt.Sprintf("%v", v.vector)
	}
	return fmt.Sprintf("%v", v.scalar)
}

func apply(kind OpKind, a, b Value) (r Value, err error) {
	if !a.isVec && !b.isVec {
		return applyScalar(kind, a.scalar, b.scalar)
	}
	var (
		n int
	)
	switch {
	case a.isVec && b.isVec:
		if len(a.vector) != len(b.vector) {
			err = fmt.Errorf("%w: %d != %d in %s", ErrShapeMismatch, len(a.vector), len(b.vector), kind)
			return
		}
		n = len(a.vector)
	case a.isVec:
		n = len(a.vector)
	default:
		n = len(b.vector)
	}
	var (
		dst = make([]float64, n)
		x   = a.Floats(n)
		y   = b.Floats(n)
	)
	switch kind {
	case OpAdd:
		floats.AddTo(dst, x, y)
	case OpSub:
		floats.SubTo(dst, x, y)
	case OpMul:
		floats.MulTo(dst, x, y)
	case OpDiv:
		floats.DivTo(dst, x, y)
	case OpPow:
		for i := range dst {
			dst[i] = math.Pow(x[i], y[i])
		}
	}
	return Vector(dst), nil
}

func applyScalar(kind OpKind, a, b float64) (r Value, err error) {
	switch kind {
	case OpAdd:
		r = Scalar(a + b)
	case OpSub:
		r = Scalar(a - b)
	case OpMul:
		r = Scalar(a * b)
	case OpDiv:
		if b == 0 {
			err = fmt.Errorf("%w: %v/0", ErrDivisionByZero, a)
			return
		}
		r = Scalar(a / b)
	case OpPow:
		r = Scalar(math.Pow(a, b))
	}
	return
}
