// Package expressions is a minimal symbolic engine used to derive and display
// finite difference stencils. Trees are immutable: every builder returns a new
// node and never touches its operands.
package expressions

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrDivisionByZero = errors.New("expressions: division by zero")
	ErrUnknownSymbol  = errors.New("expressions: symbol not found in value map")
	ErrShapeMismatch  = errors.New("expressions: vector lengths differ")
)

type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

const terminalPrecedence = 5

func (k OpKind) Symbol() string {
	return [...]string{"+", "-", "*", "/", "^"}[k]
}

func (k OpKind) Precedence() int {
	switch k {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 3
	}
}

func (k OpKind) String() string {
	return [...]string{"Add", "Sub", "Mul", "Div", "Pow"}[k]
}

// Expression is closed over Number, Symbol and Operator.
type Expression interface {
	fmt.Stringer
	Precedence() int
	Operands() []Expression
	isExpression()
}

type Number struct {
	Value float64
}

type Symbol struct {
	Name string
}

type Operator struct {
	Kind        OpKind
	Left, Right Expression
}

func (Number) isExpression()   {}
func (Symbol) isExpression()   {}
func (Operator) isExpression() {}

func (Number) Precedence() int     { return terminalPrecedence }
func (Symbol) Precedence() int     { return terminalPrecedence }
func (o Operator) Precedence() int { return o.Kind.Precedence() }

func (Number) Operands() []Expression     { return []Expression{} }
func (Symbol) Operands() []Expression     { return []Expression{} }
func (o Operator) Operands() []Expression { return []Expression{o.Left, o.Right} }

// Equal compares a leaf against a raw scalar by value.
func (n Number) Equal(v float64) bool { return n.Value == v }

func NewNumber[T constraints.Integer | constraints.Float](v T) Number {
	return Number{Value: float64(v)}
}

func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// IsNumber reports whether e is a Number leaf holding exactly v.
func IsNumber(e Expression, v float64) bool {
	n, ok := e.(Number)
	return ok && n.Equal(v)
}

// Promote converts Go scalars to Number leaves and passes expressions through.
func Promote(v interface{}) Expression {
	switch val := v.(type) {
	case Expression:
		return val
	case float64:
		return NewNumber(val)
	case float32:
		return NewNumber(val)
	case int:
		return NewNumber(val)
	case int64:
		return NewNumber(val)
	case int32:
		return NewNumber(val)
	default:
		panic(fmt.Errorf("unable to promote %T to an expression", v))
	}
}

func Add(l, r interface{}) Expression {
	return Operator{Kind: OpAdd, Left: Promote(l), Right: Promote(r)}
}

func Sub(l, r interface{}) Expression {
	return Operator{Kind: OpSub, Left: Promote(l), Right: Promote(r)}
}

func Mul(l, r interface{}) Expression {
	return Operator{Kind: OpMul, Left: Promote(l), Right: Promote(r)}
}

func Pow(l, r interface{}) Expression {
	return Operator{Kind: OpPow, Left: Promote(l), Right: Promote(r)}
}

func Div(l, r interface{}) (Expression, error) {
	var (
		right = Promote(r)
	)
	if IsNumber(right, 0) {
		return nil, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, Promote(l))
	}
	return Operator{Kind: OpDiv, Left: Promote(l), Right: right}, nil
}

// MustDiv is Div for denominators known to be non-zero, such as step symbols.
func MustDiv(l, r interface{}) Expression {
	e, err := Div(l, r)
	if err != nil {
		panic(err)
	}
	return e
}
