package expressions

import (
	"fmt"
	"strconv"
)

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (s Symbol) String() string { return s.Name }

func (o Operator) String() string {
	str, err := Format(o)
	if err != nil {
		panic(err)
	}
	return str
}

// Format renders e with minimal parenthesization, dropping 0 in sums and 1 in
// products. A literal zero denominator is an error.
func Format(e Expression) (str string, err error) {
	switch n := e.(type) {
	case Number, Symbol:
		return n.String(), nil
	case Operator:
		return formatOperator(n)
	default:
		return "", fmt.Errorf("unable to format %T", e)
	}
}

func formatOperator(o Operator) (str string, err error) {
	var (
		prec        = o.Precedence()
		left, right string
	)
	if left, err = Format(o.Left); err != nil {
		return
	}
	if right, err = Format(o.Right); err != nil {
		return
	}
	leftRaw, rightRaw := left, right
	if prec > o.Left.Precedence() ||
		(o.Kind == OpPow && prec == o.Left.Precedence()) {
		left = "(" + left + ")"
	}
	if prec > o.Right.Precedence() ||
		(prec == o.Right.Precedence() && (o.Kind == OpSub || o.Kind == OpDiv)) {
		right = "(" + right + ")"
	}
	leftZero, rightZero := IsNumber(o.Left, 0), IsNumber(o.Right, 0)
	switch {
	case o.Kind == OpAdd && (leftZero || rightZero):
		if leftZero {
			return rightRaw, nil
		}
		return leftRaw, nil
	case o.Kind == OpSub && rightZero:
		return leftRaw, nil
	case o.Kind == OpSub && leftZero:
		return "-" + right, nil
	case o.Kind == OpDiv && rightZero:
		return "", fmt.Errorf("%w: %s/0", ErrDivisionByZero, left)
	case (o.Kind == OpMul || o.Kind == OpDiv) && leftZero, o.Kind == OpMul && rightZero:
		return "0", nil
	case o.Kind == OpMul && IsNumber(o.Left, 1):
		return right, nil
	case (o.Kind == OpMul || o.Kind == OpDiv) && IsNumber(o.Right, 1):
		return left, nil
	case o.Kind == OpAdd && leadsWithMinus(o.Right):
		// 1+-2*x reads as 1-2*x
		return left + rightRaw, nil
	}
	return left + o.Kind.Symbol() + right, nil
}

func leadsWithMinus(e Expression) bool {
	switch n := e.(type) {
	case Number:
		return n.Value < 0
	case Operator:
		if n.Kind != OpMul {
			return false
		}
		num, ok := n.Left.(Number)
		return ok && num.Value < 0
	}
	return false
}
