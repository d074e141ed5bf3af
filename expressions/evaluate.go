package expressions

import "fmt"

// PostVisit walks e children-first and hands each node the results computed
// for its operands.
func PostVisit[T any](e Expression, visit func(e Expression, children []T) (T, error)) (T, error) {
	var (
		zero     T
		operands = e.Operands()
		children = make([]T, len(operands))
	)
	for i, c := range operands {
		val, err := PostVisit(c, visit)
		if err != nil {
			return zero, err
		}
		children[i] = val
	}
	return visit(e, children)
}

// Evaluate computes e with the given symbol bindings.
func Evaluate(e Expression, symbols map[string]Value) (Value, error) {
	return PostVisit(e, func(node Expression, children []Value) (Value, error) {
		switch n := node.(type) {
		case Number:
			return Scalar(n.Value), nil
		case Symbol:
			val, ok := symbols[n.Name]
			if !ok {
				return Value{}, fmt.Errorf("%w: %q, see Info() for the symbols in use", ErrUnknownSymbol, n.Name)
			}
			return val, nil
		case Operator:
			return apply(n.Kind, children[0], children[1])
		default:
			return Value{}, fmt.Errorf("cannot evaluate a %T", node)
		}
	})
}

// EvaluateFloat is Evaluate for scalar bindings and a scalar result.
func EvaluateFloat(e Expression, symbols map[string]float64) (float64, error) {
	var (
		vals = make(map[string]Value, len(symbols))
	)
	for name, v := range symbols {
		vals[name] = Scalar(v)
	}
	res, err := Evaluate(e, vals)
	if err != nil {
		return 0, err
	}
	return res.Float(), nil
}

// Symbols lists the distinct symbol names referenced by e.
func Symbols(e Expression) (names []string) {
	var (
		seen = make(map[string]bool)
	)
	_, _ = PostVisit(e, func(node Expression, _ []struct{}) (struct{}, error) {
		if s, ok := node.(Symbol); ok && !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
		return struct{}{}, nil
	})
	return
}
