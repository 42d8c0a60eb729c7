package formwire

// Package formwire maps between ptree.Form and the generic any shape shared
// by the wire codecs: a form is a 2- or 3-element array whose first element
// is the operator tag and whose remaining elements are operands, nested
// arrays again being forms. This package is internal and not part of the
// public API.

import (
	"fmt"

	ptree "github.com/reoring/ptree"
)

// ToAny renders f into nested []any suitable for JSON or YAML encoding.
// Node operands are rendered through their canonical form.
func ToAny(f ptree.Form) any {
	arr := []any{f.Op, operandToAny(f.A)}
	if f.B != nil {
		arr = append(arr, operandToAny(f.B))
	}
	return arr
}

func operandToAny(v any) any {
	switch t := v.(type) {
	case ptree.Form:
		return ToAny(t)
	case *ptree.Node:
		return ToAny(t.ToForm())
	default:
		return v
	}
}

// FromAny rebuilds a Form from a decoded wire value.
func FromAny(v any) (ptree.Form, error) {
	arr, ok := v.([]any)
	if !ok {
		return ptree.Form{}, fmt.Errorf("form must be an array, got %T", v)
	}
	if len(arr) < 2 || len(arr) > 3 {
		return ptree.Form{}, fmt.Errorf("form arity must be 2 or 3, got %d", len(arr))
	}
	op, ok := arr[0].(string)
	if !ok {
		return ptree.Form{}, fmt.Errorf("operator tag must be a string, got %T", arr[0])
	}
	a, err := operandFromAny(arr[1])
	if err != nil {
		return ptree.Form{}, err
	}
	f := ptree.Form{Op: op, A: a}
	if len(arr) == 3 {
		b, err := operandFromAny(arr[2])
		if err != nil {
			return ptree.Form{}, err
		}
		f.B = b
	}
	return f, nil
}

func operandFromAny(v any) (any, error) {
	if _, ok := v.([]any); ok {
		f, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return v, nil
}
