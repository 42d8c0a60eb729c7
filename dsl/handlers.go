package dsl

// Package dsl provides small handler combinators so common rewrites can be
// registered without per-operator boilerplate.

import (
	ptree "github.com/reoring/ptree"
)

// SetOp returns a handler that rewrites the node's operator tag and keeps
// the node in place.
func SetOp(op string) ptree.Handler {
	return func(n *ptree.Node) (any, error) {
		n.SetOp(op)
		return n, nil
	}
}

// Annotate returns a handler that stores v under key in the node's
// annotation store.
func Annotate(key string, v any) ptree.Handler {
	return func(n *ptree.Node) (any, error) {
		n.Annotations().Set(key, v)
		return n, nil
	}
}

// Chain composes handlers left-to-right into a single handler. Each handler
// receives the previous one's output while it remains a node; a non-node
// result short-circuits the rest and becomes the chain's result.
func Chain(handlers ...ptree.Handler) ptree.Handler {
	return func(n *ptree.Node) (any, error) {
		var v any = n
		for _, h := range handlers {
			node, ok := v.(*ptree.Node)
			if !ok {
				return v, nil
			}
			var err error
			v, err = h(node)
			if err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}
