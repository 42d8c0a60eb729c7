package ptree_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	ptree "github.com/reoring/ptree"
)

func TestProcessor_IdentityPass(t *testing.T) {
	in := ptree.Form{Op: "add", A: ptree.Form{Op: "neg", A: 1}, B: 2}
	out, err := ptree.NewProcessor().Process(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := out.(*ptree.Node)
	if !ok {
		t.Fatalf("expected a node, got %T", out)
	}
	if got := n.ToForm(); !reflect.DeepEqual(got, in) {
		t.Fatalf("identity pass changed the tree:\n got %#v\nwant %#v", got, in)
	}
}

func TestProcessor_StrictUnrecognised(t *testing.T) {
	_, err := ptree.NewProcessor().Strict().Process(ptree.Form{Op: "foo", A: 1, B: 2})
	if err == nil {
		t.Fatalf("expected error for unrecognised operator")
	}
	ue, ok := ptree.AsUnrecognisedOperator(err)
	if !ok {
		t.Fatalf("expected UnrecognisedOperatorError, got %v", err)
	}
	if ue.Node == nil || ue.Node.Op() != "foo" {
		t.Fatalf("error should carry the offending node, got %v", ue.Node)
	}
}

func TestProcessor_NonStrictPassesThrough(t *testing.T) {
	out, err := ptree.NewProcessor().Process(ptree.Form{Op: "foo", A: 1, B: 2})
	if err != nil {
		t.Fatalf("non-strict processor must not fail: %v", err)
	}
	if n, ok := out.(*ptree.Node); !ok || n.Op() != "foo" {
		t.Fatalf("expected the node back unchanged, got %v", out)
	}
}

func TestProcessor_Delegation(t *testing.T) {
	calls := 0
	fold := func(n *ptree.Node) (any, error) {
		calls++
		return fmt.Sprintf("folded:%v,%v", n.A(), n.B()), nil
	}
	p := ptree.NewProcessor().Delegate(fold, "add", "sub")

	outAdd, err := p.Process(ptree.Form{Op: "add", A: 1, B: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	outSub, err := p.Process(ptree.Form{Op: "sub", A: 1, B: 2})
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if outAdd != outSub || outAdd != "folded:1,2" {
		t.Fatalf("delegated tags diverged: add=%v sub=%v", outAdd, outSub)
	}
	if calls != 2 {
		t.Fatalf("handler invoked %d times, want 2", calls)
	}
}

func TestProcessor_BottomUpOrder(t *testing.T) {
	var order []string
	rec := func(n *ptree.Node) (any, error) {
		order = append(order, n.Op())
		return n, nil
	}
	p := ptree.NewProcessor().On("inner", rec).On("outer", rec)
	if _, err := p.Process(ptree.Form{Op: "outer", A: ptree.Form{Op: "inner", A: 1}, B: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(order, []string{"inner", "outer"}) {
		t.Fatalf("order = %v, want children before parent", order)
	}
}

func TestProcessor_PrimitiveHandlerRewritesLeaves(t *testing.T) {
	p := ptree.NewProcessor().OnPrimitive(func(v any) (any, error) {
		if i, ok := v.(int); ok {
			return i * 2, nil
		}
		return v, nil
	})
	out, err := p.Process(ptree.Form{Op: "add", A: 1, B: ptree.Form{Op: "neg", A: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ptree.Form{Op: "add", A: 2, B: ptree.Form{Op: "neg", A: 6}}
	if got := out.(*ptree.Node).ToForm(); !reflect.DeepEqual(got, want) {
		t.Fatalf("leaves not rewritten:\n got %#v\nwant %#v", got, want)
	}
}

func TestProcessor_UnrecognisedOverride(t *testing.T) {
	p := ptree.NewProcessor().Strict().OnUnrecognised(func(n *ptree.Node) (any, error) {
		n.Annotations().Set("declined", true)
		return n, nil
	})
	out, err := p.Process(ptree.Form{Op: "mystery", A: 1})
	if err != nil {
		t.Fatalf("explicit fallback must win over strict: %v", err)
	}
	if out.(*ptree.Node).Annotations().Get("declined") != true {
		t.Fatalf("fallback was not invoked")
	}
}

func TestProcessor_HandlerErrorPropagates(t *testing.T) {
	errBoom := errors.New("boom")
	p := ptree.NewProcessor().On("inner", func(n *ptree.Node) (any, error) {
		return nil, errBoom
	})
	_, err := p.Process(ptree.Form{Op: "outer", A: ptree.Form{Op: "inner", A: 1}, B: 2})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestProcessor_HandlerResultReplacesOperand(t *testing.T) {
	fold := func(n *ptree.Node) (any, error) {
		return n.A().(int) + n.B().(int), nil
	}
	p := ptree.NewProcessor().On("add", fold)
	out, err := p.Process(ptree.Form{Op: "mul", A: ptree.Form{Op: "add", A: 1, B: 2}, B: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := out.(*ptree.Node)
	if n.Op() != "mul" || n.A() != 3 || n.B() != 4 {
		t.Fatalf("folded child not substituted into parent: %v", n)
	}
}
