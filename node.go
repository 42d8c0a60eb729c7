package ptree

import "fmt"

// Node is one element of a parse tree: an operator tag, up to two operand
// slots, and an annotation store. Operand slots may hold a raw Form awaiting
// lazy conversion; the accessors materialize a raw form into a Node on first
// read and the materialized node replaces the raw form in place, so
// conversion happens at most once per slot.
//
// A node owns its operands exclusively: trees only, no sharing, no cycles.
type Node struct {
	op string
	a  any
	b  any
	x  Annotations
}

// NewNode builds a node with the given operator and operand slots. Operands
// may be raw forms, nodes, or primitives; b == nil means unary.
func NewNode(op string, a, b any) *Node {
	return &Node{op: op, a: a, b: b, x: Annotations{}}
}

// FromForm materializes the top level of a raw form. The form's operands are
// stored as-is and converted lazily on first read.
func FromForm(f Form) *Node {
	return NewNode(f.Op, f.A, f.B)
}

// Op returns the operator tag used for dispatch.
func (n *Node) Op() string { return n.op }

// SetOp reassigns the operator tag. Handlers may rewrite it; the engine does
// not re-validate consistency afterwards.
func (n *Node) SetOp(op string) { n.op = op }

// A returns the first operand, materializing a stored raw form on first read.
func (n *Node) A() any {
	if f, ok := n.a.(Form); ok {
		n.a = FromForm(f)
	}
	return n.a
}

// SetA replaces the first operand slot.
func (n *Node) SetA(v any) { n.a = v }

// B returns the second operand, materializing a stored raw form on first
// read. nil means the operand is absent.
func (n *Node) B() any {
	if f, ok := n.b.(Form); ok {
		n.b = FromForm(f)
	}
	return n.b
}

// SetB replaces the second operand slot.
func (n *Node) SetB(v any) { n.b = v }

// Annotations returns the node's annotation store.
func (n *Node) Annotations() Annotations { return n.x }

// Operands returns the present operands in order: one element when B is
// absent, two otherwise.
func (n *Node) Operands() []any {
	if n.B() == nil {
		return []any{n.A()}
	}
	return []any{n.A(), n.B()}
}

// MarkOperands merges marks into the annotation store of each operand that
// is itself a node; later keys overwrite existing ones. Primitive operands
// are left untouched.
func (n *Node) MarkOperands(marks Annotations) {
	if c, ok := n.A().(*Node); ok {
		c.x.Merge(marks)
	}
	if c, ok := n.B().(*Node); ok {
		c.x.Merge(marks)
	}
}

// ToForm renders the subtree back into its raw ordered representation. It
// reads the stored operand cells directly and never materializes, so it is a
// pure read.
func (n *Node) ToForm() Form {
	f := Form{Op: n.op, A: operandForm(n.a)}
	if n.b != nil {
		f.B = operandForm(n.b)
	}
	return f
}

func operandForm(v any) any {
	switch t := v.(type) {
	case *Node:
		return t.ToForm()
	case Form:
		f := Form{Op: t.Op, A: operandForm(t.A)}
		if t.B != nil {
			f.B = operandForm(t.B)
		}
		return f
	default:
		return v
	}
}

// String renders the operator, both operand slots, and the annotation
// snapshot for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("Node(op=%s, a=%v, b=%v, x=%v)", n.op, n.a, n.b, n.x)
}
