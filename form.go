package ptree

// Form is the raw ordered representation of a subtree as produced by a
// grammar front-end: an operator tag plus one or two operands. Operands are
// themselves Form values, already-materialized nodes, or primitives. B == nil
// signals that the second operand is absent (a unary form).
type Form struct {
	Op string
	A  any
	B  any
}
