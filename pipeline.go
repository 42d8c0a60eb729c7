package ptree

import "fmt"

// Slot is one pipeline stage: an ordered list of passes applied back-to-back
// within a single traversal, each consuming the previous one's output.
type Slot struct {
	passes []Pass
}

// Stage builds a slot from one or more passes.
func Stage(passes ...Pass) Slot { return Slot{passes: passes} }

// Pipeline runs a tree through a fixed number of ordered slots. Per slot,
// both operands of the current root are advanced through every member's full
// Process before the members' Dispatch chains over the root itself, so a
// parent only ever sees fully rewritten children and annotations written by
// an earlier slot stay visible to later slots and to sibling passes within
// the same slot.
//
// Pipeline is a concrete type and deliberately does not implement Pass:
// slots accept single-pass processors only, so pipelines cannot nest.
type Pipeline struct {
	slots []Slot
}

// NewPipeline builds a pipeline from the given ordered slots.
func NewPipeline(slots ...Slot) *Pipeline {
	return &Pipeline{slots: slots}
}

// Process is called exactly once per fresh tree. The root must be a node or
// a raw form; the root's isRoot annotation must still be unset. Violating
// either is a programming error and panics, it is not a recoverable failure.
func (pl *Pipeline) Process(v any) (any, error) {
	if f, ok := v.(Form); ok {
		v = FromForm(f)
	}
	root, ok := v.(*Node)
	if !ok {
		panic(fmt.Sprintf("ptree: pipeline root must be a node or form, got %T", v))
	}
	if root.Annotations().Get(AnnotationIsRoot) != nil {
		panic("ptree: tree already processed; a pipeline needs a fresh root")
	}
	root.Annotations().Set(AnnotationIsRoot, true)
	root.MarkOperands(Annotations{AnnotationIsRoot: false})

	node := root
	for i, slot := range pl.slots {
		av, err := slot.runProcess(node.A())
		if err != nil {
			return nil, err
		}
		node.SetA(av)
		if node.B() != nil {
			bv, err := slot.runProcess(node.B())
			if err != nil {
				return nil, err
			}
			node.SetB(bv)
		}
		out, err := slot.runDispatch(node)
		if err != nil {
			return nil, err
		}
		if i == len(pl.slots)-1 {
			return out, nil
		}
		node, ok = out.(*Node)
		if !ok {
			panic(fmt.Sprintf("ptree: slot %d rewrote the root into a non-node %T with slots remaining", i, out))
		}
	}
	return node, nil
}

// runProcess chains the full Process of every member pass over v.
func (s Slot) runProcess(v any) (any, error) {
	var err error
	for _, p := range s.passes {
		v, err = p.Process(v)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// runDispatch chains only the operator-level Dispatch of every member pass
// over n; operands were already advanced by runProcess.
func (s Slot) runDispatch(n *Node) (any, error) {
	var v any = n
	for _, p := range s.passes {
		node, ok := v.(*Node)
		if !ok {
			panic(fmt.Sprintf("ptree: dispatch chain received a non-node %T", v))
		}
		var err error
		v, err = p.Dispatch(node)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}
