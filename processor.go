package ptree

// Handler transforms one node during dispatch. The result replaces the node
// in its parent's operand slot (or becomes the traversal result at the root)
// and may be a node or a primitive.
type Handler func(n *Node) (any, error)

// PrimitiveHandler transforms a primitive leaf. The default is identity.
type PrimitiveHandler func(v any) (any, error)

// Pass is a single-pass tree rewriter accepted as a pipeline slot member.
// Only *Processor implements it; the unexported marker keeps multi-slot
// pipelines from nesting inside each other.
type Pass interface {
	Process(v any) (any, error)
	Dispatch(n *Node) (any, error)
	singlePass()
}

// Processor drives one full bottom-up traversal per Process call and routes
// every node to a handler selected by operator tag. Make sure each processor
// does one thing and does it well; use a Pipeline when several things have
// to happen before a tree is ready for the next stage.
type Processor struct {
	handlers     map[string]Handler
	primitive    PrimitiveHandler
	unrecognised Handler
	strict       bool
}

// NewProcessor returns an empty, non-strict processor. Configuration chains:
//
//	p := ptree.NewProcessor().On("add", foldAdd).Strict()
func NewProcessor() *Processor {
	return &Processor{handlers: map[string]Handler{}}
}

// On binds h as the handler for operator tag op.
func (p *Processor) On(op string, h Handler) *Processor {
	p.handlers[op] = h
	return p
}

// Delegate binds one handler under several operator tags at once, so a
// single code path can serve semantically equivalent operators. Dispatch
// afterwards remains a uniform tag -> handler lookup.
func (p *Processor) Delegate(h Handler, ops ...string) *Processor {
	for _, op := range ops {
		p.handlers[op] = h
	}
	return p
}

// OnPrimitive replaces the identity primitive handler.
func (p *Processor) OnPrimitive(h PrimitiveHandler) *Processor {
	p.primitive = h
	return p
}

// OnUnrecognised replaces the fallback invoked for nodes whose operator has
// no bound handler. An explicit fallback takes precedence over Strict.
func (p *Processor) OnUnrecognised(h Handler) *Processor {
	p.unrecognised = h
	return p
}

// Strict makes the default fallback fail with *UnrecognisedOperatorError
// instead of passing the node through unchanged.
func (p *Processor) Strict() *Processor {
	p.strict = true
	return p
}

// Process runs one full traversal. A raw form is materialized first. For a
// node, both operands are rewritten recursively before the node itself is
// dispatched, so handlers always see fully processed children. Primitives go
// through the primitive handler.
func (p *Processor) Process(v any) (any, error) {
	switch t := v.(type) {
	case Form:
		return p.Process(FromForm(t))
	case *Node:
		av, err := p.Process(t.A())
		if err != nil {
			return nil, err
		}
		t.SetA(av)
		if t.B() != nil {
			bv, err := p.Process(t.B())
			if err != nil {
				return nil, err
			}
			t.SetB(bv)
		}
		return p.Dispatch(t)
	default:
		if p.primitive != nil {
			return p.primitive(v)
		}
		return v, nil
	}
}

// Dispatch routes n to the handler bound to its operator tag, falling back
// to the unrecognized-node handler when none is bound. In strict mode the
// default fallback fails; otherwise it returns the node unchanged, which
// callers must read as "this pass declined to transform this subtree".
func (p *Processor) Dispatch(n *Node) (any, error) {
	if h, ok := p.handlers[n.Op()]; ok {
		return h(n)
	}
	if p.unrecognised != nil {
		return p.unrecognised(n)
	}
	if p.strict {
		return nil, &UnrecognisedOperatorError{Node: n}
	}
	return n, nil
}

func (p *Processor) singlePass() {}
