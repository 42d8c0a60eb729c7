package ptree

// Package ptree provides:
//
// - A parse-tree node model (operator tag, up to two operands, per-node annotations)
// - Lazy materialization of raw ordered forms into nodes (convert-on-first-read)
// - Processors: single-pass bottom-up tree rewriters driven by a tag -> handler registry
// - Pipelines: ordered multi-slot composition of processors over one tree
//
// Design policy:
// - Keep only public APIs in the root package; put shared machinery under internal/.
// - Place wire codecs under codec/ and the CLI under cmd/ptree.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p := ptree.NewProcessor().
//		On("add", foldAdd).
//		Delegate(foldCmp, "lt", "gt")
//
//	out, err := p.Process(ptree.Form{Op: "add", A: 1, B: 2})
//
//	pl := ptree.NewPipeline(
//		ptree.Stage(annotate),
//		ptree.Stage(desugar, fold),
//	)
//	out, err = pl.Process(tree)
