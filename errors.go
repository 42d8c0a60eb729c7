package ptree

import (
	"errors"
	"fmt"
)

// UnrecognisedOperatorError reports a node whose operator tag has no
// registered handler on a strict processor. It carries the offending node
// for diagnostics and is the only error the engine itself produces; handler
// errors pass through unchanged.
type UnrecognisedOperatorError struct {
	Node *Node
}

func (e *UnrecognisedOperatorError) Error() string {
	return fmt.Sprintf("ptree: unrecognised operator %q in %v", e.Node.Op(), e.Node)
}

// AsUnrecognisedOperator extracts an *UnrecognisedOperatorError from an
// error chain using errors.As internally.
func AsUnrecognisedOperator(err error) (*UnrecognisedOperatorError, bool) {
	if err == nil {
		return nil, false
	}
	var ue *UnrecognisedOperatorError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
