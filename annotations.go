package ptree

import (
	"fmt"
	"sort"
	"strings"
)

// AnnotationIsRoot marks whether a node is a pipeline root. Pipeline.Process
// sets it to true on the root and to false on the root's direct operands
// only; deeper descendants keep the auto-vivified default until a pass sets
// it explicitly.
const AnnotationIsRoot = "isRoot"

// Annotations is the open per-node store processors use to stash cross-pass
// metadata without changing the node's shape. Each store belongs to exactly
// one node and lives and dies with it.
type Annotations map[string]any

// Get returns the value under key, auto-vivifying a missing key with nil.
// Every key is therefore implicitly present with a default, which lets
// processors probe flags set by earlier passes without existence checks.
func (a Annotations) Get(key string) any {
	if _, ok := a[key]; !ok {
		a[key] = nil
	}
	return a[key]
}

// Set stores v under key, overwriting any previous value.
func (a Annotations) Set(key string, v any) { a[key] = v }

// Has reports whether key has been stored, including auto-vivified keys.
func (a Annotations) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Merge copies every entry of marks into the store; later keys overwrite
// existing ones.
func (a Annotations) Merge(marks Annotations) {
	for k, v := range marks {
		a[k] = v
	}
}

// Len returns the number of stored keys.
func (a Annotations) Len() int { return len(a) }

// String renders a deterministic snapshot for diagnostics.
func (a Annotations) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b := &strings.Builder{}
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%v", k, a[k])
	}
	b.WriteString("}")
	return b.String()
}
