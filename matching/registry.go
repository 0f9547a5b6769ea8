package matching

import "sort"

// Factory constructs a fresh Algorithm instance.
type Factory func() Algorithm

// registry maps the configuration-file algorithm names from
// original_source/src/parse_configuration.h to Go constructors. greedy_b,
// gpa, and greedy_kec_hybrid are not registered: the first two are marked
// "not implemented" in the original itself, and greedy_kec_hybrid's
// behavior is a dynamic-greedy-flavored variant of dynamic k-edge-coloring
// already covered by DynamicKEdgeColoring's ModeHybrid.
var registry = map[string]Factory{
	"greedy":               func() Algorithm { return NewIterativeGreedy() },
	"batch_greedy":         func() Algorithm { return NewBatchIterativeGreedy() },
	"node_centered":        func() Algorithm { return NewNodeCentered() },
	"batch_node_centered":  func() Algorithm { return NewBatchNodeCentered() },
	"dyn_greedy":           func() Algorithm { return NewDynamicGreedy() },
	"k_edge_coloring":      func() Algorithm { return NewDynamicKEdgeColoring() },
	"dyn_k_edge_coloring":  func() Algorithm { return NewDynamicKEdgeColoring() },
	"invariant_greedy":     func() Algorithm { return NewInvariantGreedy() },
}

// New looks up a registered algorithm constructor by its configuration-file
// name and returns a fresh instance.
func New(name string) (Algorithm, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// RegisteredNames returns every registered algorithm name, sorted.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
