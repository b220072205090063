package dag

import "fmt"

// Graph is an immutable mapping of node identifiers to the set of
// identifiers that must be ordered before them. Prerequisites that never
// appear as nodes are treated as already satisfied; declaring them is
// not an error here, though stricter layers above may reject them.
type Graph struct {
	nodes map[string]map[string]struct{}
}

// FromMap builds a Graph from a node -> prerequisites mapping. The input
// is deep-copied, so later mutation of the argument cannot affect the
// graph. Duplicate prerequisites collapse into one. Empty identifiers,
// as node names or as prerequisites, are rejected.
func FromMap(nodes map[string][]string) (*Graph, error) {
	g := &Graph{nodes: make(map[string]map[string]struct{}, len(nodes))}
	for id, prereqs := range nodes {
		if id == "" {
			return nil, &InvalidGraphError{Reason: "node identifier must not be empty"}
		}
		set := make(map[string]struct{}, len(prereqs))
		for _, p := range prereqs {
			if p == "" {
				return nil, &InvalidGraphError{Reason: fmt.Sprintf("node %q declares an empty prerequisite identifier", id)}
			}
			set[p] = struct{}{}
		}
		g.nodes[id] = set
	}
	return g, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Contains reports whether id is a node of the graph.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Snapshot returns an independent deep copy of the node -> prerequisite
// mapping. Callers may consume it destructively without observing or
// causing changes to the graph.
func (g *Graph) Snapshot() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(g.nodes))
	for id, prereqs := range g.nodes {
		set := make(map[string]struct{}, len(prereqs))
		for p := range prereqs {
			set[p] = struct{}{}
		}
		out[id] = set
	}
	return out
}
