// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and structural equality.
// Determinism:
//   - Clone rebuilds adjacency from the sorted edge-record list; degrees,
//     equality and rendering are identical to the source.

package core

// Clone returns a deep copy of g: values are copied into freshly allocated
// nodes, the edge-record list is copied verbatim (indices are positional,
// so they stay valid), and adjacency is reconstructed from the copied
// records — never copied directly, because the source adjacency points at
// the source's own nodes. After Clone, mutating either graph is never
// observable on the other.
//
// The rebuilt adjacency lists neighbors in sorted record order; for
// multigraphs this may differ from the source's raw insertion order, but
// degrees, Simple(), equality and rendering are unaffected.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		nodes: make([]*node[T], len(g.nodes)),
		edges: make([]EdgeRecord, len(g.edges)),
	}
	for i, n := range g.nodes {
		clone.nodes[i] = &node[T]{value: n.value}
	}
	copy(clone.edges, g.edges)

	// Reconstruct every back-reference through the copied records.
	for _, e := range clone.edges {
		clone.nodes[e.Head].out = append(clone.nodes[e.Head].out, clone.nodes[e.Tail])
	}

	return clone
}

// Equal reports structural equality: same node count, equal value at every
// position, and identical sorted edge-record sequences (same length, same
// (Head, Tail) pairs in the same order). Because the record list is kept
// sorted, the order in which edges were inserted does not affect the
// outcome. Graphs that are isomorphic under a relabeling but laid out at
// different positions are NOT equal — this is positional, not isomorphism,
// equality.
// Complexity: O(V + E).
func (g *Graph[T]) Equal(rhs *Graph[T]) bool {
	if g == rhs {
		return true
	}
	if rhs == nil || len(g.nodes) != len(rhs.nodes) || len(g.edges) != len(rhs.edges) {
		return false
	}
	for i, n := range g.nodes {
		if n.value != rhs.nodes[i].value {
			return false
		}
	}
	for i, e := range g.edges {
		if e != rhs.edges[i] {
			return false
		}
	}

	return true
}
