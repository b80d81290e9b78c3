// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle operations — append, access, erase, clear, swap.
// Policy:
//   - Every bounds check runs strictly before any state mutation.
//   - Erase renumbers the edge-record list so records keep naming the same
//     nodes under the new dense numbering.

package core

import "fmt"

// PushBack appends a new node holding value, with no outgoing edges.
// Never fails. Complexity: O(1) amortized.
func (g *Graph[T]) PushBack(value T) {
	g.nodes = append(g.nodes, &node[T]{value: value})
}

// At returns the value at position k.
// Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(1).
func (g *Graph[T]) At(k int) (T, error) {
	if k < 0 || k >= len(g.nodes) {
		var zero T
		return zero, fmt.Errorf("At(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.nodes[k].value, nil
}

// SetAt replaces the value at position k — the bounds-checked counterpart
// of the mutable accessor. The structure (adjacency, edge records) is
// untouched. Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(1).
func (g *Graph[T]) SetAt(k int, value T) error {
	if k < 0 || k >= len(g.nodes) {
		return fmt.Errorf("SetAt(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}
	g.nodes[k].value = value

	return nil
}

// Index returns the value at position k without bounds checking. It exists
// for trusted hot paths only: an out-of-range k panics on the underlying
// slice access. Prefer At everywhere else.
// Complexity: O(1).
func (g *Graph[T]) Index(k int) T {
	return g.nodes[k].value
}

// Front returns the value of the first node.
// Returns ErrEmptyGraph when the graph has no nodes.
// Complexity: O(1).
func (g *Graph[T]) Front() (T, error) {
	if len(g.nodes) == 0 {
		var zero T
		return zero, fmt.Errorf("Front: %w", ErrEmptyGraph)
	}

	return g.nodes[0].value, nil
}

// Erase removes the node at position k. The node is first fully
// disconnected (as in Isolate), then removed from the ordered storage;
// every remaining EdgeRecord with Head or Tail greater than k is
// decremented so the adjacency/record invariant keeps holding under the
// new dense numbering. The decrement is an order-preserving map on both
// fields, so the record list stays sorted without a re-sort.
//
// Erase invalidates all iterators obtained from g.
// Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(V·d + E).
func (g *Graph[T]) Erase(k int) error {
	if k < 0 || k >= len(g.nodes) {
		return fmt.Errorf("Erase(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}

	// Drop every incident reference and record first; bounds already hold.
	_ = g.Isolate(k)

	// Remove the node itself from the ordered storage.
	g.nodes = append(g.nodes[:k], g.nodes[k+1:]...)

	// Renumber records past the removed position.
	for i := range g.edges {
		if g.edges[i].Head > k {
			g.edges[i].Head--
		}
		if g.edges[i].Tail > k {
			g.edges[i].Tail--
		}
	}

	return nil
}

// Clear removes all outgoing edges from every node, then empties the node
// sequence. The graph is reusable afterwards. Invalidates all iterators.
// Complexity: O(V).
func (g *Graph[T]) Clear() {
	for _, n := range g.nodes {
		n.out = nil
	}
	g.nodes = nil
	g.edges = nil
}

// Swap exchanges the entire contents of g and rhs in O(1) — the
// move-flavored primitive: after the call each graph holds the other's
// nodes and edge records, and both remain fully usable. Iterators keep
// following the node storage they were bound to and are therefore
// considered invalidated.
func (g *Graph[T]) Swap(rhs *Graph[T]) {
	g.nodes, rhs.nodes = rhs.nodes, g.nodes
	g.edges, rhs.edges = rhs.edges, g.edges
}
