// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Construction is infallible by contract; bounds-checked operations live
//     in methods_nodes.go / methods_edges.go.

package core

// New returns an empty Graph with no nodes and no edge records.
// Complexity: O(1).
func New[T comparable]() *Graph[T] {
	return &Graph[T]{}
}

// NewSized returns a Graph of n nodes, each holding the zero value of T,
// with no edges. A non-positive n yields an empty graph.
// Complexity: O(n).
func NewSized[T comparable](n int) *Graph[T] {
	var zero T

	return NewFilled(n, zero)
}

// NewFilled returns a Graph of n nodes all holding value, with no edges.
// A non-positive n yields an empty graph.
// Complexity: O(n).
func NewFilled[T comparable](n int, value T) *Graph[T] {
	g := &Graph[T]{}
	for i := 0; i < n; i++ {
		g.PushBack(value)
	}

	return g
}

// From returns a Graph with one node per value, in argument order, and no
// edges. This is the primary way to seed a graph from literal data:
//
//	g := core.From(10, 20, 30)
//
// Complexity: O(len(values)).
func From[T comparable](values ...T) *Graph[T] {
	g := &Graph[T]{nodes: make([]*node[T], 0, len(values))}
	for _, v := range values {
		g.PushBack(v)
	}

	return g
}

// Size returns the number of nodes. O(1).
func (g *Graph[T]) Size() int {
	return len(g.nodes)
}

// Empty reports whether the graph has no nodes. O(1).
func (g *Graph[T]) Empty() bool {
	return len(g.nodes) == 0
}

// EdgeCount returns the number of edge records; parallel edges count once
// per insertion. O(1).
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a detached copy of the edge-record list in its sorted
// (Head, Tail) order. Mutating the result does not touch the graph.
// Complexity: O(E).
func (g *Graph[T]) Edges() []EdgeRecord {
	out := make([]EdgeRecord, len(g.edges))
	copy(out, g.edges)

	return out
}
