// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: Cursor-style traversal handle bound to one node of one graph.

package core

import "fmt"

// Iterator is a traversal cursor: it references the node it is positioned
// at plus the graph it belongs to, and owns neither.
//
// Obtain iterators via Graph.Begin. The zero value is unbound: it compares
// unequal to every bound iterator and is not dereferenceable (Value and
// Set panic on it). Two iterators are equal under == iff they reference
// the same node identity in the same graph — equal stored values at
// different nodes do not make iterators equal.
//
// Erase, Clear and Swap on the owning graph invalidate all previously
// obtained iterators; using an invalidated iterator is undefined behavior,
// mirroring the usual iterator-invalidation discipline.
type Iterator[T comparable] struct {
	// pos is the current node; nil for unbound iterators.
	pos *node[T]

	// g is the owning graph this iterator traverses.
	g *Graph[T]
}

// Begin returns an iterator bound to the first node of g.
// Returns ErrEmptyGraph when the graph has no nodes.
// Complexity: O(1).
func (g *Graph[T]) Begin() (Iterator[T], error) {
	if len(g.nodes) == 0 {
		return Iterator[T]{}, fmt.Errorf("Begin: %w", ErrEmptyGraph)
	}

	return Iterator[T]{pos: g.nodes[0], g: g}, nil
}

// Value returns the value of the current node. Panics when called on an
// unbound iterator. Complexity: O(1).
func (it Iterator[T]) Value() T {
	return it.pos.value
}

// Set replaces the value of the current node — the mutable dereference.
// Panics when called on an unbound iterator. Complexity: O(1).
func (it Iterator[T]) Set(value T) {
	it.pos.value = value
}

// Outdegree returns the outdegree of the current node, 0 for unbound
// iterators. Complexity: O(1).
func (it Iterator[T]) Outdegree() int {
	if it.pos == nil {
		return 0
	}

	return len(it.pos.out)
}

// Next advances the iterator to the j-th outgoing neighbor of the current
// node (0-indexed into its adjacency list, insertion order).
//
// Historically stepping past the outdegree was a plain precondition
// violation with undefined behavior; this implementation tightens the
// contract to an explicit error: j outside [0, Outdegree()) — including
// any j on an unbound iterator — returns ErrNeighborIndex and leaves the
// iterator in place. Callers that want the unchecked style can still
// consult Outdegree() first and ignore the error.
// Complexity: O(1).
func (it *Iterator[T]) Next(j int) error {
	if it.pos == nil || j < 0 || j >= len(it.pos.out) {
		return fmt.Errorf("Next(%d): outdegree=%d: %w", j, it.Outdegree(), ErrNeighborIndex)
	}
	it.pos = it.pos.out[j]

	return nil
}
