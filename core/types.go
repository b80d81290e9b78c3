// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central Graph, node and EdgeRecord declarations plus ordering rules.
// Policy:
//   - The Graph exclusively owns node storage; adjacency is non-owning.
//   - The edge-record list is kept sorted by (Head, Tail) with a stable sort.
//   - Invariants and the single-threaded contract are documented in doc.go.

package core

// EdgeRecord is one directed connection stored as an ordered pair of node
// positions, independent of adjacency-list storage.
//
// Head is the origin position and Tail the destination. Records compare by
// value: two records are equal iff both fields match.
type EdgeRecord struct {
	// Head is the position of the origin node.
	Head int

	// Tail is the position of the destination node.
	Tail int
}

// Less reports whether e orders before rhs: primarily by Head, secondarily
// by Tail. This is the total order that keeps Graph.edges sorted and makes
// equality and rendering deterministic.
// Complexity: O(1).
func (e EdgeRecord) Less(rhs EdgeRecord) bool {
	if e.Head != rhs.Head {
		return e.Head < rhs.Head
	}

	return e.Tail < rhs.Tail
}

// node holds one element value and the outgoing adjacency of that node.
//
// Adjacency entries are non-owning back-references: the Graph's node slice
// holds the only owning handles, so nodes that reference each other never
// form an ownership cycle.
type node[T comparable] struct {
	// value is the element stored at this node.
	value T

	// out lists the destination node of every outgoing edge, in insertion
	// order. Parallel edges appear once per insertion.
	out []*node[T]
}

// Graph is the in-memory directed-graph container.
//
// It owns the ordered node sequence (a node's position in that sequence is
// its public index) and a global edge-record list kept sorted by
// (Head, Tail). The two representations are redundant by design: adjacency
// gives O(1) outdegree and iterator steps, the sorted record list gives
// deterministic equality and iteration order. Every mutator updates both
// within the same call, and every bounds check runs before any mutation,
// so a failed call never leaves the graph half-modified.
//
// Graph is not safe for concurrent use: operations are synchronous and run
// to completion before returning.
type Graph[T comparable] struct {
	// nodes is the ordered node storage; positions are dense 0..len-1 and
	// shift down on Erase.
	nodes []*node[T]

	// edges mirrors every connection as a (Head, Tail) record. The slice
	// is kept sorted with a stable sort, so equal records (parallel edges)
	// preserve their relative insertion order.
	edges []EdgeRecord
}
