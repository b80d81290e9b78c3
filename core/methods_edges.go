// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge operations — connect, disconnect, isolate, degrees, Simple.
// Policy:
//   - Adjacency and the edge-record list are updated together inside each
//     mutator; neither representation is exposed for direct editing.
//   - Degrees are always derived from adjacency state, never cached.

package core

import (
	"fmt"
	"sort"
)

// Connect adds a directed edge from → to.
//
// Both positions are bounds-checked before any state changes. On success
// the destination node is appended to the origin's adjacency list and a
// matching EdgeRecord is inserted, after which the record list is
// re-sorted with a stable sort: records equal by (Head, Tail) keep their
// relative insertion order, which is what supports parallel edges in
// multigraphs. Self-loops (from == to) are permitted; Simple() reports
// them.
//
// Returns ErrIndexOutOfRange when either position is outside [0, Size()).
// Complexity: O(E log E) for the stable re-sort.
func (g *Graph[T]) Connect(from, to int) error {
	if from < 0 || from >= len(g.nodes) {
		return fmt.Errorf("Connect(%d,%d): from: size=%d: %w", from, to, len(g.nodes), ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(g.nodes) {
		return fmt.Errorf("Connect(%d,%d): to: size=%d: %w", from, to, len(g.nodes), ErrIndexOutOfRange)
	}

	g.nodes[from].out = append(g.nodes[from].out, g.nodes[to])
	g.edges = append(g.edges, EdgeRecord{Head: from, Tail: to})
	sort.SliceStable(g.edges, func(i, j int) bool { return g.edges[i].Less(g.edges[j]) })

	return nil
}

// Disconnect removes one directed edge from → to: the most recently
// inserted matching adjacency reference and the most recently inserted
// matching EdgeRecord (rightmost occurrence). Under parallel edges this
// removes exactly one of them, which is what makes Connect followed by
// Disconnect a degree-preserving round trip. Disconnecting a pair with no
// matching edge is a no-op.
//
// Returns ErrIndexOutOfRange when either position is outside [0, Size()).
// Complexity: O(d + E).
func (g *Graph[T]) Disconnect(from, to int) error {
	if from < 0 || from >= len(g.nodes) {
		return fmt.Errorf("Disconnect(%d,%d): from: size=%d: %w", from, to, len(g.nodes), ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(g.nodes) {
		return fmt.Errorf("Disconnect(%d,%d): to: size=%d: %w", from, to, len(g.nodes), ErrIndexOutOfRange)
	}

	// Rightmost matching adjacency reference.
	target := g.nodes[to]
	out := g.nodes[from].out
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == target {
			g.nodes[from].out = append(out[:i], out[i+1:]...)
			break
		}
	}

	// Rightmost matching record. Equal records sit adjacent in the sorted
	// list and the stable sort keeps them in insertion order, so the last
	// match is the most recently inserted one.
	rec := EdgeRecord{Head: from, Tail: to}
	for i := len(g.edges) - 1; i >= 0; i-- {
		if g.edges[i] == rec {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}

	return nil
}

// Isolate removes every connection incident to node k: all of its outgoing
// references, every other node's references to it, and every EdgeRecord
// whose Head or Tail equals k. Idempotent; Erase runs this structural
// cleanup before removing the node.
//
// Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(V·d + E).
func (g *Graph[T]) Isolate(k int) error {
	if k < 0 || k >= len(g.nodes) {
		return fmt.Errorf("Isolate(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}

	// Outgoing side, including self-loops.
	target := g.nodes[k]
	target.out = nil

	// Incoming side: filter target out of every other adjacency list.
	for _, n := range g.nodes {
		if n == target {
			continue
		}
		kept := n.out[:0]
		for _, dst := range n.out {
			if dst != target {
				kept = append(kept, dst)
			}
		}
		n.out = kept
	}

	// Record side: drop everything touching position k. Filtering
	// preserves the sorted order of the survivors.
	keptEdges := g.edges[:0]
	for _, e := range g.edges {
		if e.Head != k && e.Tail != k {
			keptEdges = append(keptEdges, e)
		}
	}
	g.edges = keptEdges

	return nil
}

// Indegree returns the number of incoming connections of node k, derived
// by scanning every node's adjacency list. No cached counters are kept, so
// the answer can never drift from the true structure. A self-loop counts
// once.
//
// Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(V·d).
func (g *Graph[T]) Indegree(k int) (int, error) {
	if k < 0 || k >= len(g.nodes) {
		return 0, fmt.Errorf("Indegree(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}

	target := g.nodes[k]
	count := 0
	for _, n := range g.nodes {
		for _, dst := range n.out {
			if dst == target {
				count++
			}
		}
	}

	return count, nil
}

// Outdegree returns the number of outgoing connections of node k.
// Returns ErrIndexOutOfRange when k is outside [0, Size()).
// Complexity: O(1).
func (g *Graph[T]) Outdegree(k int) (int, error) {
	if k < 0 || k >= len(g.nodes) {
		return 0, fmt.Errorf("Outdegree(%d): size=%d: %w", k, len(g.nodes), ErrIndexOutOfRange)
	}

	return len(g.nodes[k].out), nil
}

// Simple reports whether the graph is simple: no self-loops and no
// parallel edges between the same ordered pair. The predicate is
// recomputed on every call — the container keeps no dirty flag. Because
// the record list is sorted, duplicates sit adjacent, so one pass suffices.
// Complexity: O(E).
func (g *Graph[T]) Simple() bool {
	for i, e := range g.edges {
		if e.Head == e.Tail {
			return false
		}
		if i > 0 && g.edges[i-1] == e {
			return false
		}
	}

	return true
}
