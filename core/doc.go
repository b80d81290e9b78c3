// Package core provides a generic, in-memory directed-graph container
// with positional node identity and a minimal, deterministic API surface.
//
// The Graph G = (V,E) is an ordered collection of value-bearing nodes:
//
//   - A node's public identity is its position 0..Size()-1 in the node
//     sequence; positions are dense and shift down on Erase.
//   - Adjacency is stored per node as non-owning back-references; the
//     graph's node slice holds the only owning handles, so mutually
//     referencing nodes never form an ownership cycle.
//   - Every connection is mirrored in a global EdgeRecord list kept
//     sorted by (Head, Tail) via a stable sort — parallel edges (the
//     multigraph case) keep their insertion order among equal records.
//   - Both representations are updated together inside every mutator;
//     bounds checks always run before any state change, so a failed call
//     never leaves the graph half-modified.
//
// Why use core.Graph?
//
//   - Deterministic equality — Equal compares values by position and the
//     sorted record lists, so edge insertion order never matters.
//   - Honest degrees — Indegree/Outdegree are derived from adjacency on
//     every call; nothing cached, nothing to drift.
//   - Multigraph-aware — self-loops and parallel edges are permitted;
//     Simple() classifies, Disconnect removes the most recent parallel.
//   - Cursor traversal — Iterator walks outgoing neighbors by index.
//
// Core Methods:
//
//	// Construction
//	New[T]() *Graph[T]                      // O(1), empty
//	NewSized[T](n int) *Graph[T]            // O(n), zero values
//	NewFilled[T](n int, v T) *Graph[T]      // O(n), one value
//	From[T](values ...T) *Graph[T]          // O(n), one node per value
//
//	// Node lifecycle
//	PushBack(v T)                           // O(1) amortized
//	At(k int) (T, error)                    // O(1), checked
//	SetAt(k int, v T) error                 // O(1), checked
//	Index(k int) T                          // O(1), UNCHECKED hot path
//	Front() (T, error)                      // O(1)
//	Erase(k int) error                      // O(V·d + E), renumbers records
//	Clear()                                 // O(V)
//	Swap(rhs *Graph[T])                     // O(1)
//
//	// Edge lifecycle
//	Connect(from, to int) error             // O(E log E), stable re-sort
//	Disconnect(from, to int) error          // O(d + E), rightmost match
//	Isolate(k int) error                    // O(V·d + E), idempotent
//
//	// Query
//	Size() int / Empty() bool               // O(1)
//	EdgeCount() int                         // O(1)
//	Edges() []EdgeRecord                    // O(E), sorted copy
//	Indegree(k int) (int, error)            // O(V·d), derived
//	Outdegree(k int) (int, error)           // O(1)
//	Simple() bool                           // O(E), recomputed
//	AdjacencyList() [][]int                 // O(V+E), detached snapshot
//
//	// Copy & compare
//	Clone() *Graph[T]                       // O(V+E), adjacency rebuilt from records
//	Equal(rhs *Graph[T]) bool               // O(V+E), positional equality
//
//	// Traversal
//	Begin() (Iterator[T], error)            // O(1), first node
//	Iterator.Value() T / Set(v T)           // deref, read / mutate
//	Iterator.Outdegree() int                // O(1)
//	Iterator.Next(j int) error              // O(1), step to j-th neighbor
//
//	// Rendering
//	String() string / Fprint(w io.Writer)   // O(V+E), snapshot-stable text
//
// Errors:
//
//	ErrIndexOutOfRange – node position outside [0, Size())
//	ErrEmptyGraph      – Front/Begin on a graph with no nodes
//	ErrNeighborIndex   – Iterator.Next step outside [0, Outdegree())
//
// Concurrency: none. Graph is single-threaded by contract; every
// operation is atomic with respect to its caller and runs to completion.
// Erase, Clear and Swap invalidate all previously obtained iterators;
// using one afterwards is undefined behavior.
package core
