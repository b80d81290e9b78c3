// Package digraph is an in-memory, generic directed-graph container with
// positional node identity — an ordered collection of value-bearing nodes
// connected by directed edges.
//
// 🚀 What is digraph?
//
//	A small, deterministic, zero-runtime-dependency container that brings together:
//		• Core primitives: append, index, connect, disconnect, erase — with strict bounds checks
//		• Dual bookkeeping: per-node adjacency plus a sorted, comparable edge-record list
//		• Multigraph support: parallel edges and self-loops, with a Simple() classifier
//		• Cursor traversal: an Iterator bound to one node, stepping along outgoing neighbors
//		• Structural equality: position-by-position value and edge-list comparison
//		• Topology seeding: Path, Cycle, Star and Complete constructors
//
// ✨ Why choose digraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every mutator updates adjacency and edge records together
//   - Pure Go – generics, no cgo, no hidden deps
//   - Deterministic – sorted edge records make equality and rendering reproducible
//
// Everything is organized under two subpackages:
//
//	core/    — the Graph, EdgeRecord and Iterator types and all container operations
//	builder/ — deterministic topology constructors (Path, Cycle, Star, Complete)
//
// digraph is a container, not a graph-algorithms toolkit: beyond the Simple()
// structural predicate it ships no traversal, path or cycle algorithms.
package digraph
