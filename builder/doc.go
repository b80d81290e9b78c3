// Package builder provides deterministic topology constructors for the
// digraph core container: reusable recipes that append a standard shape
// (path, cycle, star, complete) onto a positional graph.
//
// Design contract (strict):
//
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves
//     the configuration, runs constructors in order.
//   - Constructors append after the current Size(), so they compose:
//     later constructors occupy the next block of positions.
//   - Edges are emitted in a documented ascending order, so the resulting
//     graphs compare Equal across runs.
//   - Node values come from WithValueFn; the default is the zero value.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//
// Topologies:
//
//	Path(n)     – base+0 → base+1 → … → base+n-1          (n ≥ 2)
//	Cycle(n)    – Path(n) plus the closing edge to base+0  (n ≥ 3)
//	Star(n)     – base+0 → each of base+1 … base+n-1       (n ≥ 2)
//	Complete(n) – every ordered pair, no self-loops        (n ≥ 1)
//
// Errors:
//
//	ErrTooFewNodes    – topology parameter below its documented minimum
//	ErrNilConstructor – a nil Constructor was passed to Build
package builder
