// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating read views — positional adjacency snapshot and
//       human-readable rendering.
// Determinism:
//   - Output order follows node positions and per-node adjacency order.
//   - The textual layout is stable for snapshot tests but is not a
//     byte-format compatibility contract.

package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AdjacencyList returns a positional snapshot of the adjacency: element k
// lists the positions of node k's outgoing neighbors in adjacency order
// (parallel edges repeated). The snapshot is detached — mutating it does
// not touch the graph.
// Complexity: O(V + E).
func (g *Graph[T]) AdjacencyList() [][]int {
	// Resolve pointer identity back to positions through the node arena.
	index := make(map[*node[T]]int, len(g.nodes))
	for i, n := range g.nodes {
		index[n] = i
	}

	out := make([][]int, len(g.nodes))
	for i, n := range g.nodes {
		row := make([]int, len(n.out))
		for j, dst := range n.out {
			row[j] = index[dst]
		}
		out[i] = row
	}

	return out
}

// Fprint writes a human-readable rendering of g to w: a header with node
// and edge counts, then one line per node with its position, value and
// outgoing neighbor positions. String-typed values are quoted.
// Complexity: O(V + E).
func (g *Graph[T]) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "DirectedGraph(%d nodes, %d edges)\n", len(g.nodes), len(g.edges)); err != nil {
		return err
	}
	adj := g.AdjacencyList()
	for i, n := range g.nodes {
		if _, err := fmt.Fprintf(w, "  [%d] %s -> %v\n", i, formatValue(n.value), adj[i]); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer via Fprint.
// Complexity: O(V + E).
func (g *Graph[T]) String() string {
	var sb strings.Builder
	_ = g.Fprint(&sb)

	return sb.String()
}

// formatValue renders string values quoted and everything else via %v, so
// graphs of strings print unambiguously (empty values, embedded spaces).
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprint(v)
}
