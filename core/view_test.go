// SPDX-License-Identifier: MIT
// Package core_test verifies the read views: adjacency snapshots and the
// snapshot-stable textual rendering.

package core_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/digraph/core"
)

// TestView_StringSnapshot pins the rendering of the canonical triangle.
func TestView_StringSnapshot(t *testing.T) {
	g := buildTriangle(t)

	want := strings.Join([]string{
		"DirectedGraph(3 nodes, 3 edges)",
		"  [0] 10 -> [1]",
		"  [1] 20 -> [2]",
		"  [2] 30 -> [0]",
		"",
	}, "\n")

	if got := g.String(); got != want {
		t.Fatalf("String snapshot mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// TestView_StringQuotesStrings verifies the string-element rendering form.
func TestView_StringQuotesStrings(t *testing.T) {
	g := core.From("hub", "")
	MustNoError(t, g.Connect(0, 1), "Connect(0,1)")
	MustNoError(t, g.Connect(0, 0), "Connect(0,0)")

	want := strings.Join([]string{
		"DirectedGraph(2 nodes, 2 edges)",
		`  [0] "hub" -> [1 0]`,
		`  [1] "" -> []`,
		"",
	}, "\n")

	if got := g.String(); got != want {
		t.Fatalf("String snapshot mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// TestView_FprintMatchesString verifies Fprint and String render identically.
func TestView_FprintMatchesString(t *testing.T) {
	g := buildTriangle(t)

	var sb strings.Builder
	MustNoError(t, g.Fprint(&sb), "Fprint")

	if sb.String() != g.String() {
		t.Fatalf("Fprint and String disagree:\n%s\nvs\n%s", sb.String(), g.String())
	}
}

// TestView_AdjacencyListDetached verifies the snapshot does not alias the
// graph's internal adjacency.
func TestView_AdjacencyListDetached(t *testing.T) {
	g := buildTriangle(t)

	adj := g.AdjacencyList()
	MustEqualInt(t, len(adj), 3, "snapshot length")
	MustEqualInt(t, adj[0][0], 1, "adj[0][0]")

	// Scribbling over the snapshot must not disturb the container.
	adj[0][0] = 42
	MustEqualInt(t, g.AdjacencyList()[0][0], 1, "graph adjacency after snapshot mutation")
	MustTrue(t, g.Simple(), "structure intact after snapshot mutation")
}
