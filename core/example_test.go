package core_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ExampleFrom demonstrates seeding, connecting and rendering a graph.
func ExampleFrom() {
	// 1) One node per value, in order, no edges:
	g := core.From(10, 20, 30)

	// 2) Wire a triangle 0→1→2→0:
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)
	_ = g.Connect(2, 0)

	// 3) Inspect structure:
	fmt.Println("size:", g.Size())
	fmt.Println("simple:", g.Simple())
	fmt.Print(g)

	// Output:
	// size: 3
	// simple: true
	// DirectedGraph(3 nodes, 3 edges)
	//   [0] 10 -> [1]
	//   [1] 20 -> [2]
	//   [2] 30 -> [0]
}

// ExampleGraph_Begin walks outgoing neighbors with an iterator.
func ExampleGraph_Begin() {
	g := core.From("hub", "left", "right")
	_ = g.Connect(0, 1)
	_ = g.Connect(0, 2)

	it, _ := g.Begin()
	fmt.Println(it.Value(), it.Outdegree())

	// Step to the second outgoing neighbor (0-indexed).
	_ = it.Next(1)
	fmt.Println(it.Value())

	// Output:
	// hub 2
	// right
}

// ExampleGraph_Disconnect shows the multigraph round trip: parallel edges
// are counted separately and removed one at a time, most recent first.
func ExampleGraph_Disconnect() {
	g := core.From(1, 2)
	_ = g.Connect(0, 1)
	_ = g.Connect(0, 1)
	fmt.Println(g.Simple(), g.EdgeCount())

	_ = g.Disconnect(0, 1)
	fmt.Println(g.Simple(), g.EdgeCount())

	// Output:
	// false 2
	// true 1
}

// ExampleGraph_Erase shows positional renumbering after a removal.
func ExampleGraph_Erase() {
	g := core.From(10, 20, 30)
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)
	_ = g.Connect(2, 0)

	// Erasing node 1 drops its incident edges and shifts node 2 down.
	_ = g.Erase(1)
	fmt.Println("size:", g.Size())
	for _, e := range g.Edges() {
		fmt.Printf("%d -> %d\n", e.Head, e.Tail)
	}

	// Output:
	// size: 2
	// 1 -> 0
}
