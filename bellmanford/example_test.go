package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/lvclassic/bellmanford"
	"github.com/katalvlaran/lvclassic/graph"
)

// ExampleBellmanFord finds a cheaper route through a rebate arc.
func ExampleBellmanFord() {
	g, _ := graph.NewDirected([]string{"S", "A", "B", "T"})
	_ = g.AddArc("S", "A", 5)
	_ = g.AddArc("S", "B", 3)
	_ = g.AddArc("A", "B", -4)
	_ = g.AddArc("B", "T", 2)

	res, err := bellmanford.BellmanFord(g, bellmanford.Source("S"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("T")
	fmt.Println(res.Dist["T"], path, res.NegativeCycle)
	// Output: 3 [S A B T] false
}

// ExampleBellmanFord_negativeCycle reports a loop that keeps getting cheaper.
func ExampleBellmanFord_negativeCycle() {
	g, _ := graph.NewDirected([]string{"A", "B", "C"})
	_ = g.AddArc("A", "B", 1)
	_ = g.AddArc("B", "C", -2)
	_ = g.AddArc("C", "B", 1)

	res, _ := bellmanford.BellmanFord(g, bellmanford.Source("A"))
	_, err := res.PathTo("C")
	fmt.Println(res.NegativeCycle)
	fmt.Println(err)
	// Output:
	// true
	// bellmanford: path runs through a negative cycle: "C"
}
