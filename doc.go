// Package lvclassic collects classic priority-queue and graph routines for
// operational scenarios: job scheduling, checkpoint triage, network planning,
// incident response and settlement routing.
//
// What is inside?
//
//	maxheap/      — generic binary max-heap: build, insert, extract, delete by priority
//	graph/        — weight-matrix Undirected graph (gonum SymDense) and arc-list Directed graph
//	prim_kruskal/ — minimum spanning trees, with a step-by-step Kruskal trace
//	bfs/          — breadth-first search with hooks, plus a one-hop peer scan
//	dijkstra/     — single-source shortest paths over non-negative arcs
//	bellmanford/  — single-source cheapest costs with negative arcs and cycle detection
//	examples/     — runnable programs, one per scenario
//
// Priorities everywhere:
//
//	The max-heap is the only queue in the module. Algorithms that need the
//	smallest item first (Prim, Dijkstra) key it by the negated weight.
//
// Quick example:
//
//	h, _ := maxheap.Build([]maxheap.Entry[string, int]{
//	    {Payload: "A", Priority: 42},
//	    {Payload: "B", Priority: 99},
//	})
//	top, _ := h.ExtractMax() // B 99
//
//	go get github.com/katalvlaran/lvclassic
package lvclassic
