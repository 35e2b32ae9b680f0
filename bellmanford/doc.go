// Package bellmanford computes single-source cheapest costs on a *graph.Directed
// whose arcs may carry negative weights, and detects negative-weight cycles.
//
// Overview:
//
//   - BellmanFord relaxes every arc |V|-1 times in insertion order, then runs a
//     final pass: if any arc can still be relaxed, a negative cycle is reachable
//     from the source and Result.NegativeCycle is set.
//   - A two-way link is an arc pair (graph.Directed.AddLink). Note that a single
//     negative two-way link is already a negative cycle.
//   - WithEarlyExit stops the passes once a pass changes nothing; the outcome is identical.
//
// Compared with package dijkstra:
//
//	Dijkstra is faster, O((V+E) log V), but rejects negative arcs.
//	BellmanFord is O(V·E) and accepts them. On non-negative graphs both agree.
//
// Determinism:
//
//	Arcs are relaxed in insertion order and only a strictly cheaper route
//	replaces a predecessor, so Prev is reproducible for a given graph.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound from BellmanFord.
//   - ErrUnreachable, ErrNegativeCycle from Result.PathTo.
//
// Usage:
//
//	res, err := bellmanford.BellmanFord(g, bellmanford.Source("A"))
//	if err != nil {
//	    return err
//	}
//	if res.NegativeCycle {
//	    // costs downstream of the cycle are unbounded
//	}
//	path, err := res.PathTo("H")
package bellmanford
