// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// *graph.Directed with non-negative arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |arcs|.
//   - The frontier is a maxheap.Heap keyed by the negated tentative distance, so
//     ExtractMax always yields the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and "impassable" arc thresholds.
//   - A two-way link is an arc pair (graph.Directed.AddLink).
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor map; PathTo rebuilds a route from it.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as impassable.
//
// Lazy decrease-key:
//
//	A shorter path to an already-queued vertex pushes a second entry instead of
//	updating the first. Stale entries are skipped when popped, because the
//	vertex is already settled.
//
// Error handling (sentinel errors):
//
//   - ErrBadMaxDistance / ErrBadInfThreshold: recorded by the option and returned by Dijkstra.
//   - ErrEmptySource:    the Source option was not supplied.
//   - ErrNilGraph:       g is nil.
//   - ErrVertexNotFound: the source vertex does not exist in the graph.
//   - ErrNegativeWeight: some arc is negative (O(E) pre-scan); use package bellmanford instead.
//   - ErrUnreachable:    returned by PathTo.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, err := dijkstra.PathTo(dist, prev, "F")
//
// Thread safety:
//
//	Dijkstra only reads g. Concurrent queries are safe as long as nobody adds arcs meanwhile.
package dijkstra
