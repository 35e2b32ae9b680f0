// Package bfs provides breadth-first search over a *graph.Undirected,
// returning hop-count distances, parent links, and visit order, plus a
// one-hop peer scan built on top of it.
//
// What
//
//   - BFS expands one frontier (all vertices at the same hop count) at a time
//     and returns a BFSResult with Order, Depth and Parent.
//   - WithOnVisit observes every visited vertex and may abort the walk.
//   - WithFilterNeighbor prunes individual links; WithMaxDepth caps the search.
//   - DirectPeers is BFS at depth 1 with a visit hook that records each direct
//     neighbor with the weight of its link, plus the heaviest link ("strongest peer").
//     The same options apply, so a link filter narrows the scan.
//
// Determinism
//
//	A frontier is built in adjacency-matrix column order of its parents' rows,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(V²)  (each visited vertex scans one matrix row)
//   - Memory: O(V)   (frontiers, Depth map, Parent map, seen set)
//
// Usage
//
//	result, err := bfs.BFS(g, "A", bfs.WithMaxDepth(3))
//
//	scan, err := bfs.DirectPeers(g, "D", bfs.WithContext(ctx))
//	if scan.Found() {
//	    fmt.Println(scan.Strongest.ID, scan.Strongest.Weight)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if a neighbor lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
