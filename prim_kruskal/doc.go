// Package prim_kruskal computes Minimum Spanning Trees (MST) of an undirected,
// weighted *graph.Undirected with either Kruskal's or Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and whose total weight is minimal.
//
//   - Why it matters:
//
//   - Network Design: the cheapest set of fiber links that still connects every site.
//
//   - Clustering: cutting the heaviest tree edges splits the vertices into groups.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]graph.Edge, float64, error)
//
//   - Strategy: sort all edges by weight, then walk them from lightest to heaviest, merging
//     components with a disjoint-set and rejecting edges whose endpoints already share a set.
//
//   - KruskalTrace(g) additionally reports every considered edge as added or rejected.
//
//   - Determinism: g.Edges() scans the upper triangle row by row and the sort is stable,
//     so equal weights resolve in matrix order.
//
//   - Prim(g, root) ([]graph.Edge, float64, error)
//
//   - Strategy: grow a single tree from root, always taking the lightest edge that reaches
//     a new vertex. The frontier is a maxheap keyed by negated weight.
//
// Error Conditions
//
//	- ErrInvalidGraph          – graph is nil (or Compute got an unknown method).
//	- ErrEmptyRoot             – Prim with root == "".
//	- graph.ErrVertexNotFound  – Prim root absent.
//	- ErrDisconnected          – |V| == 0, or no spanning tree covers every vertex.
//
// Complexity
//
//   - Kruskal: O(V² + E log E). Prim: O(V² + E log E).
//     The V² terms come from scanning the adjacency matrix.
package prim_kruskal
