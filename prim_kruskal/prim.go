package prim_kruskal

import (
	"github.com/katalvlaran/lvclassic/graph"
	"github.com/katalvlaran/lvclassic/maxheap"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex.
//
// The frontier is a maxheap keyed by the negated edge weight, so ExtractMax
// yields the lightest candidate edge.
//
// Error Conditions:
//   - ErrInvalidGraph         : graph is nil.
//   - ErrEmptyRoot            : root is empty (checked when |V| > 1).
//   - graph.ErrVertexNotFound : root does not exist in the graph.
//   - ErrDisconnected         : |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate the graph; handle |V| == 0 and |V| == 1.
//  2. Validate root.
//  3. Mark root visited and push its edges.
//  4. While the frontier is non-empty and the tree has < |V|-1 edges:
//     pop the lightest edge; skip it if its far end is visited; otherwise
//     take it, mark the far end, and push the far end's edges to unvisited vertices.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) heap work plus O(V²) for the matrix neighbor scans.
func Prim(g *graph.Undirected, root string) ([]graph.Edge, float64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		if _, err := g.Index(root); err != nil {
			return nil, 0, err
		}

		return []graph.Edge{}, 0, nil
	}

	// 2. Validate root.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if _, err := g.Index(root); err != nil {
		return nil, 0, err
	}

	// 3. Initialize.
	visited := make(map[string]bool, n)
	mst := make([]graph.Edge, 0, n-1)
	var total float64

	pq, err := maxheap.New[graph.Edge, float64]()
	if err != nil {
		return nil, 0, err
	}
	push := func(from string) error {
		es, err := g.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range es {
			if !visited[e.To] {
				if err = pq.Insert(e, -e.Weight); err != nil {
					return err
				}
			}
		}

		return nil
	}

	visited[root] = true
	if err = push(root); err != nil {
		return nil, 0, err
	}

	// 4. Grow.
	for !pq.IsEmpty() && len(mst) < n-1 {
		item, _ := pq.ExtractMax()
		e := item.Payload
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Weight

		if err = push(e.To); err != nil {
			return nil, 0, err
		}
	}

	// 5. Connectivity check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
