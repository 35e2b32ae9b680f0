package prim_kruskal

import (
	"cmp"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvclassic/graph"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 but the graph is not fully connected.
//
// Complexity: O(V² + E log E + α(V)·E). The V² term is the matrix scan in g.Edges().
func Kruskal(g *graph.Undirected) ([]graph.Edge, float64, error) {
	tr, err := KruskalTrace(g)
	if err != nil {
		return nil, 0, err
	}

	return tr.Edges, tr.Total, nil
}

// KruskalTrace runs Kruskal and also returns every edge it considered, in order,
// marked added or rejected. Consideration stops as soon as |V|-1 edges are taken.
//
// Steps:
//  1. Validate: g != nil; |V| == 0 → ErrDisconnected; |V| == 1 → empty tree.
//  2. Collect edges via g.Edges() (upper triangle, row-major).
//  3. Stable sort by ascending weight, so equal weights keep matrix order.
//  4. Initialize parent[] and rank[] over vertex indices.
//  5. For each edge, union the endpoints if they are in different sets.
//  6. Fewer than |V|-1 tree edges → ErrDisconnected.
func KruskalTrace(g *graph.Undirected) (*Trace, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, ErrDisconnected
	}
	if n == 1 {
		return &Trace{Steps: []Step{}, Edges: []graph.Edge{}}, nil
	}

	// 2–3. Collect and stable-sort edges.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b graph.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 4. Disjoint-set over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports false when u and v already share a root.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Scan sorted edges.
	tr := &Trace{
		Steps: make([]Step, 0, len(edges)),
		Edges: make([]graph.Edge, 0, n-1),
	}
	weights := make([]float64, 0, n-1)
	for _, e := range edges {
		if len(tr.Edges) == n-1 {
			break
		}
		// labels come from g itself, so Index cannot fail
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		added := union(u, v)
		tr.Steps = append(tr.Steps, Step{Edge: e, Added: added})
		if added {
			tr.Edges = append(tr.Edges, e)
			weights = append(weights, e.Weight)
		}
	}

	// 6. Connectivity check.
	if len(tr.Edges) < n-1 {
		return nil, ErrDisconnected
	}
	tr.Total = floats.Sum(weights)

	return tr, nil
}
