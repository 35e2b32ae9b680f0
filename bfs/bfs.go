package bfs

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvclassic/graph"
)

// BFS walks g outward from start one level at a time and returns the
// resulting tree. Vertices within a level are visited in the order they were
// discovered, which is matrix column order of their parents' rows.
//
// Errors: ErrOptionViolation, ErrGraphNil, ErrStartVertexNotFound,
// ErrNeighbors, a wrapped OnVisit error, or ctx.Err(). On a hook error or
// cancellation the partial result is returned alongside the error.
func BFS(g *graph.Undirected, start string, opts ...Option) (*BFSResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return traverse(g, start, o)
}

// traverse is BFS over resolved options.
func traverse(g *graph.Undirected, start string, o BFSOptions) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := newResult(n)
	seen := mapset.NewThreadUnsafeSetWithSize[string](n)
	seen.Add(start)
	res.Depth[start] = 0

	frontier := []string{start}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			if err := o.Ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, id)
			if err := o.OnVisit(id, depth); err != nil {
				return res, fmt.Errorf("bfs: visit %q: %w", id, err)
			}
			if o.MaxDepth > 0 && depth == o.MaxDepth {
				continue
			}

			nbrs, err := g.NeighborIDs(id)
			if err != nil {
				return res, fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
			}
			for _, nb := range nbrs {
				if seen.Contains(nb) || !o.FilterNeighbor(id, nb) {
					continue
				}
				seen.Add(nb)
				res.Depth[nb] = depth + 1
				res.Parent[nb] = id
				next = append(next, nb)
			}
		}
		frontier = next
	}

	return res, nil
}
