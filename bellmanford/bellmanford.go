package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvclassic/graph"
)

// BellmanFord computes single-source cheapest costs on g, tolerating negative arc weights.
//
// Steps:
//  1. Apply options; validate Source, g, and that Source is a vertex.
//  2. Set every distance to +Inf and the source to 0.
//  3. Run up to |V|-1 passes, each relaxing every arc in insertion order.
//     With WithEarlyExit a pass that changes nothing ends the phase.
//  4. Run one detection pass: any arc that still relaxes marks NegativeCycle.
//
// A negative cycle is reported through Result.NegativeCycle, not as an error,
// so the costs computed so far remain available to the caller.
//
// Complexity: O(V·E) time, O(V) extra space.
func BellmanFord(g *graph.Directed, opts ...Option) (*Result, error) {
	// 1. Options and validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 2. Initialize.
	r := &runner{
		arcs: g.Arcs(),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64, g.Order()),
			Prev:   make(map[string]string, g.Order()),
		},
	}
	for _, v := range g.Labels() {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = ""
	}
	r.res.Dist[cfg.Source] = 0

	// 3. Relaxation passes.
	for pass := 1; pass < g.Order(); pass++ {
		r.res.Passes++
		if !r.relaxAll() && cfg.EarlyExit {
			break
		}
	}

	// 4. Detection pass.
	r.res.NegativeCycle = r.stillRelaxes()

	return r.res, nil
}

// runner holds the mutable state for one Bellman-Ford execution.
type runner struct {
	arcs []graph.Edge // snapshot in insertion order
	res  *Result
}

// relaxAll runs one pass over every arc and reports whether any distance improved.
func (r *runner) relaxAll() bool {
	changed := false
	for _, e := range r.arcs {
		du := r.res.Dist[e.From]
		if math.IsInf(du, 1) {
			continue
		}
		if nd := du + e.Weight; nd < r.res.Dist[e.To] {
			r.res.Dist[e.To] = nd
			r.res.Prev[e.To] = e.From
			changed = true
		}
	}

	return changed
}

// stillRelaxes reports whether some arc could improve a distance further.
func (r *runner) stillRelaxes() bool {
	for _, e := range r.arcs {
		du := r.res.Dist[e.From]
		if !math.IsInf(du, 1) && du+e.Weight < r.res.Dist[e.To] {
			return true
		}
	}

	return false
}
