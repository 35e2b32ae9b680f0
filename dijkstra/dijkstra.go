package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvclassic/graph"
	"github.com/katalvlaran/lvclassic/maxheap"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of the directed graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No arc in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *graph.Directed, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan all arcs to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Arcs() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Prepare the runner. The queue is a max-heap over negated distances.
	pq, err := maxheap.New[string, float64]()
	if err != nil {
		return nil, nil, err
	}
	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      pq,
	}

	// 7) Initialize algorithm state and run main loop.
	if err = r.init(); err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	// 8) Return prev only on request.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Directed                // The input graph; read-only within Dijkstra.
	options Options                        // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64             // Maps vertex ID → current best distance from Source.
	prev    map[string]string              // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool                // Tracks if a vertex's distance is finalized.
	pq      *maxheap.Heap[string, float64] // Lazy queue keyed by -distance.
}

// init sets every distance to +Inf, the source to 0, and seeds the queue.
func (r *runner) init() error {
	for _, v := range r.g.Labels() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	return r.pq.Insert(r.options.Source, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest-distance item.
		item, _ := r.pq.ExtractMax()
		u, d := item.Payload, -item.Priority

		// 2) Skip stale entries for settled vertices.
		if r.visited[u] {
			continue
		}

		// 3) Nothing left within range.
		if d > r.options.MaxDistance {
			break
		}

		// 4) d is final for u.
		r.visited[u] = true

		// 5) Relax all outgoing arcs from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and attempts to improve distances to its heads.
// Arcs with weight ≥ InfEdgeThreshold are impassable. A strictly shorter path
// updates dist and prev and pushes a fresh queue entry (lazy decrease-key).
func (r *runner) relax(u string) error {
	arcs, err := r.g.Outgoing(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range arcs {
		v, w := e.To, e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict: equal distances keep the first predecessor
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		if err = r.pq.Insert(v, -newDist); err != nil {
			return err
		}
	}

	return nil
}
