package bellmanford

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by BellmanFord and Result methods.
var (
	// ErrNilGraph indicates that a nil *graph.Directed was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the Source option was not supplied.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrUnreachable is returned by PathTo for a vertex with no path from the source.
	ErrUnreachable = errors.New("bellmanford: vertex unreachable from source")

	// ErrNegativeCycle is returned by PathTo when the predecessor chain of dest
	// runs into a negative cycle and never gets back to the source.
	ErrNegativeCycle = errors.New("bellmanford: path runs through a negative cycle")
)

// Options configures a BellmanFord run.
//
// Source    – starting vertex ID (required).
// EarlyExit – stop the relaxation passes as soon as one pass changes nothing.
type Options struct {
	Source    string
	EarlyExit bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithEarlyExit ends the relaxation phase after the first pass that relaxes
// nothing. The detection pass still runs, so results are unchanged.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns Options with an empty source and all |V|-1 passes.
func DefaultOptions() Options {
	return Options{}
}

// Result holds the outcome of a Bellman-Ford run.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string

	// Dist maps every vertex to its cheapest known cost; +Inf when unreachable.
	Dist map[string]float64

	// Prev maps every vertex to its predecessor on that route; "" for the
	// source and for unreachable vertices.
	Prev map[string]string

	// NegativeCycle is set when an arc could still be relaxed after |V|-1
	// passes. Dist and Prev are then not reliable for vertices downstream of
	// the cycle.
	NegativeCycle bool

	// Passes is the number of relaxation passes actually run.
	Passes int
}

// Reachable reports whether dest has a finite cost from the source.
func (r *Result) Reachable(dest string) bool {
	d, ok := r.Dist[dest]
	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the source→dest route by walking Prev.
// Returns ErrUnreachable for unknown or unreachable vertices and
// ErrNegativeCycle when the walk loops.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}

	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		if cur == "" || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: %q", ErrNegativeCycle, dest)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
