package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/lvclassic/graph"
)

// ErrInvalidGraph indicates that MST algorithms were handed a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0, or |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a priority queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Step records one edge considered by Kruskal, in consideration order.
// Added is false when the edge would have closed a cycle.
type Step struct {
	Edge  graph.Edge
	Added bool
}

// Trace is the full account of a Kruskal run.
type Trace struct {
	// Steps lists every edge examined until the tree was complete.
	Steps []Step

	// Edges is the spanning tree, in the order edges were added.
	Edges []graph.Edge

	// Total is the sum of Edges' weights.
	Total float64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   string — start vertex label for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
//	– MethodKruskal: calls Kruskal(g).
//	– MethodPrim:    calls Prim(g, Root).
//	– Otherwise:     returns ErrInvalidGraph.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute(g *graph.Undirected, opts ...Option) ([]graph.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
