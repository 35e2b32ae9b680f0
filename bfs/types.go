package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *graph.Undirected.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start label is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failed neighbor lookup.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option adjusts a traversal. An invalid value is remembered and reported as
// ErrOptionViolation by BFS or DirectPeers.
type Option func(*BFSOptions)

// BFSOptions is the resolved traversal configuration.
type BFSOptions struct {
	// Ctx is checked before every vertex is visited.
	Ctx context.Context

	// OnVisit sees each vertex with its hop count. A non-nil error stops the
	// walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop count of visited vertices; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor decides whether the link from to neighbor may be followed.
	FilterNeighbor func(from, neighbor string) bool

	err error
}

// DefaultOptions is an unbounded walk under context.Background that follows
// every link.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// buildOptions folds opts over DefaultOptions.
func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext attaches ctx; a nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion at depth d. Zero removes the bound and a
// negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a link predicate.
func WithFilterNeighbor(fn func(from, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the BFS tree rooted at the start vertex. Order lists reached
// vertices level by level, Depth holds hop counts and Parent the tree edges.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

func newResult(n int) *BFSResult {
	return &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
}

// PathTo returns the tree path from the start vertex to dest, inclusive.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, hops+1)
	for i, cur := hops, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Peer is a vertex one hop from the scan start, with the weight of the link.
type Peer struct {
	ID     string
	Weight float64
}

// PeerScan is the outcome of DirectPeers.
type PeerScan struct {
	// Start is the scanned vertex.
	Start string

	// Peers lists followed links in matrix order.
	Peers []Peer

	// Strongest is the heaviest link; the earliest peer wins ties.
	// Zero when Peers is empty.
	Strongest Peer
}

// Found reports whether at least one link was followed.
func (s *PeerScan) Found() bool { return len(s.Peers) > 0 }
