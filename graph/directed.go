package graph

import (
	"fmt"
	"math"
)

// Directed is a labelled graph of weighted arcs kept in insertion order.
// Parallel arcs and negative weights are allowed.
//
// Directed is not safe for concurrent mutation.
type Directed struct {
	labels []string
	index  map[string]int
	arcs   []Edge
	out    [][]int // out[v] = positions in arcs leaving v
}

// NewDirected creates an arc-less graph over labels.
// Returns ErrEmptyLabel or ErrDuplicateLabel for bad labels.
func NewDirected(labels []string) (*Directed, error) {
	index, err := indexLabels(labels)
	if err != nil {
		return nil, err
	}

	return &Directed{
		labels: append([]string(nil), labels...),
		index:  index,
		out:    make([][]int, len(labels)),
	}, nil
}

// AddArc appends the arc from→to with weight w.
// Returns ErrVertexNotFound for unknown endpoints and ErrNaN for a NaN weight.
func (g *Directed) AddArc(from, to string, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: arc %s→%s", ErrNaN, from, to)
	}
	i, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = g.index[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	g.out[i] = append(g.out[i], len(g.arcs))
	g.arcs = append(g.arcs, Edge{From: from, To: to, Weight: w})

	return nil
}

// AddLink models a two-way link as the arc pair a→b, b→a with the same weight.
func (g *Directed) AddLink(a, b string, w float64) error {
	if err := g.AddArc(a, b, w); err != nil {
		return err
	}

	return g.AddArc(b, a, w)
}

// Arcs returns a copy of all arcs in insertion order.
func (g *Directed) Arcs() []Edge { return append([]Edge(nil), g.arcs...) }

// Labels returns the vertex labels in construction order.
func (g *Directed) Labels() []string { return append([]string(nil), g.labels...) }

// Order returns the number of vertices.
func (g *Directed) Order() int { return len(g.labels) }

// HasVertex reports whether label names a vertex.
func (g *Directed) HasVertex(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Outgoing returns the arcs leaving label, in insertion order.
func (g *Directed) Outgoing(label string) ([]Edge, error) {
	i, ok := g.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}
	out := make([]Edge, len(g.out[i]))
	for k, pos := range g.out[i] {
		out[k] = g.arcs[pos]
	}

	return out, nil
}
