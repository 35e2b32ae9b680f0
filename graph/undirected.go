package graph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Undirected is a labelled, weighted, undirected graph backed by a symmetric
// adjacency matrix. Absent links are stored as 0. The diagonal is ignored:
// self-loops are never reported.
//
// An Undirected is immutable after construction and safe for concurrent reads.
type Undirected struct {
	labels []string
	index  map[string]int
	w      *mat.SymDense // nil when the graph has no vertices
}

// NewUndirected builds a graph from vertex labels and a square weight matrix.
// weights[i][j] is the cost between labels[i] and labels[j]; 0 or Inf means no link.
//
// Error Conditions:
//   - ErrEmptyLabel, ErrDuplicateLabel : bad labels.
//   - ErrDimensionMismatch             : weights is not len(labels)×len(labels).
//   - ErrNaN                           : a NaN weight.
//   - ErrAsymmetry                     : weights[i][j] != weights[j][i] for a present link.
//
// Complexity: O(V²).
func NewUndirected(labels []string, weights [][]float64) (*Undirected, error) {
	index, err := indexLabels(labels)
	if err != nil {
		return nil, err
	}

	n := len(labels)
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d rows for %d labels", ErrDimensionMismatch, len(weights), n)
	}
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
	}

	g := &Undirected{labels: append([]string(nil), labels...), index: index}
	if n == 0 {
		return g, nil
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := weights[i][j], weights[j][i]
			if math.IsNaN(a) {
				return nil, fmt.Errorf("%w: at (%s,%s)", ErrNaN, labels[i], labels[j])
			}
			if i == j || absent(a) {
				if !absent(b) && i != j {
					return nil, fmt.Errorf("%w: (%s,%s)=%v but (%s,%s)=%v",
						ErrAsymmetry, labels[i], labels[j], a, labels[j], labels[i], b)
				}
				continue
			}
			if a != b {
				return nil, fmt.Errorf("%w: (%s,%s)=%v but (%s,%s)=%v",
					ErrAsymmetry, labels[i], labels[j], a, labels[j], labels[i], b)
			}
			data[i*n+j] = a
		}
	}
	g.w = mat.NewSymDense(n, data)

	return g, nil
}

// Labels returns the vertex labels in matrix order.
func (g *Undirected) Labels() []string { return append([]string(nil), g.labels...) }

// Order returns the number of vertices.
func (g *Undirected) Order() int { return len(g.labels) }

// HasVertex reports whether label names a vertex.
func (g *Undirected) HasVertex(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Index returns the matrix row of label.
func (g *Undirected) Index(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	return i, nil
}

// Weight returns the cost between u and v, or 0 when they are not linked.
func (g *Undirected) Weight(u, v string) (float64, error) {
	i, err := g.Index(u)
	if err != nil {
		return 0, err
	}
	j, err := g.Index(v)
	if err != nil {
		return 0, err
	}

	return g.w.At(i, j), nil
}

// HasEdge reports whether u and v are directly linked.
// Unknown labels are simply not linked.
func (g *Undirected) HasEdge(u, v string) bool {
	w, err := g.Weight(u, v)
	return err == nil && w != 0
}

// Row returns the stored weights of label's row (0 = no link), in matrix order.
func (g *Undirected) Row(label string) ([]float64, error) {
	i, err := g.Index(label)
	if err != nil {
		return nil, err
	}

	return mat.Row(nil, i, g.w), nil
}

// Edges returns every link once, scanning the upper triangle row by row:
// (0,1), (0,2), ..., (1,2), ... . From is always the lower-index vertex.
// Complexity: O(V²).
func (g *Undirected) Edges() []Edge {
	n := g.Order()
	var out []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := g.w.At(i, j); w != 0 {
				out = append(out, Edge{From: g.labels[i], To: g.labels[j], Weight: w})
			}
		}
	}

	return out
}

// Neighbors returns the links of label in matrix column order, each with From == label.
func (g *Undirected) Neighbors(label string) ([]Edge, error) {
	row, err := g.Row(label)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(row))
	for j, w := range row {
		if w != 0 && g.labels[j] != label {
			out = append(out, Edge{From: label, To: g.labels[j], Weight: w})
		}
	}

	return out, nil
}

// NeighborIDs returns the labels adjacent to label, in matrix order.
func (g *Undirected) NeighborIDs(label string) ([]string, error) {
	es, err := g.Neighbors(label)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.To
	}

	return ids, nil
}

// indexLabels validates labels and maps each to its position.
func indexLabels(labels []string) (map[string]int, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyLabel, i)
		}
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}

	return index, nil
}
