// Package graph defines the small labelled, weighted graph types shared by the
// traversal, spanning-tree and shortest-path packages.
//
// Two shapes are provided:
//
//	Undirected – a symmetric adjacency matrix (cost tables, link matrices).
//	Directed   – an ordered list of arcs (relaxation-style algorithms).
//
// Errors:
//
//	ErrEmptyLabel        - a vertex label is the empty string.
//	ErrDuplicateLabel    - two vertices share a label.
//	ErrVertexNotFound    - a referenced label does not exist.
//	ErrDimensionMismatch - matrix shape does not match the label count.
//	ErrAsymmetry         - undirected weights differ between w[i][j] and w[j][i].
//	ErrNaN               - a weight is NaN.
package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("graph: vertex label is empty")

	// ErrDuplicateLabel indicates that the same label was given to two vertices.
	ErrDuplicateLabel = errors.New("graph: duplicate vertex label")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDimensionMismatch indicates a weight matrix that is not len(labels)×len(labels).
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrAsymmetry indicates an undirected weight matrix with w[i][j] != w[j][i].
	ErrAsymmetry = errors.New("graph: matrix is not symmetric")

	// ErrNaN indicates a NaN weight.
	ErrNaN = errors.New("graph: NaN weight")
)

// Inf marks an absent link in a weight matrix. A zero weight means the same.
var Inf = math.Inf(1)

// Edge is a weighted connection From→To. For Undirected graphs From precedes
// To in label order when produced by Edges().
type Edge struct {
	// From is the source vertex label.
	From string

	// To is the destination vertex label.
	To string

	// Weight is the cost of the link.
	Weight float64
}

// absent reports whether w encodes "no link".
func absent(w float64) bool {
	return w == 0 || math.IsInf(w, 1)
}
