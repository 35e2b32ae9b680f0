package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvclassic/graph"
	"github.com/katalvlaran/lvclassic/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inf marks "no link" in the fixtures below.
var inf = graph.Inf

// mustUndirected builds an Undirected or fails the test.
func mustUndirected(tb testing.TB, labels []string, w [][]float64) *graph.Undirected {
	tb.Helper()
	g, err := graph.NewUndirected(labels, w)
	require.NoError(tb, err)

	return g
}

// buildTriangle constructs A—B (1), B—C (2), A—C (3).
// Its MST is {A—B, B—C} with total weight 3.
func buildTriangle(t *testing.T) *graph.Undirected {
	return mustUndirected(t, []string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
}

// buildFiberNet is the seven-site cost matrix (millions $) of the fiber backbone.
func buildFiberNet(t *testing.T) *graph.Undirected {
	return mustUndirected(t, []string{"A", "B", "C", "D", "E", "F", "G"}, [][]float64{
		{0, 6, inf, 5, inf, inf, inf},
		{6, 0, 11, 17, inf, inf, inf},
		{inf, 11, 0, inf, inf, inf, 25},
		{5, 17, inf, 0, 22, 22, inf},
		{inf, inf, inf, 22, 0, 10, inf},
		{inf, inf, inf, 22, 10, 0, inf},
		{inf, inf, 25, inf, inf, inf, 0},
	})
}

// buildMediumGraph creates a connected graph with n vertices: a chain V0—V1—…—V(n-1)
// plus extra random links, all from a fixed seed.
func buildMediumGraph(tb testing.TB, n, extra int) *graph.Undirected {
	r := rand.New(rand.NewSource(42))
	labels := make([]string, n)
	w := make([][]float64, n)
	for i := range w {
		labels[i] = fmt.Sprintf("V%d", i)
		w[i] = make([]float64, n)
	}
	link := func(i, j int, weight float64) {
		w[i][j], w[j][i] = weight, weight
	}
	for i := 1; i < n; i++ {
		link(i-1, i, 1.0+r.Float64()+float64(r.Intn(10)))
	}
	for k := 0; k < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || w[u][v] != 0 {
			continue
		}
		link(u, v, 1.0+r.Float64()+float64(r.Intn(100)))
		k++
	}

	return mustUndirected(tb, labels, w)
}

// edgeSet normalizes edges to "lo-hi" keys.
func edgeSet(es []graph.Edge) map[string]bool {
	out := make(map[string]bool, len(es))
	for _, e := range es {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[u+"-"+v] = true
	}

	return out
}

// TestValidation_NilOrEmpty verifies nil and empty graphs are rejected by both algorithms.
func TestValidation_NilOrEmpty(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g := mustUndirected(t, nil, nil)
	edges, total, err := prim_kruskal.Kruskal(g)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	edges, total, err = prim_kruskal.Prim(g, "A")
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestValidation_Root verifies Prim's root checks.
func TestValidation_Root(t *testing.T) {
	g := buildTriangle(t)

	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestTriangle checks both algorithms pick {A—B, B—C}.
func TestTriangle(t *testing.T) {
	g := buildTriangle(t)

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, edgeSet(mst))

	mst, total, err = prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, edgeSet(mst))
}

// TestSingleVertexGraph: empty tree, no error, provided Prim's root matches.
func TestSingleVertexGraph(t *testing.T) {
	g := mustUndirected(t, []string{"X"}, [][]float64{{0}})

	mst, total, err := prim_kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, total, err = prim_kruskal.Prim(g, "X")
	assert.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	_, _, err = prim_kruskal.Prim(g, "Y")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestTwoIsolatedVertices: no link means no spanning tree.
func TestTwoIsolatedVertices(t *testing.T) {
	g := mustUndirected(t, []string{"A", "B"}, [][]float64{{0, 0}, {0, 0}})

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestKruskalTrace_FiberNet replays the backbone decision log.
func TestKruskalTrace_FiberNet(t *testing.T) {
	tr, err := prim_kruskal.KruskalTrace(buildFiberNet(t))
	require.NoError(t, err)

	type step struct {
		from, to string
		w        float64
		added    bool
	}
	want := []step{
		{"A", "D", 5, true},
		{"A", "B", 6, true},
		{"E", "F", 10, true},
		{"B", "C", 11, true},
		{"B", "D", 17, false},
		{"D", "E", 22, true},
		{"D", "F", 22, false},
		{"C", "G", 25, true},
	}
	require.Len(t, tr.Steps, len(want))
	for i, s := range tr.Steps {
		assert.Equal(t, want[i], step{s.Edge.From, s.Edge.To, s.Edge.Weight, s.Added}, "step %d", i)
	}

	assert.Len(t, tr.Edges, 6)
	assert.Equal(t, 79.0, tr.Total)
}

// TestKruskalTrace_StopsWhenComplete: edges after the last needed one are not considered.
func TestKruskalTrace_StopsWhenComplete(t *testing.T) {
	tr, err := prim_kruskal.KruskalTrace(buildTriangle(t))
	require.NoError(t, err)
	assert.Len(t, tr.Steps, 2, "A—C (3) is never examined")
}

// TestComparison_MediumGraph: both algorithms agree on total weight and size.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(t, 30, 60)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, mstK, g.Order()-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, "V0")
	require.NoError(t, errP)
	assert.Len(t, mstP, g.Order()-1)

	assert.InDelta(t, totalK, totalP, 1e-9)
}

// TestCompute dispatches by method.
func TestCompute(t *testing.T) {
	g := buildFiberNet(t)

	_, totalK, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	_, totalP, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("G"))
	require.NoError(t, err)
	assert.Equal(t, totalK, totalP)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}
