package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvclassic/bfs"
	"github.com/katalvlaran/lvclassic/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workstations is the seven-node transfer-time matrix (minutes) of the office network.
func workstations(t *testing.T) *graph.Undirected {
	t.Helper()
	g, err := graph.NewUndirected(
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		[][]float64{
			{0, 6, 0, 5, 0, 0, 0},
			{6, 0, 11, 17, 0, 0, 0},
			{0, 11, 0, 0, 0, 0, 25},
			{5, 17, 0, 0, 22, 22, 0},
			{0, 0, 0, 22, 0, 10, 0},
			{0, 0, 0, 22, 10, 0, 0},
			{0, 0, 25, 0, 0, 0, 0},
		})
	require.NoError(t, err)

	return g
}

// TestDirectPeers_TieKeepsFirst: D links to E and F with equal weight; E comes first.
func TestDirectPeers_TieKeepsFirst(t *testing.T) {
	scan, err := bfs.DirectPeers(workstations(t), "D")
	require.NoError(t, err)

	assert.True(t, scan.Found())
	assert.Equal(t, "D", scan.Start)
	assert.Equal(t, []bfs.Peer{
		{ID: "A", Weight: 5},
		{ID: "B", Weight: 17},
		{ID: "E", Weight: 22},
		{ID: "F", Weight: 22},
	}, scan.Peers)
	assert.Equal(t, bfs.Peer{ID: "E", Weight: 22}, scan.Strongest)
}

// TestDirectPeers_Leaf: G has a single link.
func TestDirectPeers_Leaf(t *testing.T) {
	scan, err := bfs.DirectPeers(workstations(t), "G")
	require.NoError(t, err)
	assert.Equal(t, []bfs.Peer{{ID: "C", Weight: 25}}, scan.Peers)
	assert.Equal(t, "C", scan.Strongest.ID)
}

// TestDirectPeers_Isolated: no links is an empty scan, not an error.
func TestDirectPeers_Isolated(t *testing.T) {
	g, err := graph.NewUndirected([]string{"A", "B"}, [][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)

	scan, err := bfs.DirectPeers(g, "A")
	require.NoError(t, err)
	assert.False(t, scan.Found())
	assert.Empty(t, scan.Peers)
	assert.Zero(t, scan.Strongest)
}

// TestDirectPeers_Errors propagates BFS validation errors.
func TestDirectPeers_Errors(t *testing.T) {
	_, err := bfs.DirectPeers(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.DirectPeers(workstations(t), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestDirectPeers_Filter keeps only the links the filter accepts, and Strongest
// is chosen among those.
func TestDirectPeers_Filter(t *testing.T) {
	g := workstations(t)
	under20 := func(from, to string) bool {
		w, err := g.Weight(from, to)
		return err == nil && w < 20
	}

	scan, err := bfs.DirectPeers(g, "D", bfs.WithFilterNeighbor(under20))
	require.NoError(t, err)
	assert.Equal(t, []bfs.Peer{{ID: "A", Weight: 5}, {ID: "B", Weight: 17}}, scan.Peers)
	assert.Equal(t, bfs.Peer{ID: "B", Weight: 17}, scan.Strongest)

	none, err := bfs.DirectPeers(g, "G", bfs.WithFilterNeighbor(under20))
	require.NoError(t, err)
	assert.False(t, none.Found())
}

// TestDirectPeers_CallerHook runs the caller's hook on the start and every peer,
// and ignores a caller MaxDepth.
func TestDirectPeers_CallerHook(t *testing.T) {
	var visited []string
	scan, err := bfs.DirectPeers(workstations(t), "C",
		bfs.WithMaxDepth(5),
		bfs.WithOnVisit(func(id string, _ int) error {
			visited = append(visited, id)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "G"}, visited)
	assert.Equal(t, bfs.Peer{ID: "G", Weight: 25}, scan.Strongest)

	errStop := errors.New("stop")
	_, err = bfs.DirectPeers(workstations(t), "C", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "G" {
			return errStop
		}
		return nil
	}))
	assert.ErrorIs(t, err, errStop)
}

func TestDirectPeers_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scan, err := bfs.DirectPeers(workstations(t), "D", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, scan)
}

func TestDirectPeers_BadOption(t *testing.T) {
	_, err := bfs.DirectPeers(workstations(t), "D", bfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}
