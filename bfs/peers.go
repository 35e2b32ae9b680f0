package bfs

import (
	"github.com/katalvlaran/lvclassic/graph"
)

// DirectPeers lists the vertices exactly one hop from start. It is a BFS
// capped at depth 1 whose visit hook records each level-1 vertex with the
// weight of its link to start; the heaviest link becomes Strongest, first in
// matrix order on a tie.
//
// opts are applied as for BFS. A caller's OnVisit still runs before the peer
// is recorded, FilterNeighbor drops links from the scan, and MaxDepth is
// always forced to 1. A start with no followed links yields an empty scan.
func DirectPeers(g *graph.Undirected, start string, opts ...Option) (*PeerScan, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	scan := &PeerScan{Start: start}
	caller := o.OnVisit
	o.MaxDepth = 1
	o.OnVisit = func(id string, depth int) error {
		if err := caller(id, depth); err != nil {
			return err
		}
		if depth != 1 {
			return nil
		}
		w, err := g.Weight(start, id)
		if err != nil {
			return err
		}
		if !scan.Found() || w > scan.Strongest.Weight {
			scan.Strongest = Peer{ID: id, Weight: w}
		}
		scan.Peers = append(scan.Peers, Peer{ID: id, Weight: w})

		return nil
	}

	if _, err = traverse(g, start, o); err != nil {
		return nil, err
	}

	return scan, nil
}
