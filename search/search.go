package search

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// Run executes the selected algorithm over snap and returns its trace.
// The switch is exhaustive over the Algorithm enum; anything else is
// ErrUnknownAlgorithm.
//
// A run is a synchronous, single-threaded pure computation: the whole
// trace exists before Run returns, and replaying it never re-triggers
// any computation.
func Run(algo Algorithm, snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	switch algo {
	case AlgorithmBFS:
		return BFS(snap, opts...)
	case AlgorithmDFS:
		return DFS(snap, opts...)
	case AlgorithmDLS:
		return DLS(snap, opts...)
	case AlgorithmIDS:
		return IDS(snap, opts...)
	case AlgorithmUCS:
		return UCS(snap, opts...)
	case AlgorithmBidirectional:
		return Bidirectional(snap, opts...)
	case AlgorithmGreedy:
		return Greedy(snap, opts...)
	case AlgorithmAStar:
		return AStar(snap, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
