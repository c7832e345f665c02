package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// IDS runs iterative deepening search: DLS at limits 0, 1, 2, … up to
// WithMaxDepth (default 10). Every iteration is an independent bounded
// descent — the visited set and parent chain reset at each boundary —
// and all inner steps concatenate into one trace, each iteration
// prefixed by a Limit-Raised marker.
//
// On unweighted graphs the first iteration that reaches the goal does
// so at the minimal depth, so the path is minimal in edge count.
func IDS(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(snap, false); err != nil {
		return nil, err
	}

	rec := trace.NewRecorder()
	var w *walker
	for limit := 0; limit <= o.MaxDepth; limit++ {
		// Iteration boundary: fresh visited set, same recorder.
		w = newWalker(snap, rec, limit)
		rec.Record(trace.Step{
			Node:     snap.Source(),
			Action:   trace.ActionLimitRaised,
			Estimate: snap.Heuristic(snap.Source()),
			Limit:    limit,
		})
		if runDepthBounded(w) {
			return rec.Finalize(), nil
		}
	}

	// Every limit up to MaxDepth failed.
	w.exhaust(nil)

	return rec.Finalize(), nil
}
