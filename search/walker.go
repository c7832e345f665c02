// This file holds the walker: mutable per-run state and the recording
// helpers every single-frontier algorithm shares.
package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/frontier"
	"github.com/katalvlaran/searchtrace/trace"
)

// validate rejects a run before it starts. needCost additionally scans
// for negative weights (UCS, A*).
func validate(snap *core.Snapshot, needCost bool) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if snap.Source() == "" {
		return ErrNoSource
	}
	if snap.Goal() == "" {
		return ErrNoGoal
	}
	if needCost && snap.HasNegativeWeight() {
		return ErrNegativeWeight
	}

	return nil
}

// walker encapsulates the mutable state of one single-frontier run:
// the visited set (in insertion order), the parent chain, and the
// recorder the run writes through.
type walker struct {
	snap    *core.Snapshot
	rec     *trace.Recorder
	goal    string
	visited map[string]bool
	order   []string
	parent  map[string]string
	limit   int // trace.NoLimit unless depth-bounded
}

// newWalker prepares fresh per-run (or, for IDS, per-iteration) state.
func newWalker(snap *core.Snapshot, rec *trace.Recorder, limit int) *walker {
	n := snap.VertexCount()

	return &walker{
		snap:    snap,
		rec:     rec,
		goal:    snap.Goal(),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
		parent:  make(map[string]string, n),
		limit:   limit,
	}
}

// sourceEntry seeds a frontier with the snapshot's source.
func sourceEntry(snap *core.Snapshot) frontier.Entry {
	src := snap.Source()

	return frontier.Entry{ID: src, Estimate: snap.Heuristic(src)}
}

// childEntry derives the frontier entry for arc taken from e.
func childEntry(snap *core.Snapshot, e frontier.Entry, arc core.Arc) frontier.Entry {
	return frontier.Entry{
		ID:       arc.To,
		Cost:     e.Cost + arc.Weight,
		Estimate: snap.Heuristic(arc.To),
		Parent:   e.ID,
		Depth:    e.Depth + 1,
	}
}

// seen reports whether id was already expanded.
func (w *walker) seen(id string) bool { return w.visited[id] }

// visit marks id expanded and appends it to the display order.
func (w *walker) visit(id string) {
	w.visited[id] = true
	w.order = append(w.order, id)
}

// path reconstructs source→id along the parent chain.
func (w *walker) path(id string) []string {
	var rev []string
	for cur := id; cur != ""; cur = w.parent[cur] {
		rev = append(rev, cur)
	}
	// reverse to get source → id
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// visitedSnapshot copies the expansion order for a Step.
func (w *walker) visitedSnapshot() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)

	return out
}

// classify names the action of a pop that did not hit the goal.
func (w *walker) classify(e frontier.Entry, pushed int, atLimit bool) trace.Action {
	switch {
	case pushed > 0:
		return trace.ActionExpand
	case atLimit || len(w.snap.Out(e.ID)) == 0:
		return trace.ActionDeadEnd
	default:
		return trace.ActionBacktrack
	}
}

// record appends one Step for the pop of e.
func (w *walker) record(e frontier.Entry, act trace.Action, fringe []frontier.Entry) {
	w.rec.Record(trace.Step{
		Node:     e.ID,
		Action:   act,
		Fringe:   fringe,
		Visited:  w.visitedSnapshot(),
		Path:     w.path(e.ID),
		Cost:     e.Cost,
		Estimate: e.Estimate,
		Depth:    e.Depth,
		Limit:    w.limit,
	})
}

// exhaust appends the terminal Exhausted marker.
func (w *walker) exhaust(fringe []frontier.Entry) {
	w.rec.Record(trace.Step{
		Action:  trace.ActionExhausted,
		Fringe:  fringe,
		Visited: w.visitedSnapshot(),
		Limit:   w.limit,
	})
}
