package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/frontier"
	"github.com/katalvlaran/searchtrace/trace"
)

// Bidirectional runs two simultaneous FIFO searches, one from the
// source and one from the goal, expanding alternately — forward first,
// which is also the tie-break when both frontiers could claim the same
// meeting vertex in one round. The run terminates the instant an
// expanded vertex turns out to be discovered by the opposite side; the
// final path joins the forward partial path to the meeting vertex with
// the backward partial path from it.
//
// On directed snapshots the backward half walks arcs against their
// direction via the snapshot's reverse adjacency, so the joined path is
// always a valid forward path.
func Bidirectional(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(snap, false); err != nil {
		return nil, err
	}

	b := &biWalker{
		snap:    snap,
		rec:     trace.NewRecorder(),
		fq:      frontier.NewQueue(),
		bq:      frontier.NewQueue(),
		fseen:   map[string]bool{snap.Source(): true},
		bseen:   map[string]bool{snap.Goal(): true},
		fparent: map[string]string{snap.Source(): ""},
		bparent: map[string]string{snap.Goal(): ""},
	}
	b.fq.Push(sourceEntry(snap))
	b.bq.Push(frontier.Entry{ID: snap.Goal(), Estimate: snap.Heuristic(snap.Goal())})

	for b.fq.Len() > 0 && b.bq.Len() > 0 {
		// Forward half-step first: forward wins meeting ties.
		if b.halfStep(true) {
			return b.rec.Finalize(), nil
		}
		if b.halfStep(false) {
			return b.rec.Finalize(), nil
		}
	}

	// One side drained: source and goal live in different components
	// (or, on directed graphs, no forward path exists).
	b.rec.Record(trace.Step{
		Action:  trace.ActionExhausted,
		Fringe:  b.fringe(),
		Visited: b.visitedSnapshot(),
		Limit:   trace.NoLimit,
	})

	return b.rec.Finalize(), nil
}

// biWalker holds the twin-frontier state. Discovery (not expansion) is
// the dedup guard on each side, so every vertex enters a given frontier
// at most once and parents are assigned at discovery time.
type biWalker struct {
	snap             *core.Snapshot
	rec              *trace.Recorder
	fq, bq           *frontier.Queue
	fseen, bseen     map[string]bool
	fparent, bparent map[string]string
	order            []string
}

// halfStep expands one vertex on the chosen side. Reports true when the
// sides met and the terminal step was recorded.
func (b *biWalker) halfStep(forward bool) bool {
	q, seen, parent, other := b.bq, b.bseen, b.bparent, b.fseen
	if forward {
		q, seen, parent, other = b.fq, b.fseen, b.fparent, b.bseen
	}

	e, ok := q.Pop()
	if !ok {
		return false
	}
	b.order = append(b.order, e.ID)

	if other[e.ID] {
		b.meet(e)

		return true
	}

	// Forward expands outgoing arcs; backward walks arcs in reverse.
	arcs := b.snap.Out(e.ID)
	if !forward {
		arcs = b.snap.In(e.ID)
	}

	pushed := 0
	for _, arc := range arcs {
		if seen[arc.To] {
			continue
		}
		seen[arc.To] = true
		parent[arc.To] = e.ID
		q.Push(frontier.Entry{
			ID:       arc.To,
			Cost:     e.Cost + arc.Weight,
			Estimate: b.snap.Heuristic(arc.To),
			Parent:   e.ID,
			Depth:    e.Depth + 1,
		})
		pushed++
	}

	act := trace.ActionExpand
	switch {
	case pushed > 0:
	case len(arcs) == 0:
		act = trace.ActionDeadEnd
	default:
		act = trace.ActionBacktrack
	}
	b.rec.Record(trace.Step{
		Node:     e.ID,
		Action:   act,
		Fringe:   b.fringe(),
		Visited:  b.visitedSnapshot(),
		Path:     b.partial(e.ID, forward),
		Cost:     e.Cost,
		Estimate: e.Estimate,
		Depth:    e.Depth,
		Limit:    trace.NoLimit,
	})

	return false
}

// meet records the terminal Goal-Found step at the meeting vertex. The
// joined path is the forward chain source→m plus the backward chain
// m→goal; its cost is recomputed from snapshot weights, since neither
// side knows the other's half.
func (b *biWalker) meet(e frontier.Entry) {
	m := e.ID
	path := b.chainToSource(m)
	for cur := b.bparent[m]; cur != ""; cur = b.bparent[cur] {
		path = append(path, cur)
	}

	var cost float64
	for i := 0; i+1 < len(path); i++ {
		if w, ok := b.snap.Weight(path[i], path[i+1]); ok {
			cost += w
		}
	}

	b.rec.Record(trace.Step{
		Node:     m,
		Action:   trace.ActionGoalFound,
		Fringe:   b.fringe(),
		Visited:  b.visitedSnapshot(),
		Path:     path,
		Cost:     cost,
		Estimate: e.Estimate,
		Depth:    e.Depth,
		Limit:    trace.NoLimit,
	})
}

// chainToSource walks fparent from id back to the source, returning the
// path in source→id order.
func (b *biWalker) chainToSource(id string) []string {
	var rev []string
	for cur := id; cur != ""; cur = b.fparent[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// partial is the display path of a non-terminal step: source→id for
// forward pops, id→goal for backward pops.
func (b *biWalker) partial(id string, forward bool) []string {
	if forward {
		return b.chainToSource(id)
	}
	var path []string
	for cur := id; cur != ""; cur = b.bparent[cur] {
		path = append(path, cur)
	}

	return path
}

// fringe concatenates both frontiers, forward first.
func (b *biWalker) fringe() []frontier.Entry {
	return append(b.fq.Snapshot(), b.bq.Snapshot()...)
}

// visitedSnapshot copies the combined expansion order.
func (b *biWalker) visitedSnapshot() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)

	return out
}
