package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/frontier"
	"github.com/katalvlaran/searchtrace/trace"
)

// BFS runs breadth-first search over snap, expanding level by level
// through a FIFO frontier. The first pop of the goal terminates the
// run, which makes the returned path minimal in edge count on
// unweighted graphs.
//
// Discovery doubles as the frontier guard: a vertex already visited or
// already pending is never enqueued again, so each vertex enters the
// frontier at most once.
//
// Complexity: O(V + E) pops and pushes.
func BFS(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(snap, false); err != nil {
		return nil, err
	}

	w := newWalker(snap, trace.NewRecorder(), trace.NoLimit)
	q := frontier.NewQueue()
	q.Push(sourceEntry(snap))

	for {
		e, ok := q.Pop()
		if !ok {
			break
		}
		if w.seen(e.ID) {
			continue
		}
		w.visit(e.ID)

		if e.ID == w.goal {
			w.record(e, trace.ActionGoalFound, q.Snapshot())

			return w.rec.Finalize(), nil
		}

		pushed := 0
		for _, arc := range snap.Out(e.ID) {
			if w.seen(arc.To) || q.Contains(arc.To) {
				continue
			}
			w.parent[arc.To] = e.ID
			q.Push(childEntry(snap, e, arc))
			pushed++
		}
		w.record(e, w.classify(e, pushed, false), q.Snapshot())
	}

	// Frontier drained: the goal is unreachable from the source.
	w.exhaust(nil)

	return w.rec.Finalize(), nil
}
