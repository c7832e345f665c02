package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/frontier"
	"github.com/katalvlaran/searchtrace/trace"
)

// DFS runs depth-first search over snap through a LIFO frontier. It
// offers no optimality guarantee; vertices are marked visited on
// expansion (not on discovery), which is what terminates cycles.
//
// Complexity: O(V + E) amortized; the stack may hold a vertex several
// times, stale copies are skipped on pop.
func DFS(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(snap, false); err != nil {
		return nil, err
	}

	w := newWalker(snap, trace.NewRecorder(), trace.NoLimit)
	if runDepthBounded(w) {
		return w.rec.Finalize(), nil
	}
	w.exhaust(nil)

	return w.rec.Finalize(), nil
}

// DLS runs depth-limited search: DFS that refuses to expand beyond
// WithDepthLimit (default 5). A vertex sitting at the limit that is not
// the goal becomes a Dead-End step. An Exhausted terminal means "none
// found within the limit", not "no path exists".
func DLS(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(snap, false); err != nil {
		return nil, err
	}

	w := newWalker(snap, trace.NewRecorder(), o.DepthLimit)
	if runDepthBounded(w) {
		return w.rec.Finalize(), nil
	}
	w.exhaust(nil)

	return w.rec.Finalize(), nil
}

// runDepthBounded drives one stack-based descent from the source,
// honoring w.limit (trace.NoLimit disables the bound). Reports whether
// the goal was reached; the terminal Goal-Found step is recorded here.
//
// Neighbors are pushed in reverse canvas order so that the leftmost
// neighbor pops first, keeping LIFO expansion visually left-to-right.
func runDepthBounded(w *walker) bool {
	st := frontier.NewStack()
	st.Push(sourceEntry(w.snap))

	for {
		e, ok := st.Pop()
		if !ok {
			return false
		}
		if w.seen(e.ID) {
			continue
		}
		w.visit(e.ID)

		if e.ID == w.goal {
			w.record(e, trace.ActionGoalFound, st.Snapshot())

			return true
		}

		atLimit := w.limit != trace.NoLimit && e.Depth >= w.limit
		pushed := 0
		if !atLimit {
			arcs := w.snap.Out(e.ID)
			for i := len(arcs) - 1; i >= 0; i-- {
				if w.seen(arcs[i].To) {
					continue
				}
				w.parent[arcs[i].To] = e.ID
				st.Push(childEntry(w.snap, e, arcs[i]))
				pushed++
			}
		}
		w.record(e, w.classify(e, pushed, atLimit), st.Snapshot())
	}
}
