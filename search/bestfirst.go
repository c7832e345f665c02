package search

import (
	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/frontier"
	"github.com/katalvlaran/searchtrace/trace"
)

// UCS runs uniform cost search: a priority frontier keyed by the
// accumulated path cost g(n). A pending vertex rediscovered via a
// strictly cheaper path is re-keyed (lazy decrease-key), and the run
// terminates only when the goal is popped — not merely discovered —
// which guarantees the optimal cost for non-negative weights.
func UCS(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	return runBestFirst(snap, opts,
		func(e frontier.Entry) float64 { return e.Cost },
		true, true)
}

// Greedy runs greedy best-first search: a priority frontier keyed by
// the heuristic estimate h(n) alone, ignoring accumulated cost. Not
// optimal; the visited-set guard is what keeps it finite on cyclic
// graphs. A vertex already pending is never re-keyed — the first
// discovery wins, as the heuristic of a vertex never changes.
func Greedy(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	return runBestFirst(snap, opts,
		func(e frontier.Entry) float64 { return e.Estimate },
		false, false)
}

// AStar runs A* search: a priority frontier keyed by g(n)+h(n), with
// the same cheaper-rediscovery re-keying as UCS. The cost is optimal
// when the heuristic never overestimates the true remaining cost; that
// admissibility is a caller precondition the engine does not validate.
func AStar(snap *core.Snapshot, opts ...Option) (*trace.Trace, error) {
	return runBestFirst(snap, opts,
		func(e frontier.Entry) float64 { return e.Cost + e.Estimate },
		true, true)
}

// runBestFirst drives the shared priority-frontier loop.
//
// reopen enables decrease-key semantics: a neighbor already discovered
// is pushed again only when the new path cost strictly improves on its
// best known cost (UCS, A*). Without reopen, pending vertices are
// skipped entirely (Greedy). needCost triggers the up-front
// negative-weight scan.
func runBestFirst(snap *core.Snapshot, opts []Option, key frontier.KeyFunc, reopen, needCost bool) (*trace.Trace, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if err := validate(snap, needCost); err != nil {
		return nil, err
	}

	w := newWalker(snap, trace.NewRecorder(), trace.NoLimit)
	pq := frontier.NewHeap(key)
	pq.Push(sourceEntry(snap))
	bestCost := map[string]float64{snap.Source(): 0}

	for {
		e, ok := pq.Pop()
		if !ok {
			break
		}
		if w.seen(e.ID) {
			continue
		}
		w.visit(e.ID)

		if e.ID == w.goal {
			w.record(e, trace.ActionGoalFound, pq.Snapshot())

			return w.rec.Finalize(), nil
		}

		pushed := 0
		for _, arc := range snap.Out(e.ID) {
			if w.seen(arc.To) {
				continue
			}
			cost := e.Cost + arc.Weight
			if reopen {
				if old, known := bestCost[arc.To]; known && cost >= old {
					continue
				}
				bestCost[arc.To] = cost
			} else if pq.Contains(arc.To) {
				continue
			}
			w.parent[arc.To] = e.ID
			pq.Push(childEntry(snap, e, arc))
			pushed++
		}
		w.record(e, w.classify(e, pushed, false), pq.Snapshot())
	}

	w.exhaust(nil)

	return w.rec.Finalize(), nil
}
