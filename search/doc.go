// Package search implements the eight search strategies of the engine,
// each a pure function from (Snapshot, options) to a replayable
// trace.Trace.
//
// # What
//
//   - BFS            — FIFO frontier, level by level; optimal edge count
//     on unweighted graphs.
//   - DFS            — LIFO frontier, deepest first; no optimality.
//   - DLS            — DFS refusing to expand beyond WithDepthLimit
//     (default 5); limit hits become Dead-End steps.
//   - IDS            — DLS at limits 0,1,2,… up to WithMaxDepth (default
//     10); each iteration starts with a Limit-Raised step and a fresh
//     visited set.
//   - UCS            — priority frontier keyed by g(n); cheaper
//     rediscovery re-keys the pending entry (lazy decrease-key);
//     terminates when the goal is popped, which makes the cost optimal
//     for non-negative weights.
//   - Bidirectional  — two FIFO frontiers expanded alternately, forward
//     first; stops the instant the frontiers' discovery sets intersect.
//   - Greedy         — priority frontier keyed by h(n) alone; fast, not
//     optimal.
//   - A*             — priority frontier keyed by g(n)+h(n); optimal
//     when the heuristic is admissible (a caller precondition — the
//     engine does not validate admissibility).
//
// Every algorithm shares the contract
//
//	run(snap, opts...) -> (*trace.Trace, error)
//
// and Run(algo, snap, opts...) dispatches over the closed Algorithm
// enum, so selecting a strategy is exhaustive at compile time.
//
// # Trace granularity
//
//	Exactly one Step per frontier pop: Expand when new entries were
//	pushed, Dead-End when nothing was pushed because the vertex has no
//	arcs or sits at the depth limit, Backtrack when every neighbor was
//	already seen, Goal-Found or Exhausted to terminate. Pops of
//	already-expanded vertices (stale LIFO/priority duplicates) emit no
//	Step. Vertices are marked visited on expansion, not on discovery,
//	which is what keeps cyclic graphs from looping.
//
// # Determinism
//
//	Neighbors expand in the snapshot's canvas order (X, then Y, then
//	ID); heap ties resolve by insertion order; the bidirectional
//	tie-break is "forward frontier wins" — the forward half-step of each
//	round runs and checks for a meeting first. Running any algorithm
//	twice on an unchanged snapshot yields step-identical traces.
//
// # Errors
//
//	ErrNilSnapshot      - nil snapshot.
//	ErrNoSource         - snapshot has no source vertex.
//	ErrNoGoal           - snapshot has no goal vertex.
//	ErrNegativeWeight   - negative weight fed to UCS or A*.
//	ErrOptionViolation  - invalid option value (negative limits).
//	ErrUnknownAlgorithm - Run called with an unmapped selector.
//
//	Exhaustion is NOT an error: a run that empties its frontier returns
//	a valid trace whose terminal step is ActionExhausted.
package search
