// Package trace turns a search run into a replayable sequence of Steps.
//
// # What
//
//   - Step: one discrete algorithm state — the vertex just popped, the
//     action taken, snapshots of the fringe and the visited set, and the
//     partial path from the source to that vertex.
//   - Recorder: the passive, append-only sink every algorithm writes
//     through. It holds no algorithm logic; uniform recording is what
//     gives every algorithm's trace the same shape for playback.
//   - Trace: the finished, read-only sequence. Indexable, immutable,
//     identified by a run ID so downstream owners can detect stale
//     traces after a new "Start Search".
//   - Summary: the statistics view derived from the terminal Step —
//     path, total cost, nodes expanded, found flag.
//
// # Granularity
//
//	One Step per frontier extraction (Expand, Backtrack, DeadEnd, or
//	GoalFound), plus one LimitRaised Step per IDS depth increase and a
//	single terminal Exhausted Step when no goal was reached. A trace
//	always ends in GoalFound or Exhausted.
//
// # Lifecycle
//
//	Built once per run, finalized when the algorithm returns, then only
//	read by index. Replaying a trace never recomputes anything.
package trace
