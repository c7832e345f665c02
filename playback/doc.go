// Package playback provides a pure cursor over a finished trace: the
// replay side of the record-then-replay split. A Controller owns no
// goroutines and no timers — it only answers "which step is current"
// and "how long should an animating caller wait", leaving the ticker
// to the UI that drives it.
//
// What:
//
//   - Controller: a position cursor over an immutable trace.Trace.
//     Supports:
//   - Next / Prev single-step moves
//   - Seek to an arbitrary step index
//   - Rewind to the first step
//   - Speed on the 1..10 scale, mapped to a per-step Interval
//   - Swap: replace the owned trace (cursor rewinds, run ID changes)
//
// Why:
//   - Replaying a search never re-runs the algorithm: the trace is
//     complete data, so stepping is array indexing
//   - Scrubbing backwards is as cheap as forwards
//   - Animation pacing stays the caller's concern; the Controller only
//     converts speed into a delay
//
// Key Types & Constants:
//
//   - Controller: the cursor; construct with NewController
//   - Option: functional options (WithSpeed)
//   - MinSpeed=1, MaxSpeed=10, DefaultSpeed=5
//
// Complexity:
//
//   - Every operation: Time O(1), Memory O(1)
//
// Errors:
//
//   - ErrNilTrace        controller handed a nil trace
//   - ErrEmptyTrace      trace holds no steps
//   - ErrSeekOutOfRange  seek index outside [0, Len)
//   - ErrBadSpeed        speed outside [MinSpeed, MaxSpeed]
package playback
