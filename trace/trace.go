// This file declares Action, Step, Recorder, Trace, and Summary.
package trace

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/searchtrace/frontier"
)

// ErrStepOutOfRange is returned by Trace.At for an invalid index.
var ErrStepOutOfRange = errors.New("trace: step index out of range")

// Action classifies what happened at one frontier extraction.
type Action int

const (
	// ActionExpand: the vertex was expanded and pushed at least one new
	// frontier entry.
	ActionExpand Action = iota

	// ActionGoalFound: the popped vertex is the goal. Terminal.
	ActionGoalFound

	// ActionDeadEnd: nothing was pushed because the vertex has no
	// outgoing arcs, or sits at the depth limit.
	ActionDeadEnd

	// ActionBacktrack: nothing was pushed because every neighbor was
	// already seen; the search falls back to the frontier.
	ActionBacktrack

	// ActionLimitRaised: an IDS iteration boundary — the depth limit
	// increased and the visited set was reset.
	ActionLimitRaised

	// ActionExhausted: the frontier emptied (or the iteration bound was
	// hit) without reaching the goal. Terminal; not an error.
	ActionExhausted
)

// String returns the display name of the action.
func (a Action) String() string {
	switch a {
	case ActionExpand:
		return "Expand"
	case ActionGoalFound:
		return "Goal-Found"
	case ActionDeadEnd:
		return "Dead-End"
	case ActionBacktrack:
		return "Backtrack"
	case ActionLimitRaised:
		return "Limit-Raised"
	case ActionExhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Terminal reports whether the action ends a trace.
func (a Action) Terminal() bool {
	return a == ActionGoalFound || a == ActionExhausted
}

// Step is one element of a Trace. Steps are immutable once recorded.
type Step struct {
	// Index is the 0-based position of this step in its trace.
	Index int

	// Node is the vertex popped from the frontier ("" on the terminal
	// Exhausted marker).
	Node string

	// Action classifies this step.
	Action Action

	// Fringe is the frontier contents right after this step, in pop
	// order.
	Fringe []frontier.Entry

	// Visited lists expanded vertices in expansion order, up to and
	// including this step.
	Visited []string

	// Path is the partial path from the source to Node (for backward
	// bidirectional pops: from Node to the goal).
	Path []string

	// Cost is g(Node), the accumulated path cost.
	Cost float64

	// Estimate is h(Node) at the time of the pop.
	Estimate float64

	// Depth is the edge count from the source along the discovery path.
	Depth int

	// Limit is the depth limit in force (DLS/IDS), or NoLimit.
	Limit int
}

// NoLimit marks steps recorded by algorithms without a depth limit.
const NoLimit = -1

// Recorder accumulates Steps during a single algorithm run. It is a
// passive sink: algorithms decide what to record, the recorder only
// appends and hands out the finished Trace.
type Recorder struct {
	id    uuid.UUID
	steps []Step
	done  bool
}

// NewRecorder starts an empty recorder with a fresh run ID.
func NewRecorder() *Recorder {
	return &Recorder{id: uuid.New()}
}

// ID returns the run ID the finished trace will carry.
func (r *Recorder) ID() uuid.UUID { return r.id }

// Len reports how many steps were recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Record appends s, stamping its Index. Recording after Finalize
// panics: a trace is built once per run and never mutated afterwards.
func (r *Recorder) Record(s Step) {
	if r.done {
		panic("trace: Record after Finalize")
	}
	s.Index = len(r.steps)
	r.steps = append(r.steps, s)
}

// Finalize seals the recorder and returns the immutable Trace.
func (r *Recorder) Finalize() *Trace {
	r.done = true

	return &Trace{id: r.id, steps: r.steps}
}

// Trace is the ordered, read-only step sequence of one search run.
type Trace struct {
	id    uuid.UUID
	steps []Step
}

// ID returns the run ID assigned when recording started.
func (t *Trace) ID() uuid.UUID { return t.id }

// Len returns the number of steps.
func (t *Trace) Len() int { return len(t.steps) }

// At returns the step at index i.
func (t *Trace) At(i int) (Step, error) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, fmt.Errorf("%w: %d of %d", ErrStepOutOfRange, i, len(t.steps))
	}

	return t.steps[i], nil
}

// Terminal returns the final step. ok is false on an empty trace.
func (t *Trace) Terminal() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}

	return t.steps[len(t.steps)-1], true
}

// Found reports whether the run ended in Goal-Found.
func (t *Trace) Found() bool {
	last, ok := t.Terminal()

	return ok && last.Action == ActionGoalFound
}

// Summary is the statistics view of a finished trace.
type Summary struct {
	// RunID identifies the run the statistics were derived from.
	RunID uuid.UUID

	// Found reports whether the goal was reached.
	Found bool

	// Path is the full source→goal path (nil when not found).
	Path []string

	// Cost is the total path cost (0 when not found).
	Cost float64

	// Expanded counts frontier extractions (Expand, Backtrack, DeadEnd,
	// GoalFound steps).
	Expanded int

	// Steps is the total trace length, markers included.
	Steps int
}

// Summary derives run statistics from the terminal step.
func (t *Trace) Summary() Summary {
	sum := Summary{RunID: t.id, Steps: len(t.steps)}
	for _, s := range t.steps {
		switch s.Action {
		case ActionExpand, ActionGoalFound, ActionDeadEnd, ActionBacktrack:
			sum.Expanded++
		}
	}
	if last, ok := t.Terminal(); ok && last.Action == ActionGoalFound {
		sum.Found = true
		sum.Path = last.Path
		sum.Cost = last.Cost
	}

	return sum
}
