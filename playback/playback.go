package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/searchtrace/trace"
)

// Sentinel errors for controller construction and movement.
var (
	// ErrNilTrace is returned when a Controller is handed a nil trace.
	ErrNilTrace = errors.New("playback: trace is nil")

	// ErrEmptyTrace is returned for a trace holding no steps; a cursor
	// needs at least one position.
	ErrEmptyTrace = errors.New("playback: trace is empty")

	// ErrSeekOutOfRange is returned by Seek for an index outside [0, Len).
	ErrSeekOutOfRange = errors.New("playback: seek index out of range")

	// ErrBadSpeed is returned for a speed outside [MinSpeed, MaxSpeed].
	ErrBadSpeed = errors.New("playback: speed out of range")
)

// Speed scale bounds: 1 is slowest, 10 is fastest.
const (
	MinSpeed     = 1
	MaxSpeed     = 10
	DefaultSpeed = 5

	// intervalUnit is the base tick; speed s yields (11-s) units, so the
	// scale spans 1s down to 100ms per step.
	intervalUnit = 100 * time.Millisecond
)

// Option configures a Controller at construction.
type Option func(*Controller) error

// WithSpeed sets the initial playback speed on the 1..10 scale.
func WithSpeed(s int) Option {
	return func(c *Controller) error { return c.SetSpeed(s) }
}

// Controller is a cursor over an immutable trace. Stepping never
// re-triggers any computation; the trace is complete data and moving
// the cursor is plain indexing. Not safe for concurrent use.
type Controller struct {
	tr    *trace.Trace
	pos   int
	speed int
}

// NewController builds a cursor positioned at step 0.
func NewController(tr *trace.Trace, opts ...Option) (*Controller, error) {
	c := &Controller{speed: DefaultSpeed}
	if err := c.Swap(tr); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Swap replaces the owned trace and rewinds the cursor. The previous
// trace is untouched; callers comparing TraceID before and after can
// tell a stale view from a fresh one.
func (c *Controller) Swap(tr *trace.Trace) error {
	if tr == nil {
		return ErrNilTrace
	}
	if tr.Len() == 0 {
		return ErrEmptyTrace
	}
	c.tr = tr
	c.pos = 0

	return nil
}

// TraceID reports the run ID of the owned trace.
func (c *Controller) TraceID() uuid.UUID { return c.tr.ID() }

// Len reports the number of steps in the owned trace.
func (c *Controller) Len() int { return c.tr.Len() }

// Pos reports the current cursor index.
func (c *Controller) Pos() int { return c.pos }

// Current returns the step under the cursor.
func (c *Controller) Current() trace.Step {
	s, _ := c.tr.At(c.pos) // pos is always in range

	return s
}

// Next advances one step. Reports false (without moving) at the end.
func (c *Controller) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.pos++

	return true
}

// Prev moves one step back. Reports false (without moving) at step 0.
func (c *Controller) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--

	return true
}

// Seek jumps the cursor to step i.
func (c *Controller) Seek(i int) error {
	if i < 0 || i >= c.tr.Len() {
		return fmt.Errorf("%w: %d of %d", ErrSeekOutOfRange, i, c.tr.Len())
	}
	c.pos = i

	return nil
}

// Rewind resets the cursor to the first step.
func (c *Controller) Rewind() { c.pos = 0 }

// AtEnd reports whether the cursor sits on the last step.
func (c *Controller) AtEnd() bool { return c.pos == c.tr.Len()-1 }

// SetSpeed adjusts the playback speed on the 1..10 scale.
func (c *Controller) SetSpeed(s int) error {
	if s < MinSpeed || s > MaxSpeed {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrBadSpeed, s, MinSpeed, MaxSpeed)
	}
	c.speed = s

	return nil
}

// Speed reports the current speed.
func (c *Controller) Speed() int { return c.speed }

// Interval converts the speed into the delay an animating caller should
// wait between steps: speed 1 → 1s, speed 10 → 100ms.
func (c *Controller) Interval() time.Duration {
	return time.Duration(MaxSpeed+1-c.speed) * intervalUnit
}
