package playback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/playback"
	"github.com/katalvlaran/searchtrace/trace"
)

// fakeTrace finalizes a recorder holding n trivial steps.
func fakeTrace(t *testing.T, n int) *trace.Trace {
	t.Helper()
	rec := trace.NewRecorder()
	for i := 0; i < n; i++ {
		rec.Record(trace.Step{Node: "v", Action: trace.ActionExpand})
	}

	return rec.Finalize()
}

func TestNewController_Validation(t *testing.T) {
	_, err := playback.NewController(nil)
	assert.ErrorIs(t, err, playback.ErrNilTrace)

	_, err = playback.NewController(trace.NewRecorder().Finalize())
	assert.ErrorIs(t, err, playback.ErrEmptyTrace)

	_, err = playback.NewController(fakeTrace(t, 1), playback.WithSpeed(0))
	assert.ErrorIs(t, err, playback.ErrBadSpeed)
}

func TestController_StepMoves(t *testing.T) {
	c, err := playback.NewController(fakeTrace(t, 3))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Current().Index)
	assert.False(t, c.Prev(), "cannot move before step 0")

	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.Equal(t, 2, c.Current().Index)
	assert.True(t, c.AtEnd())
	assert.False(t, c.Next(), "cannot move past the last step")
	assert.Equal(t, 2, c.Pos(), "failed Next must not move the cursor")

	assert.True(t, c.Prev())
	assert.Equal(t, 1, c.Pos())
}

func TestController_SeekAndRewind(t *testing.T) {
	c, err := playback.NewController(fakeTrace(t, 5))
	require.NoError(t, err)

	require.NoError(t, c.Seek(4))
	assert.True(t, c.AtEnd())

	assert.ErrorIs(t, c.Seek(5), playback.ErrSeekOutOfRange)
	assert.ErrorIs(t, c.Seek(-1), playback.ErrSeekOutOfRange)
	assert.Equal(t, 4, c.Pos(), "failed Seek must not move the cursor")

	c.Rewind()
	assert.Equal(t, 0, c.Pos())
}

func TestController_SpeedScale(t *testing.T) {
	c, err := playback.NewController(fakeTrace(t, 1))
	require.NoError(t, err)

	assert.Equal(t, playback.DefaultSpeed, c.Speed())
	assert.Equal(t, 600*time.Millisecond, c.Interval())

	require.NoError(t, c.SetSpeed(1))
	assert.Equal(t, time.Second, c.Interval(), "slowest")
	require.NoError(t, c.SetSpeed(10))
	assert.Equal(t, 100*time.Millisecond, c.Interval(), "fastest")

	assert.ErrorIs(t, c.SetSpeed(11), playback.ErrBadSpeed)
	assert.Equal(t, 10, c.Speed(), "failed SetSpeed must not change the speed")
}

func TestController_Swap(t *testing.T) {
	old := fakeTrace(t, 2)
	c, err := playback.NewController(old)
	require.NoError(t, err)
	require.True(t, c.Next())

	fresh := fakeTrace(t, 4)
	require.NoError(t, c.Swap(fresh))
	assert.Equal(t, 0, c.Pos(), "swap rewinds")
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, fresh.ID(), c.TraceID())
	assert.NotEqual(t, old.ID(), c.TraceID())

	// A rejected swap keeps the current trace.
	assert.ErrorIs(t, c.Swap(nil), playback.ErrNilTrace)
	assert.Equal(t, fresh.ID(), c.TraceID())
}

func TestController_SingleStepTrace(t *testing.T) {
	c, err := playback.NewController(fakeTrace(t, 1))
	require.NoError(t, err)

	assert.True(t, c.AtEnd(), "one step: start is also the end")
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
}
