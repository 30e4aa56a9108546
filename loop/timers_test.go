package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimersFireOnInterval(t *testing.T) {
	timers := NewTimers()
	count := 0
	timers.Every(200*time.Millisecond, func() { count++ })

	timers.Advance(150 * time.Millisecond)
	assert.Equal(t, 0, count)

	timers.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, count)

	timers.Advance(400 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestTimersFireInCreationOrder(t *testing.T) {
	timers := NewTimers()
	var order []string
	timers.Every(500*time.Millisecond, func() { order = append(order, "gravity") })
	timers.Every(200*time.Millisecond, func() { order = append(order, "repeat") })

	timers.Advance(500 * time.Millisecond)

	assert.Equal(t, []string{"gravity", "repeat", "repeat"}, order)
}

func TestTimersCancelIsIdempotent(t *testing.T) {
	timers := NewTimers()
	count := 0
	id := timers.Every(10*time.Millisecond, func() { count++ })
	require.True(t, timers.Active(id))

	assert.True(t, timers.Cancel(id))
	assert.False(t, timers.Cancel(id))
	assert.False(t, timers.Cancel(0))
	assert.False(t, timers.Active(id))

	timers.Advance(time.Second)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, timers.Len())
}

func TestTimersCancelFromCallback(t *testing.T) {
	timers := NewTimers()
	count := 0
	var id TimerID
	id = timers.Every(10*time.Millisecond, func() {
		count++
		timers.Cancel(id)
	})

	timers.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, count)
	assert.False(t, timers.Active(id))
}

func TestTimersCancelOtherFromCallback(t *testing.T) {
	timers := NewTimers()
	var second TimerID
	secondFired := false
	timers.Every(10*time.Millisecond, func() { timers.Cancel(second) })
	second = timers.Every(10*time.Millisecond, func() { secondFired = true })

	timers.Advance(10 * time.Millisecond)
	assert.False(t, secondFired)
}

func TestTimersResetFromCallback(t *testing.T) {
	timers := NewTimers()
	count := 0
	timers.Every(10*time.Millisecond, func() {
		count++
		timers.Reset()
	})
	timers.Every(10*time.Millisecond, func() { count++ })

	assert.NotPanics(t, func() {
		timers.Advance(10 * time.Millisecond)
	})
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, timers.Len())
}

func TestTimersStartedDuringAdvanceWait(t *testing.T) {
	timers := NewTimers()
	inner := 0
	timers.Every(10*time.Millisecond, func() {
		if timers.Len() == 1 {
			timers.Every(10*time.Millisecond, func() { inner++ })
		}
	})

	timers.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, inner)

	timers.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, inner)
}

func TestTimersCatchUpIsBounded(t *testing.T) {
	timers := NewTimers()
	timers.SetMaxCatchUp(2)
	count := 0
	timers.Every(10*time.Millisecond, func() { count++ })

	timers.Advance(time.Second)
	assert.Equal(t, 2, count)

	// The backlog is dropped rather than replayed later.
	timers.Advance(5 * time.Millisecond)
	assert.Equal(t, 2, count)
}

func TestTimersExecuteUsesFrameDelta(t *testing.T) {
	timers := NewTimers()
	count := 0
	timers.Every(500*time.Millisecond, func() { count++ })

	s := NewScheduler()
	s.Register(timers)
	s.Once(0.25)
	s.Once(0.25)

	assert.Equal(t, 1, count)
}

func TestTimersRejectBadArguments(t *testing.T) {
	timers := NewTimers()
	assert.Panics(t, func() { timers.Every(0, func() {}) })
	assert.Panics(t, func() { timers.Every(time.Second, nil) })
}
