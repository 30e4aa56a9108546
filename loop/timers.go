package loop

import (
	"time"

	"github.com/kamstrup/intmap"
)

// TimerID is the handle of a repeating action. The zero value never names a timer.
type TimerID uint32

// DefaultMaxCatchUp bounds how many times one timer may fire in a single Advance.
const DefaultMaxCatchUp = 4

type timer struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
}

// Timers owns a set of repeating actions advanced by frame time instead of
// wall-clock goroutines, so callbacks always run on the scheduler's goroutine.
// Timers is itself a System.
type Timers struct {
	nextID     TimerID
	active     *intmap.Map[TimerID, *timer]
	order      []TimerID
	maxCatchUp int
}

// NewTimers creates an empty timer set.
func NewTimers() *Timers {
	return &Timers{
		nextID:     1,
		active:     intmap.New[TimerID, *timer](8),
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// SetMaxCatchUp changes the per-Advance firing bound. Values below one are ignored.
func (t *Timers) SetMaxCatchUp(n int) {
	if n > 0 {
		t.maxCatchUp = n
	}
}

// Every starts calling fn each time interval elapses and returns its handle.
func (t *Timers) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		panic("timer interval must be positive")
	}
	if fn == nil {
		panic("timer callback must not be nil")
	}

	id := t.nextID
	t.nextID++
	if t.nextID == 0 {
		t.nextID = 1
	}

	t.active.Put(id, &timer{interval: interval, fn: fn})
	t.order = append(t.order, id)
	return id
}

// Cancel stops the timer. It is safe to call more than once, with the zero
// TimerID, or from inside the timer's own callback. It reports whether a
// running timer was stopped.
func (t *Timers) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	if _, ok := t.active.Get(id); !ok {
		return false
	}
	t.active.Del(id)
	return true
}

// Active reports whether id names a running timer.
func (t *Timers) Active(id TimerID) bool {
	if id == 0 {
		return false
	}
	_, ok := t.active.Get(id)
	return ok
}

// Len returns the number of running timers.
func (t *Timers) Len() int {
	return t.active.Len()
}

// Reset cancels every timer.
func (t *Timers) Reset() {
	t.active.Clear()
	t.order = t.order[:0]
}

// Advance moves every running timer forward by d and fires the due callbacks in
// creation order. Timers started during Advance begin counting on the next call.
func (t *Timers) Advance(d time.Duration) {
	if d <= 0 {
		return
	}

	t.compact()
	pending := len(t.order)

	for i := 0; i < pending && i < len(t.order); i++ {
		id := t.order[i]
		tm, ok := t.active.Get(id)
		if !ok {
			continue
		}

		tm.elapsed += d
		fired := 0
		for tm.elapsed >= tm.interval {
			if fired == t.maxCatchUp {
				tm.elapsed %= tm.interval
				break
			}
			tm.elapsed -= tm.interval
			fired++
			tm.fn()

			if _, ok := t.active.Get(id); !ok {
				break
			}
		}
	}
}

// Execute advances the timers by the frame delta.
func (t *Timers) Execute(frame *Frame) {
	t.Advance(time.Duration(frame.DeltaTime * float64(time.Second)))
}

// compact drops cancelled ids from the firing order.
func (t *Timers) compact() {
	kept := t.order[:0]
	for _, id := range t.order {
		if _, ok := t.active.Get(id); ok {
			kept = append(kept, id)
		}
	}
	t.order = kept
}
