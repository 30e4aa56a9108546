package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetoris/loop"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    float64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
}

type namedSystem struct{}

func (namedSystem) Execute(*loop.Frame) {}
func (namedSystem) Name() string        { return "Gravity" }

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(loop.SystemFunc(func(*loop.Frame) { order = append(order, "input") }))
		scheduler.Register(loop.SystemFunc(func(*loop.Frame) { order = append(order, "commands") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		want := []string{"input", "commands", "input", "commands"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("expected %v, got %v", want, order)
				break
			}
		}
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected 2 executions, got %d", counter.ExecuteCount)
		}
		if counter.TotalTime != 0.75 {
			t.Errorf("expected TotalTime=0.75, got %f", counter.TotalTime)
		}
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
		}))
		scheduler.Register(loop.SystemFunc(func(*loop.Frame) { order = append(order, "second") }))

		scheduler.Once(0)

		if len(order) != 2 || order[0] != "second" || order[1] != "deferred" {
			t.Errorf("unexpected order %v", order)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected the system to run at least once")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(namedSystem{})

	stats := scheduler.Stats()
	if stats.SystemCount != 2 {
		t.Fatalf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any run, got %v", stats.Systems[0].MinDuration)
	}

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.Stats()
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions, got %d", stats.TotalExecutions)
	}
	if stats.Systems[0].Name != "countingSystem" {
		t.Errorf("expected reflected name countingSystem, got %q", stats.Systems[0].Name)
	}
	if stats.Systems[1].Name != "Gravity" {
		t.Errorf("expected Name() to win, got %q", stats.Systems[1].Name)
	}
	for _, sys := range stats.Systems {
		if sys.ExecutionCount != 3 {
			t.Errorf("%s: expected 3 executions, got %d", sys.Name, sys.ExecutionCount)
		}
		if sys.MinDuration > sys.MaxDuration {
			t.Errorf("%s: min %v greater than max %v", sys.Name, sys.MinDuration, sys.MaxDuration)
		}
	}
}
