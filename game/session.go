// Package game runs an engine as an interactive session: it owns the gravity and
// pointer-repeat timers, funnels every trigger through a single command queue and
// decodes pointer presses into moves and rotations.
package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/engine"
	"github.com/plus3/tetoris/loop"
)

// Update is published to observers after every applied command.
type Update struct {
	Command  Command
	Result   engine.TickResult
	Snapshot engine.Snapshot
}

// Observer receives session updates on the scheduler goroutine.
type Observer interface {
	Observe(u Update)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(u Update)

func (f ObserverFunc) Observe(u Update) {
	f(u)
}

// Session is a single-player game driven by timers and pointer input.
// It is not safe for concurrent use; every method must be called from the
// goroutine that runs its scheduler.
type Session struct {
	cfg    Config
	engine *engine.Engine
	timers *loop.Timers
	queue  Queue

	gravity loop.TimerID
	repeat  loop.TimerID
	clicks  int

	id        uuid.UUID
	logger    *zap.Logger
	observers []Observer
}

// NewSession validates cfg, starts a game and arms the gravity timer.
// Extra engine options are applied after the ones derived from cfg.
func NewSession(cfg Config, logger *zap.Logger, opts ...engine.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		cfg:    cfg,
		engine: engine.New(append(cfg.engineOptions(), opts...)...),
		timers: loop.NewTimers(),
		id:     uuid.New(),
		logger: logger,
	}
	s.armGravity()

	s.logger.Info("game started",
		zap.Stringer("session", s.id),
		zap.Duration("tick", cfg.TickInterval),
		zap.Duration("repeat", cfg.RepeatInterval))
	return s, nil
}

// Register adds the session's timers and its command processor to sched, in
// that order, so timer-produced commands are applied in the same frame.
func (s *Session) Register(sched *loop.Scheduler) {
	sched.Register(s.timers)
	sched.Register(s)
}

// Name identifies the command processor in scheduler stats.
func (s *Session) Name() string {
	return "Session"
}

// Subscribe adds an observer for updates.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Enqueue schedules cmd to be applied on the next Execute.
func (s *Session) Enqueue(cmd Command) {
	s.queue.Push(cmd)
}

// Execute applies the queued commands one at a time in arrival order.
func (s *Session) Execute(*loop.Frame) {
	for {
		cmd, ok := s.queue.Pop()
		if !ok {
			return
		}
		s.apply(cmd)
	}
}

func (s *Session) apply(cmd Command) {
	var res engine.TickResult

	switch cmd.Kind {
	case CommandTick:
		wasOver := s.engine.GameOver()
		res = s.engine.Tick()
		if res.Lines > 0 {
			s.logger.Debug("lines cleared",
				zap.Stringer("session", s.id),
				zap.Int("lines", res.Lines),
				zap.Int("reward", res.Reward),
				zap.Int("score", s.engine.Score()))
		}
		if res.GameOver && !wasOver {
			s.timers.Cancel(s.repeat)
			s.repeat = 0
			s.logger.Info("game over",
				zap.Stringer("session", s.id),
				zap.Int("score", s.engine.Score()))
		}
	case CommandMove:
		s.engine.Move(cmd.Dir)
	case CommandRotate:
		s.engine.Rotate()
	case CommandRestart:
		s.restart()
		return
	default:
		s.logger.Warn("unknown command", zap.Stringer("command", cmd))
		return
	}

	s.publish(cmd, res)
}

func (s *Session) publish(cmd Command, res engine.TickResult) {
	if len(s.observers) == 0 {
		return
	}
	u := Update{
		Command:  cmd,
		Result:   res,
		Snapshot: s.engine.Snapshot(),
	}
	for _, o := range s.observers {
		o.Observe(u)
	}
}

// PointerDown handles a press on the play surface. On game over it restarts.
// Otherwise odd presses move in dir and even presses rotate; either way the
// piece drops a row and a repeat of move+drop runs until PointerUp.
func (s *Session) PointerDown(dir int) {
	if s.engine.GameOver() {
		s.Restart()
		return
	}

	s.clicks++
	if s.clicks == 1 {
		s.Enqueue(Move(dir))
	} else {
		s.Enqueue(Rotate())
		s.clicks = 0
	}

	s.timers.Cancel(s.repeat)
	s.repeat = s.timers.Every(s.cfg.RepeatInterval, func() {
		s.Enqueue(Move(dir))
		s.Enqueue(Tick())
	})

	s.Enqueue(Tick())
}

// PointerUp stops the repeat started by PointerDown. Extra calls are harmless.
func (s *Session) PointerUp() {
	s.timers.Cancel(s.repeat)
	s.repeat = 0
}

// Restart stops the repeat timer, discards pending commands and starts a new game.
func (s *Session) Restart() {
	s.restart()
}

func (s *Session) restart() {
	// The repeat must be gone before the engine resets or it would move the new piece.
	s.PointerUp()
	s.queue.Clear()
	s.clicks = 0

	previous := s.engine.Score()
	s.engine.Reset()
	s.armGravity()

	old := s.id
	s.id = uuid.New()
	s.logger.Info("game restarted",
		zap.Stringer("session", s.id),
		zap.Stringer("previous", old),
		zap.Int("previous_score", previous))

	s.publish(Command{Kind: CommandRestart}, engine.TickResult{})
}

func (s *Session) armGravity() {
	s.timers.Cancel(s.gravity)
	s.gravity = s.timers.Every(s.cfg.TickInterval, func() {
		s.Enqueue(Tick())
	})
}

// Snapshot returns the current engine state.
func (s *Session) Snapshot() engine.Snapshot {
	return s.engine.Snapshot()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.engine.Score()
}

// GameOver reports whether the current game has ended.
func (s *Session) GameOver() bool {
	return s.engine.GameOver()
}

// ID identifies the current game; it changes on every restart.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Pending returns the number of queued commands.
func (s *Session) Pending() int {
	return s.queue.Len()
}

// Repeating reports whether a pointer repeat is running.
func (s *Session) Repeating() bool {
	return s.timers.Active(s.repeat)
}

// Timers exposes the session's timer set for inspection.
func (s *Session) Timers() *loop.Timers {
	return s.timers
}
