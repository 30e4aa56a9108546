package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
	"github.com/plus3/tetoris/platform"
)

// DefaultFrameInterval is how often the app advances the scheduler.
const DefaultFrameInterval = 16 * time.Millisecond

const statusLines = 4

// Config holds the collaborators of an App.
type Config struct {
	Screen        tcell.Screen
	Session       *game.Session
	Platform      platform.Service
	AppID         string
	FrameInterval time.Duration
	Logger        *zap.Logger
}

// App runs a session on a terminal screen. All session access happens on the
// goroutine that calls Run.
type App struct {
	screen    tcell.Screen
	session   *game.Session
	scheduler *loop.Scheduler
	platform  platform.Service
	appID     string
	interval  time.Duration
	logger    *zap.Logger

	renderer Renderer
	input    *Input

	greeting string
	notice   string
	sharing  bool
	dirty    bool
}

type shareResult struct {
	outcome platform.Outcome
	err     error
}

// NewApp wires the session into a fresh scheduler. The screen must already be initialized.
func NewApp(cfg Config) *App {
	if cfg.Platform == nil {
		cfg.Platform = platform.Offline{}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	a := &App{
		screen:    cfg.Screen,
		session:   cfg.Session,
		scheduler: loop.NewScheduler(),
		platform:  cfg.Platform,
		appID:     cfg.AppID,
		interval:  cfg.FrameInterval,
		logger:    cfg.Logger,
		dirty:     true,
	}
	a.input = NewInput(a.session, &a.renderer)
	a.session.Register(a.scheduler)
	a.session.Subscribe(game.ObserverFunc(func(u game.Update) {
		a.dirty = true
		if u.Command.Kind == game.CommandRestart {
			a.notice = ""
		}
	}))
	return a
}

// Scheduler returns the scheduler driving the session, so callers can register extra systems.
func (a *App) Scheduler() *loop.Scheduler {
	return a.scheduler
}

// Run plays until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	if greeting, err := platform.Greeting(ctx, a.platform); err != nil {
		a.logger.Warn("greeting unavailable", zap.Error(err))
	} else {
		a.greeting = greeting
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	shares := make(chan shareResult, 1)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	last := time.Now()

	a.layout()
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch a.input.Handle(ev) {
			case ActionQuit:
				return nil
			case ActionShare:
				a.share(ctx, shares)
			case ActionRedraw:
				if _, ok := ev.(*tcell.EventResize); ok {
					a.screen.Sync()
					a.layout()
				}
				a.dirty = true
			}

		case res := <-shares:
			a.sharing = false
			a.notice = res.outcome.Message()
			a.dirty = true
			if res.err != nil {
				a.logger.Error("share failed", zap.Error(res.err))
			} else {
				a.logger.Info("share finished", zap.Stringer("outcome", res.outcome))
			}

		case now := <-ticker.C:
			a.scheduler.Once(now.Sub(last).Seconds())
			last = now
			if a.dirty {
				a.draw()
			}
		}
	}
}

func (a *App) share(ctx context.Context, results chan<- shareResult) {
	if a.sharing {
		return
	}
	a.sharing = true
	a.notice = "Sharing..."
	a.dirty = true

	score := a.session.Score()
	go func() {
		outcome, err := platform.ShareScore(ctx, a.platform, a.appID, score)
		results <- shareResult{outcome: outcome, err: err}
	}()
}

func (a *App) layout() {
	w, h := a.screen.Size()
	a.renderer.Center(w, h, statusLines)
}

func (a *App) draw() {
	snap := a.session.Snapshot()
	a.renderer.Draw(a.screen, snap, a.status(snap.GameOver, snap.Score))
	a.screen.Show()
	a.dirty = false
}

func (a *App) status(over bool, score int) []string {
	lines := make([]string, 0, statusLines)
	if over {
		lines = append(lines, "GAME OVER  click: restart  s: share")
	}
	lines = append(lines, fmt.Sprintf("Score: %d", score))
	if !over {
		lines = append(lines, game.HowToPlay)
	}
	if a.greeting != "" {
		lines = append(lines, a.greeting)
	}
	if a.notice != "" {
		lines = append(lines, a.notice)
	}
	return lines
}
