package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
	"github.com/plus3/tetoris/platform"
	"github.com/plus3/tetoris/render"
	"github.com/plus3/tetoris/sound"
)

func main() {
	defaults := game.DefaultConfig()
	tick := flag.Duration("tick", defaults.TickInterval, "Gravity interval.")
	repeat := flag.Duration("repeat", defaults.RepeatInterval, "Interval of the move repeat while the pointer is held.")
	seed := flag.Uint64("seed", 0, "Random seed for pieces. Zero picks one from the clock.")
	block := flag.Int("block", render.DefaultBlockSize, "Cell size in pixels.")
	volume := flag.Float64("sound", 0.5, "Effect volume between 0 and 1. Zero disables sound.")
	debug := flag.Bool("debug", false, "Show the debug overlay (F1 toggles it).")
	liffID := flag.String("liff-id", os.Getenv("LIFF_ID"), "Mini-app id used for init and share links.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := game.Config{
		TickInterval:   *tick,
		RepeatInterval: *repeat,
		Seed:           *seed,
	}
	session, err := game.NewSession(cfg, logger)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if *block <= 0 {
		logger.Fatal("invalid configuration", zap.Int("block", *block))
	}

	scheduler := loop.NewScheduler()
	session.Register(scheduler)

	player := sound.NewPlayer(*volume, logger)
	if *volume > 0 {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer player.Close()
	session.Subscribe(player)

	ctx := context.Background()
	svc := connectPlatform(ctx, *liffID, logger)

	g := &Game{
		session:   session,
		scheduler: scheduler,
		platform:  svc,
		appID:     *liffID,
		blockSize: *block,
		logger:    logger,
		shares:    make(chan shareResult, 1),
	}
	g.hud.CanShare = svc.ShareAvailable(platform.ShareTargetPicker)
	if greeting, err := platform.Greeting(ctx, svc); err != nil {
		logger.Warn("greeting unavailable", zap.Error(err))
	} else {
		g.hud.Greeting = greeting
	}
	session.Subscribe(game.ObserverFunc(func(u game.Update) {
		if u.Command.Kind == game.CommandRestart {
			g.hud.Notice = ""
		}
	}))

	if *debug {
		g.debug = newDebugLayer(session, scheduler)
	} else {
		width, height := render.BoardSize(*block)
		ebiten.SetWindowSize(width, height+render.HUDHeight)
	}
	ebiten.SetWindowTitle("Tetoris")

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

// connectPlatform initializes the host SDK and falls back to the offline
// service when it is missing or fails.
func connectPlatform(ctx context.Context, appID string, logger *zap.Logger) platform.Service {
	svc := newPlatform()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Init(ctx, platform.Config{AppID: appID}); err != nil {
		logger.Warn("platform unavailable, playing offline", zap.Error(err))
		return offlinePlatform()
	}
	return svc
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}
