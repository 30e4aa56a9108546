package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/platform"
	"github.com/plus3/tetoris/sound"
	"github.com/plus3/tetoris/term"
)

func main() {
	defaults := game.DefaultConfig()
	tick := flag.Duration("tick", defaults.TickInterval, "Gravity interval.")
	repeat := flag.Duration("repeat", defaults.RepeatInterval, "Interval of the move repeat while the button is held.")
	seed := flag.Uint64("seed", 0, "Random seed for pieces. Zero picks one from the clock.")
	frame := flag.Duration("frame", term.DefaultFrameInterval, "Scheduler frame interval.")
	volume := flag.Float64("sound", 0, "Effect volume between 0 and 1. Zero disables sound.")
	liffID := flag.String("liff-id", os.Getenv("LIFF_ID"), "Mini-app id used in share links.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	logPath := flag.String("log", "", "Write logs to this file. Logging is off when empty.")
	flag.Parse()

	logger, err := newLogger(*logLevel, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, game.Config{
		TickInterval:   *tick,
		RepeatInterval: *repeat,
		Seed:           *seed,
	}, *frame, *volume, *liffID); err != nil {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfg game.Config, frame time.Duration, volume float64, appID string) error {
	session, err := game.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	player := sound.NewPlayer(volume, logger)
	if volume > 0 {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer player.Close()
	session.Subscribe(player)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := term.NewApp(term.Config{
		Screen:        screen,
		Session:       session,
		Platform:      platform.Offline{Name: os.Getenv("USER")},
		AppID:         appID,
		FrameInterval: frame,
		Logger:        logger,
	})
	return app.Run(ctx)
}

// newLogger writes to path, or discards everything when path is empty since
// the terminal is owned by the game.
func newLogger(level, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
