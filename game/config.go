package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/plus3/tetoris/engine"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables of a session.
type Config struct {
	// TickInterval is the gravity period.
	TickInterval time.Duration
	// RepeatInterval is the period of the move+tick repeat while the pointer is held.
	RepeatInterval time.Duration
	// Seed makes piece selection deterministic. Zero picks a random seed.
	Seed uint64
	// Palette overrides the block colors when non-empty.
	Palette []color.RGBA
}

// DefaultConfig returns the standard timings.
func DefaultConfig() Config {
	return Config{
		TickInterval:   500 * time.Millisecond,
		RepeatInterval: 200 * time.Millisecond,
	}
}

// Validate checks the config for values the session cannot run with.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.RepeatInterval <= 0 {
		return fmt.Errorf("%w: repeat interval %v must be positive", ErrInvalidConfig, c.RepeatInterval)
	}
	if len(c.Palette) > 255 {
		return fmt.Errorf("%w: palette has %d colors, at most 255 allowed", ErrInvalidConfig, len(c.Palette))
	}
	return nil
}

func (c Config) engineOptions() []engine.Option {
	var opts []engine.Option
	if c.Seed != 0 {
		opts = append(opts, engine.WithSeed(c.Seed))
	}
	if len(c.Palette) > 0 {
		opts = append(opts, engine.WithPalette(c.Palette))
	}
	return opts
}
