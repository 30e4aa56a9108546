// Package sound plays short synthesized effects for line clears and game over.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every effect is generated at.
const SampleRate = beep.SampleRate(44100)

const (
	noteLength     = 80 * time.Millisecond
	gameOverLength = 250 * time.Millisecond
)

// chime holds one rising note per cleared line.
var chime = [...]float64{523.25, 659.25, 783.99, 1046.50}

// Volume scales s by v in [0, 1]. Zero and below are silent.
func Volume(s beep.Streamer, v float64) *effects.Volume {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(v, 1))}
}

func note(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.2fHz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}

// LineClearTone plays one rising note per cleared line, clamped to 1..4 notes.
func LineClearTone(rate beep.SampleRate, lines int) (beep.Streamer, error) {
	lines = max(1, min(lines, len(chime)))

	notes := make([]beep.Streamer, 0, lines)
	for _, freq := range chime[:lines] {
		n, err := note(rate, freq, noteLength)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return beep.Seq(notes...), nil
}

// GameOverTone plays two falling low dyads.
func GameOverTone(rate beep.SampleRate) (beep.Streamer, error) {
	dyad := func(low, high float64) (beep.Streamer, error) {
		a, err := note(rate, low, gameOverLength)
		if err != nil {
			return nil, err
		}
		b, err := note(rate, high, gameOverLength)
		if err != nil {
			return nil, err
		}
		// halve the mix so the sum stays within [-1, 1]
		return Volume(beep.Mix(a, b), 0.5), nil
	}

	first, err := dyad(220, 277.18)
	if err != nil {
		return nil, err
	}
	second, err := dyad(164.81, 207.65)
	if err != nil {
		return nil, err
	}
	return beep.Seq(first, second), nil
}
