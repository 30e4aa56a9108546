package sound

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetoris/engine"
	"github.com/plus3/tetoris/game"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if e, isErr := s.(interface{ Err() error }); isErr {
		require.NoError(t, e.Err())
	}
	return out
}

func TestLineClearToneLength(t *testing.T) {
	for lines := 1; lines <= 4; lines++ {
		s, err := LineClearTone(SampleRate, lines)
		require.NoError(t, err)
		assert.Len(t, drain(t, s), lines*SampleRate.N(noteLength), "lines=%d", lines)
	}
}

func TestLineClearToneClamps(t *testing.T) {
	s, err := LineClearTone(SampleRate, 0)
	require.NoError(t, err)
	assert.Len(t, drain(t, s), SampleRate.N(noteLength))

	s, err = LineClearTone(SampleRate, 9)
	require.NoError(t, err)
	assert.Len(t, drain(t, s), 4*SampleRate.N(noteLength))
}

func TestGameOverToneStaysInRange(t *testing.T) {
	s, err := GameOverTone(SampleRate)
	require.NoError(t, err)

	samples := drain(t, s)
	assert.Len(t, samples, 2*SampleRate.N(gameOverLength))
	for _, smp := range samples {
		assert.LessOrEqual(t, smp[0], 1.0)
		assert.GreaterOrEqual(t, smp[0], -1.0)
	}
}

func TestVolumeZeroIsSilent(t *testing.T) {
	s, err := LineClearTone(SampleRate, 1)
	require.NoError(t, err)

	for _, smp := range drain(t, Volume(s, 0)) {
		assert.Zero(t, smp[0])
		assert.Zero(t, smp[1])
	}
}

func TestToneRejectsFrequencyAboveNyquist(t *testing.T) {
	_, err := LineClearTone(beep.SampleRate(1000), 1)
	assert.Error(t, err)
}

func TestPlayerObserve(t *testing.T) {
	p := NewPlayer(0.8, nil)
	var played []beep.Streamer
	p.play = func(s beep.Streamer) { played = append(played, s) }

	p.Observe(game.Update{Result: engine.TickResult{Locked: true, Lines: 2}})
	assert.Empty(t, played, "silent before Init")

	p.ready = true
	p.Observe(game.Update{Command: game.Tick()})
	p.Observe(game.Update{Command: game.Tick(), Result: engine.TickResult{Locked: true, Lines: 2, Reward: 100}})
	p.Observe(game.Update{Command: game.Tick(), Result: engine.TickResult{Locked: true, GameOver: true}})
	p.Observe(game.Update{Command: game.Tick(), Result: engine.TickResult{GameOver: true}})
	assert.Len(t, played, 2)

	p.volume = 0
	p.Observe(game.Update{Result: engine.TickResult{Locked: true, Lines: 1}})
	assert.Len(t, played, 2)
}
