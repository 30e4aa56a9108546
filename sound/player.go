package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/game"
)

// Player turns session updates into sounds. It stays silent until Init succeeds.
type Player struct {
	rate   beep.SampleRate
	volume float64
	logger *zap.Logger

	ready bool
	play  func(beep.Streamer)
}

// NewPlayer creates a player with volume in [0, 1].
func NewPlayer(volume float64, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		rate:   SampleRate,
		volume: volume,
		logger: logger,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Init opens the audio device. A failure leaves the player silent; the game can
// run without sound.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close releases the audio device.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}

// Observe plays a chime for cleared lines and a low tone when the game ends.
func (p *Player) Observe(u game.Update) {
	if !p.ready || p.volume <= 0 {
		return
	}

	var (
		s   beep.Streamer
		err error
	)
	switch {
	case u.Result.Locked && u.Result.GameOver:
		s, err = GameOverTone(p.rate)
	case u.Result.Lines > 0:
		s, err = LineClearTone(p.rate, u.Result.Lines)
	default:
		return
	}
	if err != nil {
		p.logger.Warn("build sound", zap.Error(err))
		return
	}
	p.play(Volume(s, p.volume))
}
