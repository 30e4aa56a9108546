package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/plus3/tetoris/engine"
	"github.com/plus3/tetoris/game"
)

// HUDHeight is the pixel height reserved under the board for status text.
const HUDHeight = 88

const lineHeight = 16

// HUD is the text shown under the board.
type HUD struct {
	Greeting string
	Notice   string
	// CanShare adds the share hint after the game-over line.
	CanShare bool
}

// Lines returns the status lines for snap, top to bottom.
func (h HUD) Lines(snap engine.Snapshot) []string {
	lines := make([]string, 0, 4)
	if h.Greeting != "" {
		lines = append(lines, h.Greeting)
	}
	lines = append(lines, fmt.Sprintf("Score: %d", snap.Score))
	if !snap.GameOver {
		lines = append(lines, game.HowToPlay)
	} else {
		lines = append(lines, "GAME OVER  click board: restart")
		if h.CanShare {
			lines = append(lines, "tap here or press S to share")
		}
	}
	if h.Notice != "" {
		lines = append(lines, h.Notice)
	}
	return lines
}

// InHUD reports whether a pointer at y is below a board of the given block size.
func InHUD(y, blockSize int) bool {
	_, h := BoardSize(blockSize)
	return y >= h
}

// DrawHUD prints the status lines below a board of the given block size.
func DrawHUD(screen *ebiten.Image, snap engine.Snapshot, h HUD, blockSize int) {
	_, top := BoardSize(blockSize)
	for i, line := range h.Lines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 4, top+4+i*lineHeight)
	}
}
