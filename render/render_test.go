package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/tetoris/engine"
	"github.com/plus3/tetoris/game"
)

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(DefaultBlockSize)
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)
}

func TestCellRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 30, 30), CellRect(0, 0, 30))
	assert.Equal(t, image.Rect(270, 570, 300, 600), CellRect(engine.Cols-1, engine.Rows-1, 30))
	assert.Equal(t, image.Rect(20, 10, 30, 20), CellRect(2, 1, 10))
}

func TestHUDLines(t *testing.T) {
	running := engine.Snapshot{Score: 140}
	over := engine.Snapshot{Score: 300, GameOver: true}

	assert.Equal(t, []string{"Score: 140", game.HowToPlay}, HUD{}.Lines(running))
	assert.Equal(t,
		[]string{"Hello, Aiko!", "Score: 140", game.HowToPlay},
		HUD{Greeting: "Hello, Aiko!"}.Lines(running))
	assert.Equal(t,
		[]string{"Score: 300", "GAME OVER  click board: restart"},
		HUD{}.Lines(over))
	assert.Equal(t,
		[]string{"Score: 300", "GAME OVER  click board: restart", "tap here or press S to share", "Shared!"},
		HUD{CanShare: true, Notice: "Shared!"}.Lines(over))
}

func TestInHUD(t *testing.T) {
	assert.False(t, InHUD(0, 30))
	assert.False(t, InHUD(599, 30))
	assert.True(t, InHUD(600, 30))
}
