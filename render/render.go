// Package render draws engine snapshots onto ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetoris/engine"
)

// DefaultBlockSize is the edge length of one cell in pixels.
const DefaultBlockSize = 30

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridColor       = color.RGBA{0x1c, 0x1c, 0x26, 0xff}
	outlineColor    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	gameOverTint    = color.RGBA{0x00, 0x00, 0x00, 0x90}
)

// BoardSize returns the pixel size of the playfield.
func BoardSize(blockSize int) (width, height int) {
	return engine.Cols * blockSize, engine.Rows * blockSize
}

// CellRect returns the pixel rectangle covered by board cell (x, y).
func CellRect(x, y, blockSize int) image.Rectangle {
	return image.Rect(x*blockSize, y*blockSize, (x+1)*blockSize, (y+1)*blockSize)
}

// Draw renders the locked cells and the falling piece at the top-left of screen.
func Draw(screen *ebiten.Image, snap engine.Snapshot, blockSize int) {
	w, h := BoardSize(blockSize)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), backgroundColor, false)

	for y := 0; y < engine.Rows; y++ {
		for x := 0; x < engine.Cols; x++ {
			c, ok := snap.Color(snap.Board[y][x])
			if !ok {
				r := CellRect(x, y, blockSize)
				vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(blockSize), float32(blockSize), 1, gridColor, false)
				continue
			}
			drawBlock(screen, x, y, blockSize, c)
		}
	}

	if snap.Piece != nil {
		if c, ok := snap.Color(snap.Piece.Color); ok {
			for p := range snap.Cells() {
				if p.Y < 0 || p.Y >= engine.Rows || p.X < 0 || p.X >= engine.Cols {
					continue
				}
				drawBlock(screen, p.X, p.Y, blockSize, c)
			}
		}
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), gameOverTint, false)
	}
}

func drawBlock(screen *ebiten.Image, x, y, blockSize int, c color.Color) {
	r := CellRect(x, y, blockSize)
	fx, fy, size := float32(r.Min.X), float32(r.Min.Y), float32(blockSize)
	vector.DrawFilledRect(screen, fx, fy, size, size, c, false)
	vector.StrokeRect(screen, fx, fy, size, size, 1, outlineColor, false)
}
