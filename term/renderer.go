// Package term plays the game in a terminal through tcell, driven by the mouse.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetoris/engine"
	"github.com/plus3/tetoris/game"
)

// cellWidth is the number of terminal columns per board cell, which keeps
// blocks roughly square in most fonts.
const cellWidth = 2

const blockRune = '█'

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws a snapshot with its top-left border corner at (X, Y).
type Renderer struct {
	X, Y int
}

// BoardRect returns the screen rectangle of the playfield, excluding the border.
func (r Renderer) BoardRect() (x, y, width, height int) {
	return r.X + 1, r.Y + 1, engine.Cols * cellWidth, engine.Rows
}

// Size returns the screen area needed for the board, its border and statusLines lines of text.
func (r Renderer) Size(statusLines int) (width, height int) {
	return engine.Cols*cellWidth + 2, engine.Rows + 2 + statusLines
}

// Center positions the renderer in a screen of the given size.
func (r *Renderer) Center(screenWidth, screenHeight, statusLines int) {
	w, h := r.Size(statusLines)
	r.X = max((screenWidth-w)/2, 0)
	r.Y = max((screenHeight-h)/2, 0)
}

// Direction maps a screen column to the move direction of a press there.
func (r Renderer) Direction(screenX int) int {
	bx, _, w, _ := r.BoardRect()
	return game.DirectionAt(float64(screenX-bx), float64(w))
}

// Draw clears s and renders the board, the falling piece and the status lines.
// It does not call Show.
func (r Renderer) Draw(s tcell.Screen, snap engine.Snapshot, status []string) {
	s.Clear()
	r.drawBorder(s)

	for y := range engine.Rows {
		for x := range engine.Cols {
			if c, ok := snap.Color(snap.Board[y][x]); ok {
				r.drawBlock(s, x, y, c)
			}
		}
	}

	if snap.Piece != nil {
		if c, ok := snap.Color(snap.Piece.Color); ok {
			for p := range snap.Cells() {
				if p.Y < 0 || p.Y >= engine.Rows || p.X < 0 || p.X >= engine.Cols {
					continue
				}
				r.drawBlock(s, p.X, p.Y, c)
			}
		}
	}

	_, by, _, bh := r.BoardRect()
	for i, line := range status {
		style := textStyle
		if snap.GameOver && i == 0 {
			style = overStyle
		}
		drawText(s, r.X, by+bh+1+i, line, style)
	}
}

func (r Renderer) drawBorder(s tcell.Screen) {
	w, _ := r.Size(0)
	h := engine.Rows + 2
	right, bottom := r.X+w-1, r.Y+h-1

	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func (r Renderer) drawBlock(s tcell.Screen, x, y int, c color.RGBA) {
	bx, by, _, _ := r.BoardRect()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for i := range cellWidth {
		s.SetContent(bx+x*cellWidth+i, by+y, blockRune, nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
