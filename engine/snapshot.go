package engine

import (
	"image/color"
	"iter"
	"slices"
)

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Board    Board
	Piece    *Piece
	Position Position
	Score    int
	GameOver bool
	Palette  []color.RGBA
}

// Snapshot copies the current state. The returned piece shares nothing with the engine.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Board:    e.board,
		Position: e.pos,
		Score:    e.score,
		GameOver: e.gameOver,
		Palette:  slices.Clone(e.palette),
	}
	if e.piece != nil {
		snap.Piece = &Piece{
			Kind:  e.piece.Kind,
			Shape: e.piece.Shape.Clone(),
			Color: e.piece.Color,
		}
	}
	return snap
}

// Cells yields the absolute board coordinates of the falling piece's blocks,
// including any that are still above the visible rows.
func (s Snapshot) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if s.Piece == nil {
			return
		}
		for i, row := range s.Piece.Shape {
			for j, filled := range row {
				if !filled {
					continue
				}
				if !yield(Position{X: s.Position.X + j, Y: s.Position.Y + i}) {
					return
				}
			}
		}
	}
}

// Color resolves a cell to its palette color. Empty and unknown cells return false.
func (s Snapshot) Color(c Cell) (color.RGBA, bool) {
	if c == Empty || int(c) > len(s.Palette) {
		return color.RGBA{}, false
	}
	return s.Palette[c-1], true
}
