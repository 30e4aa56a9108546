// Package engine implements the falling-block simulation: spawning, collision,
// locking, line clearing and scoring on a fixed Rows x Cols board.
//
// The engine is a plain state machine. It owns no timers and performs no I/O;
// callers drive it with Tick, Move and Rotate and read it back through Snapshot.
package engine

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"time"
)

// Source supplies the pseudo-random choices made when a piece spawns.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Position is the board offset of a piece origin.
type Position struct {
	X, Y int
}

// Piece is the falling shape together with its palette color.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Cell
}

// TickResult describes what a single gravity step did.
type TickResult struct {
	Locked   bool
	Lines    int
	Reward   int
	GameOver bool
}

// Engine holds the state of one game.
type Engine struct {
	board    Board
	piece    *Piece
	pos      Position
	score    int
	gameOver bool

	rng     Source
	palette []color.RGBA
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects the random source used for shape and color selection.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

// WithPalette overrides the block colors. An empty palette is ignored.
func WithPalette(palette []color.RGBA) Option {
	return func(e *Engine) {
		if len(palette) > 0 && len(palette) < 256 {
			e.palette = slices.Clone(palette)
		}
	}
}

// New creates an engine and starts a game.
func New(opts ...Option) *Engine {
	e := &Engine{
		palette: slices.Clone(DefaultPalette),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	e.Reset()
	return e
}

// Reset clears the board and score and spawns the first piece.
func (e *Engine) Reset() {
	e.board = Board{}
	e.score = 0
	e.gameOver = false
	e.piece = nil
	e.Spawn()
}

// Spawn replaces the current piece with a random one at the top center.
// If the new piece collides immediately the game is over and Spawn returns false;
// the piece is left in its invalid placement.
func (e *Engine) Spawn() bool {
	kind := Kind(e.rng.IntN(KindCount))
	colorIndex := e.rng.IntN(len(e.palette))
	e.place(kind, Cell(colorIndex+1))

	if e.Collides() {
		e.gameOver = true
		return false
	}
	return true
}

func (e *Engine) place(kind Kind, c Cell) {
	e.piece = &Piece{
		Kind:  kind,
		Shape: ShapeOf(kind),
		Color: c,
	}
	e.pos = Position{X: Cols / 2, Y: 0}
}

// Collides reports whether the current piece overlaps a wall, the floor or a
// locked block. Cells above the board are checked only against the side walls.
func (e *Engine) Collides() bool {
	if e.piece == nil {
		return false
	}
	return e.collidesAt(e.piece.Shape, e.pos)
}

func (e *Engine) collidesAt(shape Shape, pos Position) bool {
	for i, row := range shape {
		for j, filled := range row {
			if !filled {
				continue
			}

			x := pos.X + j
			y := pos.Y + i

			if x < 0 || x >= Cols || y >= Rows {
				return true
			}

			if y >= 0 && e.board[y][x] != Empty {
				return true
			}
		}
	}
	return false
}

// Move shifts the piece one column in the direction of dir's sign.
// It reports whether the piece moved.
func (e *Engine) Move(dir int) bool {
	if e.gameOver || e.piece == nil {
		return false
	}

	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return false
	}

	e.pos.X += dir
	if e.Collides() {
		e.pos.X -= dir
		return false
	}
	return true
}

// Rotate turns the piece clockwise in place. A rotation that would collide is
// undone by restoring the previous shape.
func (e *Engine) Rotate() bool {
	if e.gameOver || e.piece == nil {
		return false
	}

	previous := e.piece.Shape
	e.piece.Shape = previous.Rotate()
	if e.Collides() {
		e.piece.Shape = previous
		return false
	}
	return true
}

// Tick advances the piece one row. When the piece cannot fall any further it is
// locked into the board, completed rows are cleared and scored, and the next
// piece is spawned.
func (e *Engine) Tick() TickResult {
	if e.gameOver || e.piece == nil {
		return TickResult{GameOver: e.gameOver}
	}

	e.pos.Y++
	if !e.Collides() {
		return TickResult{}
	}
	e.pos.Y--

	e.lock()
	lines := e.clearLines()
	reward := LineReward(lines)
	e.score += reward

	e.Spawn()

	return TickResult{
		Locked:   true,
		Lines:    lines,
		Reward:   reward,
		GameOver: e.gameOver,
	}
}

func (e *Engine) lock() {
	for i, row := range e.piece.Shape {
		for j, filled := range row {
			if !filled {
				continue
			}
			x := e.pos.X + j
			y := e.pos.Y + i
			// Cells still above the well have nowhere to go.
			if y < 0 || y >= Rows || x < 0 || x >= Cols {
				continue
			}
			e.board[y][x] = e.piece.Color
		}
	}
}

// clearLines scans bottom to top and removes every full row. After a removal the
// same index is checked again because the row above has moved into it.
func (e *Engine) clearLines() int {
	cleared := 0
	for y := Rows - 1; y >= 0; {
		if e.board.RowFull(y) {
			e.board.removeRow(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether the last spawned piece collided.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Palette returns a copy of the block colors in use.
func (e *Engine) Palette() []color.RGBA {
	return slices.Clone(e.palette)
}
