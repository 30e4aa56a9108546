package engine

import "image/color"

const (
	Rows = 20
	Cols = 10
)

// Cell is either Empty or the palette index of a locked block plus one.
type Cell uint8

// Empty marks an unoccupied board cell.
const Empty Cell = 0

// Board is the grid of locked blocks. Row 0 is the top of the well.
type Board [Rows][Cols]Cell

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	for _, c := range b[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// removeRow deletes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (b *Board) removeRow(y int) {
	for r := y; r > 0; r-- {
		b[r] = b[r-1]
	}
	b[0] = [Cols]Cell{}
}

// Filled counts the occupied cells on the board.
func (b Board) Filled() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// DefaultPalette holds the block colors pieces are painted with.
var DefaultPalette = []color.RGBA{
	{0xFF, 0x0D, 0x72, 0xFF},
	{0x0D, 0xC2, 0xFF, 0xFF},
	{0x0D, 0xFF, 0x72, 0xFF},
	{0xF5, 0x38, 0xFF, 0xFF},
	{0xFF, 0x8E, 0x0D, 0xFF},
	{0xFF, 0xE1, 0x38, 0xFF},
	{0x38, 0x77, 0xFF, 0xFF},
}
