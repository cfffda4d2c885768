package model

import (
	"math"

	"github.com/pkg/errors"
)

// MaxCells caps the board size so a bad dimension cannot exhaust memory
const MaxCells = 1 << 26

var (
	// ErrInvalidDimension is returned for a board with no rows or no columns
	ErrInvalidDimension = errors.New("board dimensions must be positive")
	// ErrAllocation is returned when the board (or its padded copy) cannot be sized
	ErrAllocation = errors.New("board too large to allocate")
)

// Board is the game board: a fixed rows x cols grid stored row-major
type Board struct {
	rows  int
	cols  int
	cells []bool
}

// NewBoard creates a board with every cell dead
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewBoard] rows=%d cols=%d", rows, cols)
	}
	// the padded snapshot needs (rows+2)*(cols+2) cells
	if rows > math.MaxInt32-2 || cols > math.MaxInt32-2 || (rows+2) > MaxCells/(cols+2) {
		return nil, errors.Wrapf(ErrAllocation, "[NewBoard] rows=%d cols=%d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// Rows returns the height of the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the width of the board
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Get returns the state of a cell, dead when out of range
func (b *Board) Get(row, col int) bool {
	if !b.inRange(row, col) {
		return false
	}
	return b.cells[row*b.cols+col]
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(row, col int, alive bool) {
	if b.inRange(row, col) {
		b.cells[row*b.cols+col] = alive
	}
}

// Toggle flips a cell between alive and dead
func (b *Board) Toggle(row, col int) {
	if b.inRange(row, col) {
		i := row*b.cols + col
		b.cells[i] = !b.cells[i]
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	clear(b.cells)
}

// CountLiving returns the total number of living cells
func (b *Board) CountLiving() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// SnapshotWithPadding copies the board into a new padded grid
func (b *Board) SnapshotWithPadding(toroidal bool) *PaddedGrid {
	p := newPaddedGrid(b.rows, b.cols)
	b.SnapshotInto(p, toroidal)
	return p
}

// SnapshotInto copies the board into the interior of p and fills the
// border ring for the given topology. p must be sized for this board.
func (b *Board) SnapshotInto(p *PaddedGrid, toroidal bool) {
	p.reset(b.rows, b.cols)
	last := b.rows - 1

	for r := range b.rows {
		copy(p.row(r + 1)[1:b.cols+1], b.cells[r*b.cols:(r+1)*b.cols])
	}

	if !toroidal {
		// reset already zeroed the border
		return
	}

	// top pad is the last real row and bottom pad the first, corners included
	copy(p.row(0)[1:b.cols+1], b.cells[last*b.cols:])
	copy(p.row(b.rows + 1)[1:b.cols+1], b.cells[:b.cols])

	for r := range b.rows {
		p.set(r+1, 0, b.cells[r*b.cols+b.cols-1])
		p.set(r+1, b.cols+1, b.cells[r*b.cols])
	}

	p.set(0, 0, b.Get(last, b.cols-1))
	p.set(0, b.cols+1, b.Get(last, 0))
	p.set(b.rows+1, 0, b.Get(0, b.cols-1))
	p.set(b.rows+1, b.cols+1, b.Get(0, 0))
}
