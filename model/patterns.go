package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PlacePattern for a name it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string][][]bool{
	"glider": {
		{false, true, false},
		{false, false, true},
		{true, true, true},
	},
	"blinker": {
		{true, true, true},
	},
	"block": {
		{true, true},
		{true, true},
	},
}

// PlacePattern stamps a named pattern with its top-left corner at (row, col).
// Cells falling off the board are dropped.
func (b *Board) PlacePattern(name string, row, col int) error {
	pattern, ok := patterns[strings.ToLower(name)]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[PlacePattern] %q", name)
	}
	for y, line := range pattern {
		for x, cell := range line {
			b.Set(row+y, col+x, cell)
		}
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(row, col int) {
	_ = b.PlacePattern("glider", row, col)
}

// AddBlinker adds a horizontal blinker oscillator
func (b *Board) AddBlinker(row, col int) {
	_ = b.PlacePattern("blinker", row, col)
}

// AddBlock adds a 2x2 still life
func (b *Board) AddBlock(row, col int) {
	_ = b.PlacePattern("block", row, col)
}

// Randomize brings cells to life with the given probability. Existing live
// cells are kept.
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	if density <= 0 {
		return
	}
	for i := range b.cells {
		if rng.Float64() < density {
			b.cells[i] = true
		}
	}
}
