package model

import (
	"github.com/gdamore/tcell/v2"
)

const (
	cellAlive = 'O'
	cellDead  = ' '

	cursorLeft  = '['
	cursorRight = ']'

	borderCorner     = '+'
	borderHorizontal = '-'
	borderVertical   = '|'

	// BoardOriginY is the screen row of the first board row; the border sits one above
	BoardOriginY = 3
)

// Display is what the game draws onto
type Display interface {
	DrawCell(row, col int, alive bool)
	DrawCursor(row, col int, erase bool)
	DrawBorder(rows, cols int)
	PrintStatusLine(row int, text string)
	Refresh()
}

// TerminalRenderer draws the board on a tcell screen. Every board cell is
// two columns wide, leaving room for the cursor brackets.
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalRenderer wraps an initialised screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, style: tcell.StyleDefault}
}

// DrawCell draws one board cell
func (r *TerminalRenderer) DrawCell(row, col int, alive bool) {
	ch := cellDead
	if alive {
		ch = cellAlive
	}
	r.screen.SetContent(col*2+2, row+BoardOriginY, ch, nil, r.style)
}

// DrawCursor draws the bracket glyph around a cell, or blanks it when erase is set
func (r *TerminalRenderer) DrawCursor(row, col int, erase bool) {
	left, right := cursorLeft, cursorRight
	if erase {
		left, right = ' ', ' '
	}
	y := row + BoardOriginY
	r.screen.SetContent(col*2+1, y, left, nil, r.style)
	r.screen.SetContent(col*2+3, y, right, nil, r.style)
}

// DrawBorder draws a box around a rows x cols board
func (r *TerminalRenderer) DrawBorder(rows, cols int) {
	var (
		top    = BoardOriginY - 1
		bottom = BoardOriginY + rows
		right  = cols*2 + 2
	)
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, borderHorizontal, nil, r.style)
		r.screen.SetContent(x, bottom, borderHorizontal, nil, r.style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, borderVertical, nil, r.style)
		r.screen.SetContent(right, y, borderVertical, nil, r.style)
	}
	for _, x := range []int{0, right} {
		r.screen.SetContent(x, top, borderCorner, nil, r.style)
		r.screen.SetContent(x, bottom, borderCorner, nil, r.style)
	}
}

// PrintStatusLine writes text at the start of a screen row and clears the rest of it
func (r *TerminalRenderer) PrintStatusLine(row int, text string) {
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range text {
		r.screen.SetContent(x, row, ch, nil, r.style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, r.style)
	}
}

// Refresh pushes pending changes to the terminal
func (r *TerminalRenderer) Refresh() {
	r.screen.Show()
}
