package model

import (
	"github.com/gdamore/tcell/v2"
)

// Key is a decoded user command
type Key int

const (
	KeyUnrecognized Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyToggleTopology
	KeyIncRate
	KeyDecRate
	KeyToggleCell
	KeyConfirm
	KeyEndOfInput
)

// Input yields one key per call, blocking until one is available
type Input interface {
	NextKey() Key
}

// TerminalInput reads keys from a tcell screen
type TerminalInput struct {
	screen tcell.Screen
}

func NewTerminalInput(screen tcell.Screen) *TerminalInput {
	return &TerminalInput{screen: screen}
}

// NextKey blocks for the next key press. Resizes are absorbed and a
// finalized screen reads as end of input.
func (in *TerminalInput) NextKey() Key {
	for {
		switch ev := in.screen.PollEvent().(type) {
		case nil:
			return KeyEndOfInput
		case *tcell.EventResize:
			in.screen.Sync()
		case *tcell.EventKey:
			return DecodeKey(ev)
		}
	}
}

// DecodeKey maps a tcell key event to a game key
func DecodeKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEnter, tcell.KeyEscape:
		return KeyConfirm
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		return KeyEndOfInput
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return KeyUnrecognized
}

func decodeRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 't', 'T':
		return KeyToggleTopology
	case 'e', 'E', '+':
		return KeyIncRate
	case 'q', 'Q', '-':
		return KeyDecRate
	case ' ', 'f', 'F':
		return KeyToggleCell
	}
	return KeyUnrecognized
}
