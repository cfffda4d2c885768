package model

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestTerminalRendererCellsAndCursor(t *testing.T) {
	s := newSimScreen(t)
	r := NewTerminalRenderer(s)

	r.DrawCell(1, 2, true)
	r.DrawCursor(1, 2, false)
	r.Refresh()

	y := 1 + BoardOriginY
	if got := runeAt(s, 6, y); got != cellAlive {
		t.Errorf("cell glyph = %q, want %q", got, cellAlive)
	}
	if got := runeAt(s, 5, y); got != cursorLeft {
		t.Errorf("left cursor glyph = %q", got)
	}
	if got := runeAt(s, 7, y); got != cursorRight {
		t.Errorf("right cursor glyph = %q", got)
	}

	r.DrawCursor(1, 2, true)
	r.DrawCell(1, 2, false)
	for _, x := range []int{5, 6, 7} {
		if got := runeAt(s, x, y); got != ' ' {
			t.Errorf("x=%d: got %q after erase, want blank", x, got)
		}
	}
}

func TestTerminalRendererBorder(t *testing.T) {
	s := newSimScreen(t)
	r := NewTerminalRenderer(s)
	r.DrawBorder(2, 3)

	top, bottom, right := BoardOriginY-1, BoardOriginY+2, 8
	checks := []struct {
		x, y int
		want rune
	}{
		{0, top, borderCorner},
		{right, top, borderCorner},
		{0, bottom, borderCorner},
		{right, bottom, borderCorner},
		{4, top, borderHorizontal},
		{4, bottom, borderHorizontal},
		{0, BoardOriginY, borderVertical},
		{right, BoardOriginY + 1, borderVertical},
	}
	for _, c := range checks {
		if got := runeAt(s, c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestTerminalRendererStatusLineClears(t *testing.T) {
	s := newSimScreen(t)
	r := NewTerminalRenderer(s)

	r.PrintStatusLine(0, "ITERATION: 100")
	r.PrintStatusLine(0, "ITERATION: 9")

	if got := runeAt(s, 11, 0); got != '9' {
		t.Errorf("got %q, want '9'", got)
	}
	if got := runeAt(s, 12, 0); got != ' ' {
		t.Errorf("stale text left behind: %q", got)
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want Key
	}{
		{tcell.KeyLeft, 0, KeyLeft},
		{tcell.KeyRight, 0, KeyRight},
		{tcell.KeyUp, 0, KeyUp},
		{tcell.KeyDown, 0, KeyDown},
		{tcell.KeyEnter, 0, KeyConfirm},
		{tcell.KeyEscape, 0, KeyConfirm},
		{tcell.KeyCtrlD, 0, KeyEndOfInput},
		{tcell.KeyRune, 'a', KeyLeft},
		{tcell.KeyRune, 'D', KeyRight},
		{tcell.KeyRune, 'w', KeyUp},
		{tcell.KeyRune, 's', KeyDown},
		{tcell.KeyRune, 'T', KeyToggleTopology},
		{tcell.KeyRune, '+', KeyIncRate},
		{tcell.KeyRune, 'q', KeyDecRate},
		{tcell.KeyRune, ' ', KeyToggleCell},
		{tcell.KeyRune, 'f', KeyToggleCell},
		{tcell.KeyRune, 'z', KeyUnrecognized},
		{tcell.KeyTab, 0, KeyUnrecognized},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		if got := DecodeKey(ev); got != tt.want {
			t.Errorf("key=%v rune=%q: got %v, want %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func TestTerminalInputNextKey(t *testing.T) {
	s := newSimScreen(t)
	in := NewTerminalInput(s)

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	for _, want := range []Key{KeyUnrecognized, KeyToggleCell, KeyConfirm} {
		if got := in.NextKey(); got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
