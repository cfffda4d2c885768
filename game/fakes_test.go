package game

import (
	"sync"

	"github.com/sheikhrachel/go-life/model"
)

// recordingDisplay keeps what a terminal would show
type recordingDisplay struct {
	mu        sync.Mutex
	cells     map[[2]int]bool
	cursors   map[[2]int]bool
	lines     map[int]string
	headers   []string
	borders   int
	refreshes int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		cells:   map[[2]int]bool{},
		cursors: map[[2]int]bool{},
		lines:   map[int]string{},
	}
}

func (d *recordingDisplay) DrawCell(row, col int, alive bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells[[2]int{row, col}] = alive
}

func (d *recordingDisplay) DrawCursor(row, col int, erase bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if erase {
		delete(d.cursors, [2]int{row, col})
	} else {
		d.cursors[[2]int{row, col}] = true
	}
}

func (d *recordingDisplay) DrawBorder(rows, cols int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.borders++
}

func (d *recordingDisplay) PrintStatusLine(row int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines[row] = text
	if row == headerRow {
		d.headers = append(d.headers, text)
	}
}

func (d *recordingDisplay) Refresh() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshes++
}

func (d *recordingDisplay) line(row int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines[row]
}

func (d *recordingDisplay) visibleCursors() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cursors)
}

func (d *recordingDisplay) cell(row, col int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cells[[2]int{row, col}]
}

// scriptedInput replays keys, then reports end of input
type scriptedInput struct {
	keys chan model.Key
}

func newScriptedInput(keys ...model.Key) *scriptedInput {
	ch := make(chan model.Key, len(keys))
	for _, k := range keys {
		ch <- k
	}
	close(ch)
	return &scriptedInput{keys: ch}
}

func (in *scriptedInput) NextKey() model.Key {
	k, ok := <-in.keys
	if !ok {
		return model.KeyEndOfInput
	}
	return k
}
