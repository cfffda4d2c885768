package game

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Counters are the progress counters shared by both phases
type Counters struct {
	Computed int // generations computed
	Rendered int // generations drawn
	Edits    int // cells toggled during setup
}

// State is the aggregate shared by the setup and simulation goroutines.
// Everything but the two flags is guarded by mu.
type State struct {
	mu sync.Mutex

	board         *model.Board
	updateRate    int
	maxIterations int
	toroidal      bool

	row, col    int
	lastCommand Command
	counters    Counters
	outcome     Outcome

	// write-once, false to true
	inputOver atomic.Bool
	finished  atomic.Bool

	editRenderReady *condition
	computeReady    *condition
	renderReady     *condition

	waitTimeout time.Duration
	logger      *log.Logger
}

// Option customises a State
type Option func(*State)

// WithWaitTimeout sets the ceiling on every condition wait
func WithWaitTimeout(d time.Duration) Option {
	return func(s *State) {
		if d > 0 {
			s.waitTimeout = d
		}
	}
}

// WithLogger sets where phase transitions are logged
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState takes ownership of board for the lifetime of the game
func NewState(board *model.Board, updateRate, maxIterations int, toroidal bool, opts ...Option) *State {
	s := &State{
		board:         board,
		updateRate:    utils.ClampRate(updateRate),
		maxIterations: max(maxIterations, 0),
		toroidal:      toroidal,
		waitTimeout:   DefaultWaitTimeout,
		logger:        log.New(io.Discard, "", 0),
	}
	s.editRenderReady = newCondition(&s.mu)
	s.computeReady = newCondition(&s.mu)
	s.renderReady = newCondition(&s.mu)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MoveCursor moves the cursor, wrapping around the board edges whatever
// the topology
func (s *State) MoveCursor(dRow, dCol int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, cols := s.board.Rows(), s.board.Cols()
	s.row = ((s.row+dRow)%rows + rows) % rows
	s.col = ((s.col+dCol)%cols + cols) % cols

	switch {
	case dCol < 0:
		s.lastCommand = CommandMoveLeft
	case dCol > 0:
		s.lastCommand = CommandMoveRight
	case dRow < 0:
		s.lastCommand = CommandMoveUp
	case dRow > 0:
		s.lastCommand = CommandMoveDown
	}
	s.editRenderReady.signal()
}

// ToggleCell flips the cell under the cursor
func (s *State) ToggleCell() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Toggle(s.row, s.col)
	s.counters.Edits++
	s.lastCommand = CommandSpawn
	s.editRenderReady.signal()
}

// AdjustRate changes the update rate, clamped to its valid range
func (s *State) AdjustRate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateRate = utils.ClampRate(s.updateRate + delta)
	if delta < 0 {
		s.lastCommand = CommandDecRate
	} else {
		s.lastCommand = CommandIncRate
	}
	s.editRenderReady.signal()
}

// ToggleTopology switches between a toroidal and a walled board. Only
// meaningful before the simulation starts.
func (s *State) ToggleTopology() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toroidal = !s.toroidal
	s.lastCommand = CommandToggleGeometry
	s.editRenderReady.signal()
}

// FinishInput ends the setup phase. Later calls do nothing.
func (s *State) FinishInput() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inputOver.Load() {
		return
	}
	s.lastCommand = CommandStartGame
	s.inputOver.Store(true)
	s.editRenderReady.broadcast()
}

// InputOver reports whether the setup phase has ended
func (s *State) InputOver() bool {
	return s.inputOver.Load()
}

// Finished reports whether the simulation has reached a terminal state
func (s *State) Finished() bool {
	return s.finished.Load()
}

// Cursor returns the cursor position
func (s *State) Cursor() (row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row, s.col
}

// UpdateRate returns the generations per second
func (s *State) UpdateRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRate
}

// Toroidal reports the board topology
func (s *State) Toroidal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toroidal
}

// Counters returns a copy of the progress counters
func (s *State) Counters() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters
}

// Outcome returns how the simulation ended, or Running
func (s *State) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// LastCommand returns the most recent setup command
func (s *State) LastCommand() Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommand
}

// CellAlive reports the state of one board cell
func (s *State) CellAlive(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Get(row, col)
}

// drawBoardLocked draws every cell; mu must be held
func (s *State) drawBoardLocked(d model.Display) {
	for r := range s.board.Rows() {
		for c := range s.board.Cols() {
			d.DrawCell(r, c, s.board.Get(r, c))
		}
	}
}
