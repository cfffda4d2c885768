package game

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// DefaultSetupRefreshHz caps how often the setup screen is redrawn, so a
// held-down key does not turn into a redraw per repeat
const DefaultSetupRefreshHz = 120

// setupView is what the setup renderer last put on screen
type setupView struct {
	row, col   int
	updateRate int
	edits      int
	toroidal   bool
	command    Command
}

func (s *State) setupViewLocked() setupView {
	return setupView{
		row:        s.row,
		col:        s.col,
		updateRate: s.updateRate,
		edits:      s.counters.Edits,
		toroidal:   s.toroidal,
		command:    s.lastCommand,
	}
}

// SetupCoordinator runs the edit phase: one goroutine turns key presses
// into state changes, another redraws whenever they become visible
type SetupCoordinator struct {
	state     *State
	display   model.Display
	input     model.Input
	refreshHz int
}

func NewSetupCoordinator(state *State, display model.Display, input model.Input) *SetupCoordinator {
	return &SetupCoordinator{
		state:     state,
		display:   display,
		input:     input,
		refreshHz: DefaultSetupRefreshHz,
	}
}

// WithRefreshHz overrides the redraw cap
func (sc *SetupCoordinator) WithRefreshHz(hz int) *SetupCoordinator {
	if hz > 0 {
		sc.refreshHz = hz
	}
	return sc
}

// Run returns once the user has confirmed (or input has ended) and the
// renderer has erased the cursor
func (sc *SetupCoordinator) Run() error {
	var eg errgroup.Group
	eg.Go(sc.readInput)
	eg.Go(sc.render)
	err := eg.Wait()

	sc.state.logger.Printf("setup over: edits=%d toroidal=%v rate=%d",
		sc.state.Counters().Edits, sc.state.Toroidal(), sc.state.UpdateRate())
	return err
}

func (sc *SetupCoordinator) readInput() error {
	defer sc.state.FinishInput()

	for !sc.state.InputOver() {
		switch sc.input.NextKey() {
		case model.KeyLeft:
			sc.state.MoveCursor(0, -1)
		case model.KeyRight:
			sc.state.MoveCursor(0, 1)
		case model.KeyUp:
			sc.state.MoveCursor(-1, 0)
		case model.KeyDown:
			sc.state.MoveCursor(1, 0)
		case model.KeyToggleCell:
			sc.state.ToggleCell()
		case model.KeyIncRate:
			sc.state.AdjustRate(1)
		case model.KeyDecRate:
			sc.state.AdjustRate(-1)
		case model.KeyToggleTopology:
			sc.state.ToggleTopology()
		case model.KeyConfirm, model.KeyEndOfInput:
			return nil
		}
	}
	return nil
}

func (sc *SetupCoordinator) render() error {
	var (
		s        = sc.state
		d        = sc.display
		throttle = time.Second / time.Duration(sc.refreshHz)
	)

	s.mu.Lock()
	shown := s.setupViewLocked()
	rows, cols, maxIter := s.board.Rows(), s.board.Cols(), s.maxIterations
	d.PrintStatusLine(headerRow, setupHelp)
	d.PrintStatusLine(hintRow, setupHint)
	d.DrawBorder(rows, cols)
	s.drawBoardLocked(d)
	s.mu.Unlock()

	d.DrawCursor(shown.row, shown.col, false)
	d.PrintStatusLine(paramsRow(rows), paramsText(shown.toroidal, shown.updateRate, maxIter))
	d.PrintStatusLine(lastCommandRow(rows), lastCommandText(shown.command))
	d.Refresh()

	for {
		s.mu.Lock()
		for !s.inputOver.Load() && s.setupViewLocked() == shown {
			s.editRenderReady.waitTimeout(s.waitTimeout)
		}
		next := s.setupViewLocked()
		over := s.inputOver.Load()
		s.drawBoardLocked(d)
		s.mu.Unlock()

		d.DrawCursor(shown.row, shown.col, true)
		d.DrawCursor(next.row, next.col, false)
		d.PrintStatusLine(paramsRow(rows), paramsText(next.toroidal, next.updateRate, maxIter))
		d.PrintStatusLine(lastCommandRow(rows), lastCommandText(next.command))
		d.Refresh()
		shown = next

		if over {
			break
		}
		time.Sleep(throttle)
	}

	// the run phase draws no cursor
	d.DrawCursor(shown.row, shown.col, true)
	d.Refresh()
	return nil
}
