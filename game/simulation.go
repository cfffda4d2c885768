package game

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// SimulationCoordinator runs the simulation phase. The compute goroutine
// never gets more than one generation ahead of the render goroutine.
type SimulationCoordinator struct {
	state   *State
	display model.Display
	engine  *model.Engine
	stats   *utils.Stats
}

func NewSimulationCoordinator(state *State, display model.Display, engine *model.Engine) *SimulationCoordinator {
	if engine == nil {
		engine = model.NewEngine(1, nil)
	}
	return &SimulationCoordinator{
		state:   state,
		display: display,
		engine:  engine,
		stats:   utils.NewStats(),
	}
}

// Stats returns the statistics gathered by the render goroutine. Only
// read it after Run has returned.
func (sc *SimulationCoordinator) Stats() *utils.Stats {
	return sc.stats
}

// Run returns once the simulation has reached a terminal state and its
// final frame has been drawn
func (sc *SimulationCoordinator) Run() (Outcome, error) {
	var eg errgroup.Group
	eg.Go(sc.compute)
	eg.Go(sc.render)
	if err := eg.Wait(); err != nil {
		return Running, err
	}

	s := sc.state
	outcome := s.Outcome()
	c := s.Counters()
	s.logger.Printf("simulation over: %s computed=%d rendered=%d", outcome, c.Computed, c.Rendered)
	return outcome, nil
}

// finishLocked ends the run; mu must be held
func (s *State) finishLocked(o Outcome) {
	if s.finished.Load() {
		return
	}
	s.outcome = o
	s.finished.Store(true)
	s.renderReady.broadcast()
	s.computeReady.broadcast()
}

func (sc *SimulationCoordinator) compute() error {
	s := sc.state
	for {
		s.mu.Lock()
		for !s.finished.Load() && s.counters.Rendered != s.counters.Computed {
			s.computeReady.waitTimeout(s.waitTimeout)
		}
		if s.finished.Load() {
			s.mu.Unlock()
			return nil
		}
		if s.counters.Computed >= s.maxIterations {
			s.finishLocked(IterationCapReached)
			s.mu.Unlock()
			return nil
		}

		changed := sc.engine.Step(s.board, s.toroidal)
		s.counters.Computed++
		switch {
		case changed == 0:
			s.finishLocked(SteadyState)
		case s.counters.Computed >= s.maxIterations:
			s.finishLocked(IterationCapReached)
		}
		rate := s.updateRate
		s.renderReady.signal()
		s.mu.Unlock()

		if s.finished.Load() {
			return nil
		}
		time.Sleep(time.Second / time.Duration(rate))
	}
}

func (sc *SimulationCoordinator) render() error {
	var (
		s = sc.state
		d = sc.display
	)

	s.mu.Lock()
	rows := s.board.Rows()
	cmd := s.lastCommand
	params := paramsText(s.toroidal, s.updateRate, s.maxIterations)
	s.drawBoardLocked(d)
	s.mu.Unlock()

	d.PrintStatusLine(headerRow, iterationText(0))
	d.PrintStatusLine(hintRow, "")
	d.PrintStatusLine(lastCommandRow(rows), lastCommandText(cmd))
	d.PrintStatusLine(paramsRow(rows), params)
	d.Refresh()

	for {
		s.mu.Lock()
		for !s.finished.Load() && s.counters.Rendered >= s.counters.Computed {
			s.computeReady.signal()
			s.renderReady.waitTimeout(s.waitTimeout)
		}

		var (
			drew       bool
			generation int
			population int
		)
		if s.counters.Rendered < s.counters.Computed {
			s.drawBoardLocked(d)
			s.counters.Rendered++
			generation = s.counters.Rendered
			population = s.board.CountLiving()
			drew = true
		}
		done := s.finished.Load() && s.counters.Rendered >= s.counters.Computed
		outcome := s.outcome
		s.computeReady.signal()
		s.mu.Unlock()

		if drew {
			d.PrintStatusLine(headerRow, iterationText(generation))
			sc.stats.Update(generation, population)
		}
		if done {
			d.PrintStatusLine(hintRow, gameOverText(outcome))
			d.PrintStatusLine(statsRow(rows), sc.stats.Summary())
			d.Refresh()
			return nil
		}
		d.Refresh()
	}
}
