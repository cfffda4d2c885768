package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine advances a board one generation at a time
type Engine struct {
	workers int
	pool    *PaddedPool
}

var sequential = NewEngine(1, nil)

// NewEngine returns an engine splitting rows across workers goroutines
// (0 means one per CPU). pool may be nil.
func NewEngine(workers int, pool *PaddedPool) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers, pool: pool}
}

// Step applies one generation to board with the sequential engine
func Step(board *Board, toroidal bool) int {
	return sequential.Step(board, toroidal)
}

// Step applies one generation of the rules to board and returns how many
// cells changed state. Zero means the board has reached a steady state.
func (e *Engine) Step(board *Board, toroidal bool) int {
	var snap *PaddedGrid
	if e.pool != nil {
		snap = e.pool.Get(board.rows, board.cols)
		defer e.pool.Put(snap)
	} else {
		snap = newPaddedGrid(board.rows, board.cols)
	}
	board.SnapshotInto(snap, toroidal)

	// rebuilt below from the snapshot
	board.Clear()

	if e.workers == 1 || board.rows == 1 {
		return stepRows(board, snap, 0, board.rows)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, board.rows)
		rowsPerWorker = (board.rows + numWorkers - 1) / numWorkers // Ceiling division
		changed       = make([]int, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, board.rows)
		)
		if startRow >= board.rows {
			break
		}

		eg.Go(func() error {
			changed[i] = stepRows(board, snap, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait()

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

// stepRows writes rows [startRow, endRow) of the next generation into board
func stepRows(board *Board, snap *PaddedGrid, startRow, endRow int) (changed int) {
	for r := startRow; r < endRow; r++ {
		for c := range board.cols {
			was := snap.Interior(r, c)
			next := rules.ApplyConwayRules(snap.CountLiveNeighbors(r, c), was)
			if next != was {
				changed++
			}
			board.cells[r*board.cols+c] = next
		}
	}
	return
}
