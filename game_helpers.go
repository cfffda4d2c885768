package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfiguration reads the first config file found, falling back to
// defaults when there is none, then applies positional arguments
func loadConfiguration(args []string, paths []string) (utils.Config, []string, error) {
	config := utils.DefaultConfig()
	var notes []string

	if path := utils.FindConfig(paths); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, notes, err
		}
		config = loaded
		notes = append(notes, "loaded configuration from "+path)
	} else {
		notes = append(notes, "using default configuration (no config file found)")
	}

	for _, arg := range config.ApplyArgs(args) {
		notes = append(notes, "ignoring argument "+arg)
	}

	if err := config.Validate(); err != nil {
		return config, notes, err
	}
	return config, notes, nil
}

// initializeBoard creates the board and seeds any configured patterns
func initializeBoard(config utils.Config, logger *log.Logger) (*model.Board, error) {
	board, err := model.NewBoard(config.Rows, config.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeBoard] failed to create board")
	}

	for _, p := range config.Patterns {
		if err := board.PlacePattern(p.Name, p.Row, p.Col); err != nil {
			logger.Printf("skipping pattern: %v", err)
		}
	}
	board.Randomize(config.RandomDensity, rand.New(rand.NewSource(time.Now().UnixNano())))

	return board, nil
}

// initializeEngine builds the update engine the config asks for
func initializeEngine(config utils.Config) *model.Engine {
	var pool *model.PaddedPool
	if config.UseMemoryPool {
		pool = model.NewPaddedPool()
	}
	return model.NewEngine(config.Workers, pool)
}

// playGame runs both phases back to back, then waits for a last key
func playGame(
	state *game.State,
	display model.Display,
	input model.Input,
	engine *model.Engine,
	config utils.Config,
) (game.Outcome, error) {
	setup := game.NewSetupCoordinator(state, display, input).WithRefreshHz(config.SetupRefreshHz)
	if err := setup.Run(); err != nil {
		return game.Running, errors.Wrap(err, "[playGame] setup phase failed")
	}

	outcome, err := game.NewSimulationCoordinator(state, display, engine).Run()
	if err != nil {
		return outcome, errors.Wrap(err, "[playGame] simulation phase failed")
	}

	// press any key to exit
	input.NextKey()
	return outcome, nil
}
