package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, notes, err := loadConfiguration(args, utils.DefaultConfigPaths)
	if err != nil {
		return err
	}

	logger, closer, err := utils.NewLogger(config.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	for _, note := range notes {
		logger.Println(note)
	}

	board, err := initializeBoard(config, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}
	defer screen.Fini()
	screen.Clear()

	state := game.NewState(board, config.UpdateRate, config.MaxIterations, config.Toroidal,
		game.WithWaitTimeout(config.WaitTimeout()),
		game.WithLogger(logger),
	)

	outcome, err := playGame(
		state,
		model.NewTerminalRenderer(screen),
		model.NewTerminalInput(screen),
		initializeEngine(config),
		config,
	)
	if err != nil {
		return err
	}
	logger.Printf("exiting after %s", outcome)
	return nil
}
