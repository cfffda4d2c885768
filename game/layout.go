package game

import (
	"fmt"

	"github.com/sheikhrachel/go-life/model"
)

const (
	headerRow = 0
	hintRow   = 1

	setupHelp = "Move: WASD | adjust update rate: q/e or +/- | spawn: f or SPACE"
	setupHint = "Change Geometry: T | Start game: ENTER or ESCAPE"

	steadyStateText = "GAME OVER: steady state detected. Press any key to exit."
	iterCapText     = "GAME OVER: Max iterations reached. Press any key to exit."
)

// status lines sit just below the bottom border
func lastCommandRow(rows int) int { return model.BoardOriginY + rows + 1 }
func paramsRow(rows int) int { return model.BoardOriginY + rows + 2 }
func statsRow(rows int) int { return model.BoardOriginY + rows + 3 }

func geometryLabel(toroidal bool) string {
	if toroidal {
		return "TOROIDAL"
	}
	return "FLAT/WALLED"
}

func paramsText(toroidal bool, rate, maxIterations int) string {
	return fmt.Sprintf("Update rate:%3d /s | maxiters: %4d | Board geometry: %s",
		rate, maxIterations, geometryLabel(toroidal))
}

func lastCommandText(c Command) string {
	return "Last command: " + c.String()
}

func iterationText(n int) string {
	return fmt.Sprintf("ITERATION: %d", n)
}

func gameOverText(o Outcome) string {
	if o == SteadyState {
		return steadyStateText
	}
	return iterCapText
}
