package game

// Command is the last setup action, shown under the board
type Command int

const (
	CommandEmpty Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandIncRate
	CommandDecRate
	CommandStartGame
	CommandSpawn
	CommandToggleGeometry
)

var commandLabels = map[Command]string{
	CommandEmpty:          "EMPTY",
	CommandMoveLeft:       "MOVE LEFT",
	CommandMoveRight:      "MOVE RIGHT",
	CommandMoveUp:         "MOVE UP",
	CommandMoveDown:       "MOVE DOWN",
	CommandIncRate:        "INC UPDATE RATE",
	CommandDecRate:        "DEC UPDATE RATE",
	CommandStartGame:      "START GAME",
	CommandSpawn:          "SPAWN/KILL",
	CommandToggleGeometry: "CHANGE GEOMETRY",
}

func (c Command) String() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return "UNKNOWN"
}

// Outcome is how a simulation run ended
type Outcome int

const (
	Running Outcome = iota
	SteadyState
	IterationCapReached
)

func (o Outcome) String() string {
	switch o {
	case SteadyState:
		return "steady state"
	case IterationCapReached:
		return "iteration cap reached"
	}
	return "running"
}
