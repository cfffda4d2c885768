package rules

// MaxNeighbors is the size of the Moore neighbourhood
const MaxNeighbors = 8

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

Birth on 3, survival on 2 or 3; fewer than 2 or more than 3 always means death,
so the two cases below are exhaustive.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
