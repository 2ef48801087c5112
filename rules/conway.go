package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 living neighbours is born. A living cell with fewer than 2 or
more than 3 living neighbours dies. Every other cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if !alive {
		return neighbors == 3
	}
	return neighbors == 2 || neighbors == 3
}
