package heuristic

import "capture/game"

// BorderColumn is the column a guardian patrols. Teammates with odd indices
// watch the column one step further right.
func BorderColumn(width, agent int) int {
	col := width / 2
	if agent%2 == 1 {
		col++
	}
	return col
}

// BorderCells returns the open cells of the agent's border column, top to
// bottom. A column outside the board has no cells.
func BorderCells(board game.Board, agent int) []game.Position {
	col := BorderColumn(board.Width(), agent)
	if col < 0 || col >= board.Width() {
		return nil
	}
	var cells []game.Position
	for row := 0; row < board.Height(); row++ {
		p := game.Position{Row: row, Col: col}
		if !board.IsWall(p) {
			cells = append(cells, p)
		}
	}
	return cells
}
