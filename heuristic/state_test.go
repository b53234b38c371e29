package heuristic

import (
	"capture/distance"
	"capture/game"
)

type mockBoard struct {
	width, height int
	walls         map[game.Position]bool
}

func (m mockBoard) Width() int  { return m.width }
func (m mockBoard) Height() int { return m.height }

func (m mockBoard) IsWall(p game.Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Row >= m.height || p.Col >= m.width {
		return true
	}
	return m.walls[p]
}

type mockState struct {
	board     game.Board
	locations []game.Location
	food      []game.Position
	pacman    map[int]bool
	opponents []game.Opponent
}

func (m mockState) LegalActions() []game.Action { return nil }

func (m mockState) Successor(game.Action) (game.State, error) { return nil, game.ErrGameOver }

func (m mockState) AgentLocations() []game.Location { return m.locations }
func (m mockState) Food(int) []game.Position        { return m.food }
func (m mockState) FoodCount(int) int               { return len(m.food) }
func (m mockState) IsPacman(agent int) bool         { return m.locations[agent].Known && m.pacman[agent] }
func (m mockState) IsGhost(agent int) bool          { return m.locations[agent].Known && !m.pacman[agent] }
func (m mockState) Opponents(int) []game.Opponent   { return m.opponents }
func (m mockState) Board() game.Board               { return m.board }

func openBoard(width, height int) mockBoard {
	return mockBoard{width: width, height: height}
}

// newMockState places agent 0 at self on an open 10x5 board.
func newMockState(self game.Position, food ...game.Position) mockState {
	return mockState{
		board:     openBoard(10, 5),
		locations: []game.Location{game.At(self), game.Unknown},
		food:      food,
		pacman:    map[int]bool{},
	}
}

func manhattan(a, b game.Position, _ game.State) (int, error) {
	return game.ManhattanDistance(a, b), nil
}

func newCache() *distance.Cache {
	return distance.NewCache(manhattan)
}

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func opponent(index int, p game.Position, invading, scared bool) game.Opponent {
	return game.Opponent{Index: index, Location: game.At(p), Invading: invading, Scared: scared}
}
