package game

import "errors"

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrGameOver      = errors.New("game is over")
	ErrUnreachable   = errors.New("unreachable position")
)

// Board is the static maze.
type Board interface {
	Width() int
	Height() int
	IsWall(p Position) bool
}

// State is a read-only snapshot of a capture game as seen by one team.
// Successor applies an action for the agent whose turn it is and never
// mutates the receiver.
type State interface {
	LegalActions() []Action
	Successor(action Action) (State, error)
	// AgentLocations is indexed by agent. Agents that cannot be observed
	// are Unknown.
	AgentLocations() []Location
	// Food returns the food the agent's team is trying to eat.
	Food(agent int) []Position
	FoodCount(agent int) int
	IsPacman(agent int) bool
	IsGhost(agent int) bool
	Opponents(agent int) []Opponent
	Board() Board
}

// Evaluate scores a successor state reached by action, higher is better.
type Evaluate func(s State, action Action) (float64, error)

// InvaderPositions returns the visible opponents inside the agent's territory.
func InvaderPositions(s State, agent int) []Position {
	return opponentPositions(s, agent, func(o Opponent) bool { return o.Invading })
}

// NonInvadingPositions returns the visible opponents that have not crossed over.
func NonInvadingPositions(s State, agent int) []Position {
	return opponentPositions(s, agent, func(o Opponent) bool { return !o.Invading })
}

// OpponentPositions returns every visible opponent.
func OpponentPositions(s State, agent int) []Position {
	return opponentPositions(s, agent, func(Opponent) bool { return true })
}

// NonScaredOpponentPositions returns the visible opponents that are dangerous to touch.
func NonScaredOpponentPositions(s State, agent int) []Position {
	return opponentPositions(s, agent, func(o Opponent) bool { return !o.Scared })
}

func opponentPositions(s State, agent int, keep func(Opponent) bool) []Position {
	var positions []Position
	for _, o := range s.Opponents(agent) {
		if o.Location.Known && keep(o) {
			positions = append(positions, o.Location.Pos)
		}
	}
	return positions
}
