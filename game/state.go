package game

import (
	"fmt"
	"sort"

	"capture/meta"
)

type Team int

const (
	Red Team = iota
	Blue
)

func (t Team) String() string {
	if t == Red {
		return "Red"
	}
	return "Blue"
}

// TeamOf returns the team of an agent: even indices play red, odd blue.
func TeamOf(agent int) Team {
	return Team(agent % 2)
}

type agentState struct {
	pos      Position
	scared   int  // own moves left while scared
	captured bool // captured by the move that produced this state
}

// GameState is the reference capture engine. Red defends the columns left
// of width/2 and blue the rest. An agent outside its home half is a pacman.
type GameState struct {
	layout     *Layout
	agents     []agentState
	food       []bool // indexed like the layout grid
	capsules   []bool
	current    int
	observer   int // -1 sees everything
	sightRange int
	maxTurns   int
	turn       int
	score      int // red minus blue
	lastAction Action
}

type StateOption func(gs *GameState)

// WithSightRange hides opponents further than r (manhattan) from every
// agent of the observing team.
func WithSightRange(r int) StateOption {
	return func(gs *GameState) {
		if r > 0 {
			gs.sightRange = r
		}
	}
}

func WithMaxTurns(n int) StateOption {
	return func(gs *GameState) {
		if n > 0 {
			gs.maxTurns = n
		}
	}
}

// NewGameState places every agent on its start cell with agent 0 to move.
func NewGameState(layout *Layout, options ...StateOption) *GameState {
	gs := &GameState{
		layout:     layout,
		agents:     make([]agentState, layout.NumAgents()),
		food:       make([]bool, layout.width*layout.height),
		capsules:   make([]bool, layout.width*layout.height),
		observer:   -1,
		sightRange: meta.SightRange,
		maxTurns:   meta.MaxTurns,
	}
	for i := range gs.agents {
		gs.agents[i].pos = layout.Start(i)
	}
	for _, p := range layout.food {
		gs.food[layout.index(p)] = true
	}
	for _, p := range layout.capsules {
		gs.capsules[layout.index(p)] = true
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

func (gs *GameState) Copy() *GameState {
	agents := make([]agentState, len(gs.agents))
	copy(agents, gs.agents)
	food := make([]bool, len(gs.food))
	copy(food, gs.food)
	capsules := make([]bool, len(gs.capsules))
	copy(capsules, gs.capsules)

	c := *gs
	c.agents = agents
	c.food = food
	c.capsules = capsules
	return &c
}

// ObservedBy returns a copy of the state as seen by the team of agent.
func (gs *GameState) ObservedBy(agent int) *GameState {
	c := gs.Copy()
	c.observer = agent
	return c
}

func (gs *GameState) Board() Board       { return gs.layout }
func (gs *GameState) CurrentAgent() int  { return gs.current }
func (gs *GameState) NumAgents() int     { return len(gs.agents) }
func (gs *GameState) Turn() int          { return gs.turn }
func (gs *GameState) Score() int         { return gs.score }
func (gs *GameState) LastAction() Action { return gs.lastAction }

// ScaredTimer returns how many more own moves the agent stays scared.
func (gs *GameState) ScaredTimer(agent int) int {
	return gs.agents[agent].scared
}

// Position returns the true position of an agent regardless of visibility.
func (gs *GameState) Position(agent int) Position {
	return gs.agents[agent].pos
}

// HomeTeam returns the team that owns column col.
func (gs *GameState) HomeTeam(col int) Team {
	if col < gs.layout.width/2 {
		return Red
	}
	return Blue
}

func (gs *GameState) LegalActions() []Action {
	if gs.Over() {
		return nil
	}
	pos := gs.agents[gs.current].pos
	actions := []Action{Stop}
	for _, a := range Actions[1:] {
		if !gs.layout.IsWall(pos.Add(a)) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (gs *GameState) isLegal(action Action) bool {
	for _, a := range gs.LegalActions() {
		if a == action {
			return true
		}
	}
	return false
}

func (gs *GameState) Successor(action Action) (State, error) {
	next, err := gs.Play(action)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Play applies action for the current agent and returns the new state.
func (gs *GameState) Play(action Action) (*GameState, error) {
	if gs.Over() {
		return nil, ErrGameOver
	}
	if !gs.isLegal(action) {
		return nil, fmt.Errorf("agent %d cannot play %v from %v: %w", gs.current, action, gs.agents[gs.current].pos, ErrIllegalAction)
	}

	next := gs.Copy()
	for i := range next.agents {
		next.agents[i].captured = false
	}

	mover := next.current
	next.agents[mover].pos = next.agents[mover].pos.Add(action)
	next.eat(mover)
	next.resolveCollisions(mover)

	if next.agents[mover].scared > 0 {
		next.agents[mover].scared--
	}
	next.lastAction = action
	next.turn++
	next.current = (mover + 1) % len(next.agents)
	return next, nil
}

func (gs *GameState) eat(agent int) {
	if !gs.isPacman(agent) {
		return
	}
	i := gs.layout.index(gs.agents[agent].pos)
	if gs.food[i] {
		gs.food[i] = false
		if TeamOf(agent) == Red {
			gs.score++
		} else {
			gs.score--
		}
	}
	if gs.capsules[i] {
		gs.capsules[i] = false
		for o := range gs.agents {
			if TeamOf(o) != TeamOf(agent) {
				gs.agents[o].scared = meta.ScaredTime
			}
		}
	}
}

func (gs *GameState) resolveCollisions(mover int) {
	for o := range gs.agents {
		if TeamOf(o) == TeamOf(mover) || gs.agents[o].pos != gs.agents[mover].pos {
			continue
		}
		pacman, ghost := mover, o
		if !gs.isPacman(mover) {
			pacman, ghost = o, mover
		}
		if !gs.isPacman(pacman) {
			continue
		}
		if gs.agents[ghost].scared > 0 {
			gs.respawn(ghost)
		} else {
			gs.respawn(pacman)
		}
		if gs.agents[mover].captured {
			return
		}
	}
}

func (gs *GameState) respawn(agent int) {
	gs.agents[agent] = agentState{pos: gs.layout.Start(agent), captured: true}
}

func (gs *GameState) isPacman(agent int) bool {
	return gs.HomeTeam(gs.agents[agent].pos.Col) != TeamOf(agent)
}

// Over reports whether either team has run out of food to eat or the turn
// limit is reached.
func (gs *GameState) Over() bool {
	if gs.turn >= gs.maxTurns {
		return true
	}
	return gs.foodFor(Red) == 0 || gs.foodFor(Blue) == 0
}

// Winner returns "Red", "Blue" or "" for a tie.
func (gs *GameState) Winner() string {
	switch {
	case gs.score > 0:
		return Red.String()
	case gs.score < 0:
		return Blue.String()
	default:
		return ""
	}
}

func (gs *GameState) visible(agent int) bool {
	a := gs.agents[agent]
	if a.captured {
		return false
	}
	if gs.observer < 0 || gs.sightRange <= 0 || TeamOf(agent) == TeamOf(gs.observer) {
		return true
	}
	for i, mate := range gs.agents {
		if TeamOf(i) == TeamOf(gs.observer) && ManhattanDistance(mate.pos, a.pos) <= gs.sightRange {
			return true
		}
	}
	return false
}

func (gs *GameState) AgentLocations() []Location {
	locations := make([]Location, len(gs.agents))
	for i, a := range gs.agents {
		if gs.visible(i) {
			locations[i] = At(a.pos)
		}
	}
	return locations
}

// Food returns the food on the opposing team's side, sorted by position.
func (gs *GameState) Food(agent int) []Position {
	var food []Position
	for i, ok := range gs.food {
		if !ok {
			continue
		}
		p := Position{Row: i / gs.layout.width, Col: i % gs.layout.width}
		if gs.HomeTeam(p.Col) != TeamOf(agent) {
			food = append(food, p)
		}
	}
	sort.Slice(food, func(i, j int) bool { return food[i].Less(food[j]) })
	return food
}

func (gs *GameState) FoodCount(agent int) int {
	return gs.foodFor(TeamOf(agent))
}

func (gs *GameState) foodFor(team Team) int {
	count := 0
	for i, ok := range gs.food {
		if ok && gs.HomeTeam(i%gs.layout.width) != team {
			count++
		}
	}
	return count
}

// IsPacman reports whether a visible agent is inside enemy territory.
func (gs *GameState) IsPacman(agent int) bool {
	return gs.visible(agent) && gs.isPacman(agent)
}

// IsGhost reports whether a visible agent is inside its own territory.
func (gs *GameState) IsGhost(agent int) bool {
	return gs.visible(agent) && !gs.isPacman(agent)
}

func (gs *GameState) Opponents(agent int) []Opponent {
	var opponents []Opponent
	for o := range gs.agents {
		if TeamOf(o) == TeamOf(agent) {
			continue
		}
		opp := Opponent{Index: o, Scared: gs.agents[o].scared > 0}
		if gs.visible(o) {
			opp.Location = At(gs.agents[o].pos)
			opp.Invading = gs.isPacman(o)
		}
		opponents = append(opponents, opp)
	}
	return opponents
}

// Frame is a JSON snapshot of the full state for spectators.
type Frame struct {
	Turn     int        `json:"turn"`
	Agent    int        `json:"agent"`
	Action   string     `json:"action"`
	Score    int        `json:"score"`
	Agents   []Position `json:"agents"`
	Scared   []int      `json:"scared"`
	Food     []Position `json:"food"`
	Capsules []Position `json:"capsules"`
	Over     bool       `json:"over"`
}

// Frame describes the move that produced this state.
func (gs *GameState) Frame() Frame {
	f := Frame{
		Turn:   gs.turn,
		Agent:  (gs.current + len(gs.agents) - 1) % len(gs.agents),
		Action: gs.lastAction.String(),
		Score:  gs.score,
		Over:   gs.Over(),
	}
	for _, a := range gs.agents {
		f.Agents = append(f.Agents, a.pos)
		f.Scared = append(f.Scared, a.scared)
	}
	for i := range gs.food {
		p := Position{Row: i / gs.layout.width, Col: i % gs.layout.width}
		if gs.food[i] {
			f.Food = append(f.Food, p)
		}
		if gs.capsules[i] {
			f.Capsules = append(f.Capsules, p)
		}
	}
	return f
}
