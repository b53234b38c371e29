package engine

import (
	"fmt"
	"time"

	"capture/agent"
	"capture/experiments/metrics"
	"capture/game"
	"capture/heuristic"
	"capture/logger"

	"github.com/google/uuid"
)

type Option func(l *Local)

// WithObserver adds an observer notified after every move.
func WithObserver(o Observer) Option {
	return func(l *Local) {
		if o != nil {
			l.observers = append(l.observers, o)
		}
	}
}

// WithTeamNames labels the teams in the game metric.
func WithTeamNames(red, blue string) Option {
	return func(l *Local) {
		l.red = red
		l.blue = blue
	}
}

// WithMatchID overrides the generated match ID.
func WithMatchID(id string) Option {
	return func(l *Local) {
		if id != "" {
			l.id = id
		}
	}
}

var _ Engine = (*Local)(nil)

// Local runs a match in process, one agent per engine slot.
type Local struct {
	id        string
	State     *game.GameState
	Agents    []agent.Agent
	red       string
	blue      string
	observers []Observer
}

func NewLocal(state *game.GameState, agents []agent.Agent, options ...Option) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("layout has %d agents, got %d", state.NumAgents(), len(agents)))
	}
	l := &Local{
		id:     uuid.NewString(),
		State:  state,
		Agents: agents,
		red:    game.Red.String(),
		blue:   game.Blue.String(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// NewMatch seats the team of red on the even slots and the team of blue
// on the odd slots, alternating collector and guardian along each team.
func NewMatch(state *game.GameState, red, blue heuristic.Profile, agentOptions []agent.Option, options ...Option) *Local {
	teams := [][]agent.Info{agent.CreateTeam(red), agent.CreateTeam(blue)}
	agents := make([]agent.Agent, state.NumAgents())
	for slot := range agents {
		team := teams[game.TeamOf(slot)]
		agents[slot] = agent.New(team[(slot/2)%len(team)], slot, agentOptions...)
	}
	options = append([]Option{WithTeamNames(red.Name, blue.Name)}, options...)
	return NewLocal(state, agents, options...)
}

func (l *Local) ID() string {
	return l.id
}

// Run executes the entire game loop until the match is over. Agent and
// engine errors abort the match.
func (l *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		MatchID:   l.id,
		Red:       l.red,
		Blue:      l.blue,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	matchLog := logger.ForMatch(l.id)
	matchLog.Info().Str("red", l.red).Str("blue", l.blue).Msg("match started")

	for !l.State.Over() {
		current := l.State.CurrentAgent()
		action, decision, err := l.Agents[current].SelectMove(l.State.ObservedBy(current))
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent %d at turn %d: %w", current, l.State.Turn(), err)
		}

		next, err := l.State.Play(action)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent %d at turn %d: %w", current, l.State.Turn(), err)
		}
		l.State = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:           next.Turn(),
			Agent:          current,
			Role:           roleOf(l.Agents[current]),
			Action:         action.String(),
			DecisionMetric: decision,
		})

		update := Update{Step: next.Turn(), Frame: next.Frame()}
		for _, o := range l.observers {
			o.Observe(l.id, update)
		}
	}

	winner := l.State.Winner()
	gameMetric.Winner = winner
	gameMetric.Score = l.State.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = l.State.Turn()

	result := Result{Winner: winner, Score: l.State.Score(), Moves: l.State.Turn()}
	for _, o := range l.observers {
		o.End(l.id, result)
	}

	matchLog.Info().
		Str("winner", winner).
		Int("score", result.Score).
		Int("moves", result.Moves).
		Dur("duration", gameMetric.Duration).
		Msg("match over")

	return winner, gameMetric, moveMetrics, nil
}

func roleOf(a agent.Agent) string {
	if g, ok := a.(*agent.Greedy); ok {
		return g.Role().String()
	}
	return "random"
}
