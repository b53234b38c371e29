package agent

import (
	"math"

	"capture/distance"
	"capture/experiments/metrics"
	"capture/game"
	"capture/heuristic"

	"github.com/rs/zerolog/log"
)

type Option func(g *Greedy)

// Greedy plays the legal action whose successor evaluates highest.
type Greedy struct {
	index       int
	role        Role
	evaluate    game.Evaluate
	stopPenalty float64
	cache       *distance.Cache
	history     *heuristic.History
	metrics     metrics.Collector
}

// WithStopPenalty is subtracted from the score of standing still.
func WithStopPenalty(penalty float64) Option {
	return func(g *Greedy) {
		if penalty > 0 {
			g.stopPenalty = penalty
		}
	}
}

// WithHistory records the agent's own location at every decision.
func WithHistory(history *heuristic.History) Option {
	return func(g *Greedy) {
		g.history = history
	}
}

// WithCache reports the statistics of the evaluator's distance cache.
func WithCache(cache *distance.Cache) Option {
	return func(g *Greedy) {
		g.cache = cache
	}
}

func WithRole(role Role) Option {
	return func(g *Greedy) {
		g.role = role
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = metrics.NewCollector()
	}
}

func NewGreedy(index int, evaluate game.Evaluate, options ...Option) *Greedy {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	g := &Greedy{ // Default values
		index:    index,
		evaluate: evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// NewCollector builds the offensive agent for an engine slot. It owns its
// distance cache and move history.
func NewCollector(index int, weights heuristic.OffenseWeights, options ...Option) *Greedy {
	cache := distance.NewCache(game.MazeDistance)
	history := heuristic.NewHistory(weights.HistorySize())
	offense := heuristic.NewOffense(index, weights, cache, history)

	defaults := []Option{
		WithRole(Collector),
		WithCache(cache),
		WithHistory(history),
		WithStopPenalty(weights.StopPenalty),
	}
	return NewGreedy(index, offense.Evaluate, append(defaults, options...)...)
}

// NewGuardian builds the defensive agent for an engine slot.
func NewGuardian(index int, weights heuristic.DefenseWeights, options ...Option) *Greedy {
	cache := distance.NewCache(game.MazeDistance)
	defense := heuristic.NewDefense(index, weights, cache)

	defaults := []Option{
		WithRole(Guardian),
		WithCache(cache),
	}
	return NewGreedy(index, defense.Evaluate, append(defaults, options...)...)
}

func (g *Greedy) Index() int { return g.index }
func (g *Greedy) Role() Role { return g.role }

// SelectMove scans the legal actions in order and keeps the first one with
// the highest score. When every action scores -Inf the first one is played.
// Engine and evaluator errors are returned as is.
func (g *Greedy) SelectMove(state game.State) (game.Action, metrics.DecisionMetric, error) {
	g.metrics.Start()
	if g.history != nil {
		g.history.Push(state.AgentLocations()[g.index])
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Stop, metrics.DecisionMetric{}, ErrNoLegalActions
	}

	best := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		successor, err := state.Successor(action)
		if err != nil {
			return game.Stop, metrics.DecisionMetric{}, err
		}
		score, err := g.evaluate(successor, action)
		if err != nil {
			return game.Stop, metrics.DecisionMetric{}, err
		}
		if action == game.Stop {
			score -= g.stopPenalty
		}
		g.metrics.AddCandidate(score)

		if score > bestScore {
			best = action
			bestScore = score
		}
	}

	if g.cache != nil {
		hits, misses := g.cache.Stats()
		g.metrics.SetCache(hits, misses, g.cache.Len())
	}

	log.Debug().
		Int("agent", g.index).
		Str("role", g.role.String()).
		Str("action", best.String()).
		Float64("score", bestScore).
		Int("candidates", len(actions)).
		Msg("selected move")

	return best, g.metrics.Complete(), nil
}
