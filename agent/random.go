package agent

import (
	"capture/experiments/metrics"
	"capture/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal action. It is the floor every
// profile should beat.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) SelectMove(state game.State) (game.Action, metrics.DecisionMetric, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Stop, metrics.DecisionMetric{}, ErrNoLegalActions
	}
	return actions[r.rng.Intn(len(actions))], metrics.DecisionMetric{Candidates: len(actions)}, nil
}
