package agent

import (
	"errors"

	"capture/experiments/metrics"
	"capture/game"
)

var ErrNoLegalActions = errors.New("no legal actions")

type Agent interface {
	// SelectMove returns the action to play in state and the metrics (if
	// collected) of the decision
	SelectMove(state game.State) (game.Action, metrics.DecisionMetric, error)
}
