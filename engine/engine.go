package engine

import (
	"capture/experiments/metrics"
	"capture/game"
)

type Engine interface {
	// Run plays a match until it is over and returns the winner, "Red",
	// "Blue" or "" for a tie
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Observer is notified after every move of a match.
type Observer interface {
	Observe(matchID string, update Update)
	End(matchID string, result Result)
}

// Update is one move and the full state it produced.
type Update struct {
	Step  int        `json:"step"`
	Frame game.Frame `json:"frame"`
}

type Result struct {
	Winner string `json:"winner"`
	Score  int    `json:"score"`
	Moves  int    `json:"moves"`
}
