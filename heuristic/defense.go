package heuristic

import (
	"math"

	"capture/distance"
	"capture/game"
	"capture/utils"
)

// Defense scores successor states for the guardian.
type Defense struct {
	index   int
	weights DefenseWeights
	cache   *distance.Cache
}

func NewDefense(index int, weights DefenseWeights, cache *distance.Cache) *Defense {
	return &Defense{
		index:   index,
		weights: weights,
		cache:   cache,
	}
}

func (d *Defense) Evaluate(s game.State, _ game.Action) (float64, error) {
	self := s.AgentLocations()[d.index]
	if !self.Known {
		return math.Inf(-1), nil
	}

	invaders := game.InvaderPositions(s, d.index)
	threats := game.NonInvadingPositions(s, d.index)

	score := -float64(len(invaders)) * d.weights.Invader
	if len(invaders) > 0 {
		nearest := math.MaxInt
		for _, i := range invaders {
			dist, err := d.cache.Distance(i, self.Pos, s)
			if err != nil {
				return 0, err
			}
			nearest = min(nearest, dist)
		}
		score -= float64(nearest) * d.weights.Chase
	} else if len(threats) > 0 {
		intercept, err := d.intercept(s, self.Pos, threats)
		if err != nil {
			return 0, err
		}
		score -= intercept
	}

	if s.IsPacman(d.index) {
		score -= d.weights.PacmanPenalty
	}
	return score, nil
}

// intercept compares, for the border cells level with each threat, how much
// earlier the guardian reaches the cell than the threat does.
func (d *Defense) intercept(s game.State, pos game.Position, threats []game.Position) (float64, error) {
	border := BorderCells(s.Board(), d.index)
	if len(border) == 0 {
		return 0, nil
	}

	var values []int
	for _, g := range threats {
		candidates := utils.SmallestN(border, d.weights.BorderCandidates, func(b game.Position) int {
			return abs(b.Row - g.Row)
		})
		for _, b := range candidates {
			mine, err := d.cache.Distance(pos, b, s)
			if err != nil {
				return 0, err
			}
			theirs, err := d.cache.Distance(g, b, s)
			if err != nil {
				return 0, err
			}
			if d.weights.Intercept == InterceptNearestCrossing {
				values = append(values, mine+theirs)
			} else {
				values = append(values, mine-theirs)
			}
		}
	}

	if d.weights.Intercept == InterceptNearestCrossing {
		return float64(utils.Min(values)) * d.weights.InterceptWeight, nil
	}
	return float64(utils.Max(values)) * d.weights.InterceptWeight, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
