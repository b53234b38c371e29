package heuristic

import (
	"math"

	"capture/distance"
	"capture/game"
	"capture/utils"
)

// Offense scores successor states for the collector.
type Offense struct {
	index   int
	weights OffenseWeights
	cache   *distance.Cache
	history *History
}

func NewOffense(index int, weights OffenseWeights, cache *distance.Cache, history *History) *Offense {
	return &Offense{
		index:   index,
		weights: weights,
		cache:   cache,
		history: history,
	}
}

func (o *Offense) Evaluate(s game.State, _ game.Action) (float64, error) {
	self := s.AgentLocations()[o.index]
	if !self.Known {
		return math.Inf(-1), nil
	}
	count := s.FoodCount(o.index)
	if count == 0 {
		return math.Inf(1), nil
	}

	score := -o.recency(self.Pos)

	score -= float64(count) * o.weights.Food
	food, err := o.nearestFood(s, self.Pos)
	if err != nil {
		return 0, err
	}
	score -= food

	if s.IsGhost(o.index) {
		score -= o.weights.GhostPenalty
	}

	if s.IsPacman(o.index) {
		threat, err := o.threats(s, self.Pos)
		if err != nil {
			return 0, err
		}
		score -= threat
	}
	return score, nil
}

func (o *Offense) recency(pos game.Position) float64 {
	if o.history == nil {
		return 0
	}
	switch o.weights.Recency {
	case RecencyDecayed:
		k := o.weights.RecencyWindow
		penalty := 0.0
		for i := 0; i < k; i++ {
			past, ok := o.history.Recent(i)
			if !ok {
				break
			}
			if past.Known && past.Pos == pos {
				penalty += o.weights.RecencyPenalty * float64(k-i) / float64(k)
			}
		}
		return penalty
	default:
		past, ok := o.history.Recent(1)
		if ok && past.Known && past.Pos == pos {
			return o.weights.RecencyPenalty
		}
		return 0
	}
}

// nearestFood prefilters food by straight-line distance and takes the maze
// minimum over the survivors, which can miss the true nearest food behind a
// long detour.
func (o *Offense) nearestFood(s game.State, pos game.Position) (float64, error) {
	candidates := utils.SmallestN(s.Food(o.index), o.weights.FoodCandidates, func(f game.Position) float64 {
		return game.EuclideanDistance(f, pos)
	})
	if len(candidates) == 0 {
		return 0, nil
	}
	nearest := math.MaxInt
	for _, f := range candidates {
		d, err := o.cache.Distance(f, pos, s)
		if err != nil {
			return 0, err
		}
		if d < nearest {
			nearest = d
		}
	}
	d := float64(nearest)
	if o.weights.FoodShape == FoodSqrt {
		d = math.Sqrt(d)
	}
	return o.weights.FoodDistance * d, nil
}

func (o *Offense) threats(s game.State, pos game.Position) (float64, error) {
	penalty := 0.0
	for _, g := range game.NonScaredOpponentPositions(s, o.index) {
		d, err := o.cache.Distance(g, pos, s)
		if err != nil {
			return 0, err
		}
		switch o.weights.Threat {
		case ThreatThreshold:
			if d < o.weights.ThreatRadius {
				penalty += float64(o.weights.ThreatRadius+1-d) * o.weights.ThreatWeight
			}
		default:
			penalty += o.weights.ThreatWeight / float64(d+1)
		}
	}
	return penalty, nil
}
