package heuristic

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid profile")

// RecencyMode selects how returning to a recently visited cell is punished.
type RecencyMode int

const (
	// RecencyFlat subtracts the penalty when the successor cell is the one
	// occupied a turn before the decision.
	RecencyFlat RecencyMode = iota
	// RecencyDecayed scans the last RecencyWindow cells, most recent first,
	// and subtracts penalty*(K-i)/K for every match at age i.
	RecencyDecayed
)

// FoodShape is the function applied to the distance to the nearest food.
type FoodShape int

const (
	FoodLinear FoodShape = iota
	FoodSqrt
)

// ThreatShape is the penalty curve for non-scared opponents near a pacman.
type ThreatShape int

const (
	// ThreatThreshold subtracts (radius+1-d)*W for every threat closer than radius.
	ThreatThreshold ThreatShape = iota
	// ThreatInverse subtracts W/(d+1) for every threat.
	ThreatInverse
)

// InterceptMode aggregates the border candidates of every non-invading
// threat into one value.
type InterceptMode int

const (
	// InterceptBestScore takes the largest my_dist-enemy_dist.
	InterceptBestScore InterceptMode = iota
	// InterceptNearestCrossing takes the smallest my_dist+enemy_dist.
	InterceptNearestCrossing
)

var (
	recencyNames   = []string{"flat", "decayed"}
	foodNames      = []string{"linear", "sqrt"}
	threatNames    = []string{"threshold", "inverse"}
	interceptNames = []string{"best-score", "nearest-crossing"}
)

func (m RecencyMode) String() string   { return modeName(recencyNames, int(m)) }
func (m FoodShape) String() string     { return modeName(foodNames, int(m)) }
func (m ThreatShape) String() string   { return modeName(threatNames, int(m)) }
func (m InterceptMode) String() string { return modeName(interceptNames, int(m)) }

func (m RecencyMode) MarshalYAML() (interface{}, error)   { return m.String(), nil }
func (m FoodShape) MarshalYAML() (interface{}, error)     { return m.String(), nil }
func (m ThreatShape) MarshalYAML() (interface{}, error)   { return m.String(), nil }
func (m InterceptMode) MarshalYAML() (interface{}, error) { return m.String(), nil }

func (m *RecencyMode) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseMode(value, recencyNames)
	*m = RecencyMode(i)
	return err
}

func (m *FoodShape) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseMode(value, foodNames)
	*m = FoodShape(i)
	return err
}

func (m *ThreatShape) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseMode(value, threatNames)
	*m = ThreatShape(i)
	return err
}

func (m *InterceptMode) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseMode(value, interceptNames)
	*m = InterceptMode(i)
	return err
}

func modeName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("mode(%d)", i)
	}
	return names[i]
}

func parseMode(value *yaml.Node, names []string) (int, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return 0, err
	}
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("line %d: unknown mode %q, expected one of %v: %w", value.Line, s, names, ErrInvalidProfile)
}

// OffenseWeights configures the collector's evaluator and turn policy.
type OffenseWeights struct {
	Recency        RecencyMode `yaml:"recency"`
	RecencyPenalty float64     `yaml:"recency_penalty"`
	RecencyWindow  int         `yaml:"recency_window"`
	Food           float64     `yaml:"food"`
	FoodCandidates int         `yaml:"food_candidates"` // 0 considers every food cell
	FoodShape      FoodShape   `yaml:"food_shape"`
	FoodDistance   float64     `yaml:"food_distance"`
	GhostPenalty   float64     `yaml:"ghost_penalty"`
	Threat         ThreatShape `yaml:"threat"`
	ThreatWeight   float64     `yaml:"threat_weight"`
	ThreatRadius   int         `yaml:"threat_radius"`
	StopPenalty    float64     `yaml:"stop_penalty"`
}

// HistorySize is the number of past locations the recency term reads.
func (w OffenseWeights) HistorySize() int {
	if w.Recency == RecencyDecayed && w.RecencyWindow > 2 {
		return w.RecencyWindow
	}
	return 2
}

// DefenseWeights configures the guardian's evaluator and turn policy.
type DefenseWeights struct {
	Invader          float64       `yaml:"invader"`
	Chase            float64       `yaml:"chase"`
	Intercept        InterceptMode `yaml:"intercept"`
	InterceptWeight  float64       `yaml:"intercept_weight"`
	BorderCandidates int           `yaml:"border_candidates"` // 0 considers the whole border
	PacmanPenalty    float64       `yaml:"pacman_penalty"`
}

// Profile is one tuning of the collector and guardian pair.
type Profile struct {
	Name    string         `yaml:"name"`
	Offense OffenseWeights `yaml:"offense"`
	Defense DefenseWeights `yaml:"defense"`
}

// Baseline is the hand-tuned pair every other profile is compared against.
func Baseline() Profile {
	return Profile{
		Name: "baseline",
		Offense: OffenseWeights{
			Recency:        RecencyFlat,
			RecencyPenalty: 15,
			RecencyWindow:  2,
			Food:           90,
			FoodCandidates: 5,
			FoodShape:      FoodSqrt,
			FoodDistance:   8,
			GhostPenalty:   50,
			Threat:         ThreatInverse,
			ThreatWeight:   40,
			ThreatRadius:   3,
			StopPenalty:    100,
		},
		Defense: DefenseWeights{
			Invader:          200,
			Chase:            6,
			Intercept:        InterceptBestScore,
			InterceptWeight:  5,
			BorderCandidates: 3,
			PacmanPenalty:    1000,
		},
	}
}

// Patrol remembers a longer trail and watches a single crossing per threat.
func Patrol() Profile {
	p := Baseline()
	p.Name = "patrol"
	p.Offense.Recency = RecencyDecayed
	p.Offense.RecencyWindow = 10
	p.Defense.BorderCandidates = 1
	return p
}

// Raid uses exact food distances and only fears ghosts that are close.
func Raid() Profile {
	p := Baseline()
	p.Name = "raid"
	p.Offense.Food = 100
	p.Offense.FoodCandidates = 0
	p.Offense.FoodShape = FoodLinear
	p.Offense.FoodDistance = 2
	p.Offense.GhostPenalty = 60
	p.Offense.Threat = ThreatThreshold
	p.Offense.ThreatWeight = 20
	p.Defense.Chase = 8
	p.Defense.Intercept = InterceptNearestCrossing
	p.Defense.InterceptWeight = 3
	return p
}

// Presets returns the built-in profiles.
func Presets() []Profile {
	return []Profile{Baseline(), Patrol(), Raid()}
}

// Find returns the profile with the given name.
func Find(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name: %w", ErrInvalidProfile)
	}
	modes := []struct {
		name  string
		value int
		names []string
	}{
		{"offense.recency", int(p.Offense.Recency), recencyNames},
		{"offense.food_shape", int(p.Offense.FoodShape), foodNames},
		{"offense.threat", int(p.Offense.Threat), threatNames},
		{"defense.intercept", int(p.Defense.Intercept), interceptNames},
	}
	for _, m := range modes {
		if m.value < 0 || m.value >= len(m.names) {
			return fmt.Errorf("profile %s: %s is mode(%d), expected one of %v: %w", p.Name, m.name, m.value, m.names, ErrInvalidProfile)
		}
	}
	weights := []struct {
		name  string
		value float64
	}{
		{"offense.recency_penalty", p.Offense.RecencyPenalty},
		{"offense.food", p.Offense.Food},
		{"offense.food_distance", p.Offense.FoodDistance},
		{"offense.ghost_penalty", p.Offense.GhostPenalty},
		{"offense.threat_weight", p.Offense.ThreatWeight},
		{"offense.stop_penalty", p.Offense.StopPenalty},
		{"defense.invader", p.Defense.Invader},
		{"defense.chase", p.Defense.Chase},
		{"defense.intercept_weight", p.Defense.InterceptWeight},
		{"defense.pacman_penalty", p.Defense.PacmanPenalty},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("profile %s: %s is negative: %w", p.Name, w.name, ErrInvalidProfile)
		}
	}
	if p.Offense.Recency == RecencyDecayed && p.Offense.RecencyWindow < 1 {
		return fmt.Errorf("profile %s: decayed recency needs a window: %w", p.Name, ErrInvalidProfile)
	}
	if p.Offense.Threat == ThreatThreshold && p.Offense.ThreatRadius < 1 {
		return fmt.Errorf("profile %s: threshold threat needs a radius: %w", p.Name, ErrInvalidProfile)
	}
	if p.Offense.FoodCandidates < 0 || p.Defense.BorderCandidates < 0 {
		return fmt.Errorf("profile %s: candidate counts must not be negative: %w", p.Name, ErrInvalidProfile)
	}
	return nil
}

type profileFile struct {
	Profiles []yaml.Node `yaml:"profiles"`
}

// ParseProfiles decodes a YAML document with a top-level "profiles" list.
// Fields missing from an entry keep their baseline value.
func ParseProfiles(data []byte) ([]Profile, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	profiles := make([]Profile, 0, len(file.Profiles))
	for i := range file.Profiles {
		p := Baseline()
		p.Name = ""
		if err := file.Profiles[i].Decode(&p); err != nil {
			return nil, fmt.Errorf("decoding profile %d: %w", i, err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := Find(profiles, p.Name); ok {
			return nil, fmt.Errorf("duplicate profile %s: %w", p.Name, ErrInvalidProfile)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfiles(data)
}

// MarshalProfiles is the inverse of ParseProfiles.
func MarshalProfiles(profiles []Profile) ([]byte, error) {
	return yaml.Marshal(struct {
		Profiles []Profile `yaml:"profiles"`
	}{profiles})
}
