package heuristic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		require.NoError(t, p.Validate(), p.Name)
	}

	p, ok := Find(Presets(), "patrol")
	require.True(t, ok)
	require.Equal(t, RecencyDecayed, p.Offense.Recency)
	require.Equal(t, 1, p.Defense.BorderCandidates)

	_, ok = Find(Presets(), "missing")
	require.False(t, ok)
}

func TestValidate(t *testing.T) {
	t.Run("rejecting modes outside their names", func(t *testing.T) {
		cases := map[string]func(p *Profile){
			"recency":   func(p *Profile) { p.Offense.Recency = RecencyMode(9) },
			"food":      func(p *Profile) { p.Offense.FoodShape = FoodShape(-1) },
			"threat":    func(p *Profile) { p.Offense.Threat = ThreatShape(2) },
			"intercept": func(p *Profile) { p.Defense.Intercept = InterceptMode(7) },
		}
		for name, mutate := range cases {
			p := Baseline()
			mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, ErrInvalidProfile, name)
			require.Contains(t, err.Error(), name, name)
		}
	})

	t.Run("naming the first negative weight", func(t *testing.T) {
		p := Baseline()
		p.Offense.Food = -1
		p.Defense.Chase = -1
		p.Defense.PacmanPenalty = -1
		for i := 0; i < 10; i++ {
			err := p.Validate()
			require.ErrorIs(t, err, ErrInvalidProfile)
			require.Contains(t, err.Error(), "offense.food is negative")
		}
	})
}

func TestParseProfiles(t *testing.T) {
	t.Run("filling missing fields from the baseline", func(t *testing.T) {
		profiles, err := ParseProfiles([]byte(`
profiles:
  - name: cautious
    offense:
      threat: threshold
      threat_radius: 5
      threat_weight: 80
    defense:
      intercept: nearest-crossing
`))
		require.NoError(t, err)
		require.Len(t, profiles, 1)

		p := profiles[0]
		require.Equal(t, "cautious", p.Name)
		require.Equal(t, ThreatThreshold, p.Offense.Threat)
		require.Equal(t, 5, p.Offense.ThreatRadius)
		require.Equal(t, 80.0, p.Offense.ThreatWeight)
		require.Equal(t, InterceptNearestCrossing, p.Defense.Intercept)
		require.Equal(t, Baseline().Offense.Food, p.Offense.Food)
		require.Equal(t, Baseline().Defense.PacmanPenalty, p.Defense.PacmanPenalty)
	})

	t.Run("round trip of the presets", func(t *testing.T) {
		data, err := MarshalProfiles(Presets())
		require.NoError(t, err)
		require.Contains(t, string(data), "best-score")

		profiles, err := ParseProfiles(data)
		require.NoError(t, err)
		require.Equal(t, Presets(), profiles)
	})

	t.Run("rejecting invalid profiles", func(t *testing.T) {
		cases := map[string]string{
			"unknown mode":    "profiles:\n  - name: a\n    offense:\n      recency: sometimes\n",
			"negative weight": "profiles:\n  - name: a\n    defense:\n      chase: -1\n",
			"missing name":    "profiles:\n  - offense:\n      food: 10\n",
			"no radius":       "profiles:\n  - name: a\n    offense:\n      threat: threshold\n      threat_radius: 0\n",
			"duplicate name":  "profiles:\n  - name: a\n  - name: a\n",
		}
		for name, doc := range cases {
			_, err := ParseProfiles([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidProfile, name)
		}
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := ParseProfiles([]byte("profiles: ["))
		require.Error(t, err)
	})
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: greedy\n    offense:\n      stop_penalty: 0\n"), 0o644))

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, 0.0, profiles[0].Offense.StopPenalty)

	_, err = LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
