package experiments

import (
	"fmt"

	"capture/agent"
	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"
	"capture/heuristic"
	"capture/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Config struct {
	Name       string
	Profiles   []heuristic.Profile
	Games      int // Per matchup, each profile plays red in its own matchup
	Layout     *game.Layout
	MaxTurns   int
	SightRange int
	OutDir     string
	Observer   engine.Observer // Optional
}

type Standing struct {
	Profile string
	Wins    int
	Losses  int
	Ties    int
}

type Summary struct {
	Dir       string
	Games     int
	Standings []Standing // Most wins first
}

type matchUp struct {
	red, blue heuristic.Profile
}

// matchUps pairs every two profiles twice, swapping colors. A single
// profile plays itself.
func matchUps(profiles []heuristic.Profile) []matchUp {
	if len(profiles) == 1 {
		return []matchUp{{profiles[0], profiles[0]}}
	}
	var ups []matchUp
	for i := range profiles {
		for j := i + 1; j < len(profiles); j++ {
			ups = append(ups, matchUp{profiles[i], profiles[j]}, matchUp{profiles[j], profiles[i]})
		}
	}
	return ups
}

// RunProfileExperiment plays the round robin between the configured
// profiles and writes profiles, game and move records as CSV.
func RunProfileExperiment(cfg Config) (*Summary, error) {
	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles to compare")
	}
	for _, p := range cfg.Profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.Name == "" {
		cfg.Name = "profiles"
	}
	if cfg.Games <= 0 {
		cfg.Games = meta.NumGames
	}
	if cfg.Layout == nil {
		cfg.Layout = game.DefaultLayout()
	}

	ups := matchUps(cfg.Profiles)
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	standings := map[string]*Standing{}
	for _, p := range cfg.Profiles {
		standings[p.Name] = &Standing{Profile: p.Name}
	}

	log.Info().Msgf("starting %s experiment with %d matchups...", cfg.Name, len(ups))

	for mi, up := range ups {
		log.Info().Msgf("starting matchup %d of %d between red=%s and blue=%s...", mi+1, len(ups), up.red.Name, up.blue.Name)

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(cfg, up)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			record(standings, up, winner)

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(ups), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(ups))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteProfiles(cfg.Profiles); err != nil {
		return nil, fmt.Errorf("failed to store profiles: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	summary := &Summary{Dir: writer.Dir(), Games: count}
	for _, p := range cfg.Profiles {
		summary.Standings = append(summary.Standings, *standings[p.Name])
	}
	slices.SortStableFunc(summary.Standings, func(a, b Standing) int {
		return b.Wins - a.Wins
	})
	return summary, nil
}

func record(standings map[string]*Standing, up matchUp, winner string) {
	red, blue := standings[up.red.Name], standings[up.blue.Name]
	switch winner {
	case game.Red.String():
		red.Wins++
		blue.Losses++
	case game.Blue.String():
		blue.Wins++
		red.Losses++
	default:
		red.Ties++
		if blue != red {
			blue.Ties++
		}
	}
}

// runGame executes a single game between two profiles.
func runGame(cfg Config, up matchUp) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := game.NewGameState(cfg.Layout, game.WithMaxTurns(cfg.MaxTurns), game.WithSightRange(cfg.SightRange))
	options := []engine.Option{}
	if cfg.Observer != nil {
		options = append(options, engine.WithObserver(cfg.Observer))
	}
	e := engine.NewMatch(state, up.red, up.blue, []agent.Option{agent.WithMetrics()}, options...)
	return e.Run()
}
