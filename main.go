package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"capture/agent"
	"capture/engine"
	"capture/experiments"
	"capture/game"
	"capture/heuristic"
	"capture/logger"
	"capture/meta"

	"github.com/rs/zerolog/log"
)

const randomProfile = "random"

type options struct {
	mode       string
	red        string
	blue       string
	profiles   string
	layout     string
	games      int
	turns      int
	sight      int
	out        string
	spectate   string
	delay      time.Duration
	seed       uint64
	experiment string
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "match", "match, experiment or profiles")
	flag.StringVar(&opts.red, "red", "baseline", "Profile of the red team (or \"random\")")
	flag.StringVar(&opts.blue, "blue", "baseline", "Profile of the blue team (or \"random\")")
	flag.StringVar(&opts.profiles, "profiles", "", "YAML file with extra profiles")
	flag.StringVar(&opts.layout, "layout", "", "Layout file (default: built-in maze)")
	flag.IntVar(&opts.games, "games", meta.NumGames, "Games per matchup in experiments")
	flag.IntVar(&opts.turns, "turns", meta.MaxTurns, "Moves before a match is stopped")
	flag.IntVar(&opts.sight, "sight", meta.SightRange, "Sight range, 0 sees everything")
	flag.StringVar(&opts.out, "out", "experiments", "Directory for experiment records")
	flag.StringVar(&opts.experiment, "name", "profiles", "Experiment name")
	flag.StringVar(&opts.spectate, "spectate", "", "Serve a websocket feed on this address (e.g. :8080)")
	flag.DurationVar(&opts.delay, "delay", 0, "Pause after every move while spectating")
	flag.Uint64Var(&opts.seed, "seed", 1, "Seed of random agents")
	flag.Parse()

	logger.Init()

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Str("mode", opts.mode).Msg("failed")
	}
}

func run(opts options) error {
	profiles := heuristic.Presets()
	if opts.profiles != "" {
		extra, err := heuristic.LoadProfiles(opts.profiles)
		if err != nil {
			return err
		}
		profiles = append(profiles, extra...)
	}

	layout := game.DefaultLayout()
	if opts.layout != "" {
		data, err := os.ReadFile(opts.layout)
		if err != nil {
			return err
		}
		layout, err = game.ParseLayout(string(data))
		if err != nil {
			return err
		}
	}

	var observer engine.Observer
	if opts.spectate != "" {
		hub := engine.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			if err := http.ListenAndServe(opts.spectate, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("spectator server stopped")
			}
		}()
		log.Info().Str("addr", opts.spectate).Msg("serving spectators on /ws")
		observer = paced{Observer: hub, delay: opts.delay}
	}

	switch opts.mode {
	case "match":
		return runMatch(opts, profiles, layout, observer)
	case "experiment":
		return runExperiment(opts, profiles, layout, observer)
	case "profiles":
		data, err := heuristic.MarshalProfiles(profiles)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

func runMatch(opts options, profiles []heuristic.Profile, layout *game.Layout, observer engine.Observer) error {
	state := game.NewGameState(layout, game.WithMaxTurns(opts.turns), game.WithSightRange(opts.sight))

	agents := make([]agent.Agent, state.NumAgents())
	for slot := range agents {
		name := opts.red
		if game.TeamOf(slot) == game.Blue {
			name = opts.blue
		}
		if name == randomProfile {
			agents[slot] = agent.NewRandom(opts.seed + uint64(slot))
			continue
		}
		profile, ok := heuristic.Find(profiles, name)
		if !ok {
			return fmt.Errorf("unknown profile %q", name)
		}
		team := agent.CreateTeam(profile)
		agents[slot] = agent.New(team[(slot/2)%len(team)], slot)
	}

	engineOptions := []engine.Option{engine.WithTeamNames(opts.red, opts.blue)}
	if observer != nil {
		engineOptions = append(engineOptions, engine.WithObserver(observer))
	}
	winner, gameMetric, _, err := engine.NewLocal(state, agents, engineOptions...).Run()
	if err != nil {
		return err
	}
	if winner == "" {
		winner = "tie"
	}
	fmt.Printf("%s (red) vs %s (blue): %s, score %d after %d moves\n", opts.red, opts.blue, winner, gameMetric.Score, gameMetric.TotalMoves)
	return nil
}

func runExperiment(opts options, profiles []heuristic.Profile, layout *game.Layout, observer engine.Observer) error {
	summary, err := experiments.RunProfileExperiment(experiments.Config{
		Name:       opts.experiment,
		Profiles:   profiles,
		Games:      opts.games,
		Layout:     layout,
		MaxTurns:   opts.turns,
		SightRange: opts.sight,
		OutDir:     opts.out,
		Observer:   observer,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d games, records in %s\n", summary.Games, summary.Dir)
	for _, s := range summary.Standings {
		fmt.Printf("%-12s %4d wins %4d losses %4d ties\n", s.Profile, s.Wins, s.Losses, s.Ties)
	}
	return nil
}

// paced slows matches down so spectators can follow them.
type paced struct {
	engine.Observer
	delay time.Duration
}

func (p paced) Observe(matchID string, update engine.Update) {
	p.Observer.Observe(matchID, update)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
