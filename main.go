package main

import (
	"flag"
	"os"
	"time"

	"breakthrough/config"
	"breakthrough/engine"
	"breakthrough/experiments"
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/searcher"
	"breakthrough/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	experiment := flag.String("experiment", cfg.Experiment, "One of selfplay, strength, depth, fan_out")
	games := flag.Int("games", cfg.Games, "Number of games per match up")
	duration := flag.Duration("duration", cfg.Duration(), "Search time per move")
	episodes := flag.Int("episodes", cfg.Search.Episodes, "Iterations per move, overrides duration when positive")
	depth := flag.Int("depth", cfg.Search.DepthThreshold, "Tree depth past which nodes are scored by rollouts")
	fanOut := flag.Int("fanout", cfg.Search.FanOut, "Concurrent rollouts per frontier visit")
	seed := flag.Uint64("seed", cfg.Search.Seed, "Base random seed, 0 for a random one")
	outDir := flag.String("out", cfg.OutDir, "Directory receiving experiment records")
	logLevel := flag.String("log", cfg.LogLevel, "Log level")
	save := flag.Bool("save", false, "Save the resulting configuration and exit")
	flag.Parse()

	cfg.Experiment = *experiment
	cfg.Games = *games
	cfg.Search.DurationMs = int(*duration / time.Millisecond)
	cfg.Search.Episodes = *episodes
	cfg.Search.DepthThreshold = *depth
	cfg.Search.FanOut = *fanOut
	cfg.Search.Seed = *seed
	cfg.OutDir = *outDir
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
		return
	}

	settings := experiments.Settings{
		Duration:       cfg.Duration(),
		Episodes:       cfg.Search.Episodes,
		DepthThreshold: cfg.Search.DepthThreshold,
		FanOut:         cfg.Search.FanOut,
		Exploit:        cfg.Search.ExploitProbability,
		Amplification:  cfg.Search.Amplification,
		Seed:           cfg.Search.Seed,
	}

	var e experiments.Experiment
	switch cfg.Experiment {
	case "selfplay":
		if err := selfPlay(cfg); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		return
	case "strength":
		e = experiments.StrengthExperiment(settings)
	case "depth":
		e = experiments.DepthExperiment(settings)
	case "fan_out":
		e = experiments.FanOutExperiment(settings)
	}

	writer, err := metrics.NewWriter(cfg.OutDir, e.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if _, err := e.Run(cfg.Games, writer); err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", e.Name)
	}
}

// selfPlay plays one game between two MCTS agents and prints the board after
// every move.
func selfPlay(cfg *config.Config) error {
	newAgent := func(offset uint64) agent.Agent {
		options := []searcher.Option{
			searcher.WithDuration(cfg.Duration()),
			searcher.WithEpisodes(cfg.Search.Episodes),
			searcher.WithDepthThreshold(cfg.Search.DepthThreshold),
			searcher.WithFanOut(cfg.Search.FanOut),
			searcher.WithExploitProbability(cfg.Search.ExploitProbability),
			searcher.WithAmplification(cfg.Search.Amplification),
		}
		if cfg.Search.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Search.Seed+offset))
		}
		return agent.NewEvaluationAgent(searcher.NewMCTS(options...))
	}

	e := engine.NewLocalEngine(newAgent(1), newAgent(2), engine.WithObserver(func(move game.Move, board *game.Board) {
		log.Info().Msgf("%s\n%s", move, board)
	}))
	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	log.Info().Str("winner", gameMetric.Winner).Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration).Msg("game over")
	return nil
}
