package main

import (
	"os"

	"quoridor/config"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/searcher"
	"quoridor/shell"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:], ".env"); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Debug().Msgf("loaded config: %+v", *cfg)

	settings := experiments.Settings{
		Games:     cfg.Games,
		MaxTurns:  cfg.MaxTurns,
		OutputDir: cfg.OutputDir,
		EvalCache: cfg.EvalCache,
		Seed:      cfg.Seed,
	}

	switch cfg.Mode {
	case config.ModeSelfPlay:
		dir, err := experiments.RunDifficultyExperiment(settings)
		if err != nil {
			log.Fatal().Err(err).Msg("difficulty experiment failed")
		}
		log.Info().Msgf("results written to %s", dir)
	case config.ModePruning:
		dir, err := experiments.RunPruningExperiment(settings)
		if err != nil {
			log.Fatal().Err(err).Msg("pruning experiment failed")
		}
		log.Info().Msgf("results written to %s", dir)
	default:
		human := game.First
		var options []shell.Option
		switch cfg.Human {
		case config.HumanSecond:
			human = game.Second
		case config.HumanBoth:
			options = append(options, shell.WithoutComputer())
		}
		s := searcher.New(searcher.WithEvalCache(cfg.EvalCache))
		if err := shell.NewController(s, cfg.Difficulty, human, os.Stdout, options...).Loop(); err != nil {
			log.Fatal().Err(err).Msg("")
		}
		log.Info().Msg("bye")
	}
}
