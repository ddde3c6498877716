package experiments

import (
	"fmt"

	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/meta"
	"quoridor/searcher"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	KindSearch = "search"
	KindRandom = "random"

	randomWallRatio = 0.2
)

// Settings are shared by every game of an experiment.
type Settings struct {
	Games     int // Per match up
	MaxTurns  int
	OutputDir string
	EvalCache int
	Seed      uint64
}

func (s Settings) withDefaults() Settings {
	if s.Games <= 0 {
		s.Games = meta.Games
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = meta.MaxTurns
	}
	if s.OutputDir == "" {
		s.OutputDir = meta.OutputDir
	}
	return s
}

// RunDifficultyExperiment pairs an easy baseline against a random mover and every difficulty.
// It returns the directory the results were written to.
func RunDifficultyExperiment(settings Settings) (string, error) {
	settings = settings.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: KindSearch, Difficulty: searcher.Easy.String(), Pruning: true, EvalCache: settings.EvalCache}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: KindRandom, Seed: settings.Seed},
		{ID: 2, Kind: KindSearch, Difficulty: searcher.Easy.String(), Pruning: true, EvalCache: settings.EvalCache},
		{ID: 3, Kind: KindSearch, Difficulty: searcher.Medium.String(), Pruning: true, EvalCache: settings.EvalCache},
		{ID: 4, Kind: KindSearch, Difficulty: searcher.Hard.String(), Pruning: true, EvalCache: settings.EvalCache},
	}

	// Each matchup pairs the baseline agent against a contender
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("difficulty", settings, append(configs, baseline), matchUps)
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Validate every config before spending time on games
	for _, config := range configs {
		if _, err := createAgent(config, 0); err != nil {
			return "", err
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...", mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		for i := 0; i < settings.Games; i++ {
			// Alternate the starting seat
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}
			count++

			gameMetric, moveMetrics, err := runGame(first, second, settings, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				First:      first.ID,
				Second:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, settings.Games, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, settings, configs, gameRecords, moveRecords)
}

func store(name string, settings Settings, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(settings.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays a single game; game seeds the random opening and random agents
func runGame(first, second metrics.AgentConfig, settings Settings, game uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a1, err := createAgent(first, game)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	a2, err := createAgent(second, game)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	opening := agent.NewRandomAgent(settings.Seed+game, 0)
	e := engine.LocalEngine(a1, a2,
		engine.WithMaxTurns(settings.MaxTurns),
		engine.WithOpening(opening, meta.OpeningPlies),
		engine.WithAgentIDs(first.ID, second.ID),
	)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, game uint64) (agent.Agent, error) {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(config.Seed+game, randomWallRatio), nil
	case KindSearch:
		difficulty, err := searcher.ParseDifficulty(config.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		options := []searcher.Option{searcher.WithMetrics()}
		if !config.Pruning {
			options = append(options, searcher.WithoutPruning())
		}
		if config.EvalCache > 0 {
			options = append(options, searcher.WithEvalCache(config.EvalCache))
		}
		return agent.NewSearchAgent(searcher.New(options...), difficulty), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
