package experiments

import (
	"quoridor/experiments/metrics"
	"quoridor/searcher"
)

// RunPruningExperiment measures how much alpha-beta pruning and the evaluation cache save.
// Each matchup uses the same config for both players so both seats search comparable
// positions; the move records carry node counts and durations.
func RunPruningExperiment(settings Settings) (string, error) {
	settings = settings.withDefaults()
	cache := settings.EvalCache
	if cache <= 0 {
		cache = 1 << 12
	}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: KindSearch, Difficulty: searcher.Medium.String(), Pruning: false},
		{ID: 2, Kind: KindSearch, Difficulty: searcher.Medium.String(), Pruning: true},
		{ID: 3, Kind: KindSearch, Difficulty: searcher.Medium.String(), Pruning: true, EvalCache: cache},
		{ID: 4, Kind: KindSearch, Difficulty: searcher.Hard.String(), Pruning: true},
		{ID: 5, Kind: KindSearch, Difficulty: searcher.Hard.String(), Pruning: true, EvalCache: cache},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("pruning", settings, configs, matchUps)
}
