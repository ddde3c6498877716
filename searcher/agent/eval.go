package agent

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type searchAgent struct {
	searcher   *searcher.Searcher
	difficulty searcher.Difficulty
}

// NewSearchAgent returns an agent that plays the best move found at a fixed difficulty.
func NewSearchAgent(s *searcher.Searcher, difficulty searcher.Difficulty) Agent {
	return searchAgent{searcher: s, difficulty: difficulty}
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	result, err := a.searcher.Search(state, a.difficulty)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
