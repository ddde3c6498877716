package agent

import (
	"fmt"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng       *rand.Rand
	wallRatio float64
}

// NewRandomAgent returns a seeded agent that plays uniformly random legal moves. Pawn steps
// and wall placements are drawn separately so the roughly hundred wall slots do not drown out
// the few pawn steps: a wall is chosen with probability wallRatio.
func NewRandomAgent(seed uint64, wallRatio float64) Agent {
	return &randomAgent{
		rng:       rand.New(rand.NewSource(seed)),
		wallRatio: wallRatio,
	}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w for %s", searcher.ErrNoLegalMoves, state.Turn)
	}

	walls := lo.Filter(moves, func(m game.Move, _ int) bool { return m.Kind == game.WallPlacement })
	pawns := moves[:len(moves)-len(walls)]
	pool := pawns
	if len(pawns) == 0 || (len(walls) > 0 && a.rng.Float64() < a.wallRatio) {
		pool = walls
	}
	return pool[a.rng.Intn(len(pool))], metrics.SearchMetric{}, nil
}
