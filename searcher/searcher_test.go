package searcher

import (
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests minimax search with alpha-beta pruning
- root:
	- happy path: winning pawn step available -> returned at every difficulty without search
	- happy path: opponent one step from goal -> a wall that stops the win
	- edge case: finished game -> ErrGameOver
	- edge case: no legal moves -> ErrNoLegalMoves
	- edge case: sealed pawn -> ErrInvariantViolation, no move
- properties:
	- same state and difficulty -> same move (fresh searcher, reused searcher, cached searcher)
	- pruned search -> same move and score as unpruned search (easy, medium, late-game hard)
	- state is never modified
- metrics: nodes, cutoffs, cache hits
*/

func stateWith(first, second game.Cell, turn game.Player) *game.GameState {
	gs := game.NewGameState()
	gs.Pawns = [2]game.Cell{first, second}
	gs.Turn = turn
	return gs
}

// sealFirst walls the first row off from the rest of the board.
func sealFirst(gs *game.GameState) {
	for col := 0; col < game.Slots; col += 2 {
		gs.Walls[col][0] = game.Horizontal
	}
	gs.Walls[7][0] = game.Vertical
}

// randomPositions plays seeded random legal moves from the opening and collects the
// unfinished positions along the way.
func randomPositions(t *testing.T, seed uint64, plies int) []*game.GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	gs := game.NewGameState()
	positions := []*game.GameState{gs.Copy()}
	for i := 0; i < plies && !gs.IsTerminal(); i++ {
		moves := gs.LegalMoves()
		require.NoError(t, gs.Apply(moves[rng.Intn(len(moves))]))
		if !gs.IsTerminal() {
			positions = append(positions, gs.Copy())
		}
	}
	return positions
}

func TestSearchWinningStep(t *testing.T) {
	gs := stateWith(game.Cell{Col: 4, Row: 7}, game.Cell{Col: 0, Row: 4}, game.First)
	win := game.PawnMove(game.Cell{Col: 4, Row: 8})

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run("winning pawn step at "+d.String(), func(t *testing.T) {
			result, err := New(WithMetrics()).Search(gs, d)
			require.NoError(t, err)
			require.Equal(t, win, result.Move, "Search should take the winning step")
			require.Greater(t, result.Score, game.WinScore/2, "Score should be a win")
			require.Equal(t, 1, result.Metric.Nodes, "Search should not look past the root")
		})
	}

	t.Run("winning step is taken even with walls in hand", func(t *testing.T) {
		gs := stateWith(game.Cell{Col: 4, Row: 4}, game.Cell{Col: 2, Row: 1}, game.Second)
		move, err := New().BestMove(gs, Hard)
		require.NoError(t, err)
		require.Equal(t, game.PawnMove(game.Cell{Col: 2, Row: 0}), move)
	})
}

func TestSearchStopsImmediateLoss(t *testing.T) {
	t.Run("opponent one step from goal (wall placed in the way)", func(t *testing.T) {
		gs := stateWith(game.Cell{Col: 4, Row: 7}, game.Cell{Col: 0, Row: 5}, game.Second)

		result, err := New().Search(gs, Medium)
		require.NoError(t, err)
		require.Equal(t, game.WallPlacement, result.Move.Kind, "Search should place a wall")
		require.Greater(t, result.Score, -game.WinScore/2, "Search should avoid the loss")

		next, err := gs.Play(result.Move)
		require.NoError(t, err)
		for _, m := range next.PawnMoves() {
			require.NotEqual(t, game.First.GoalRow(), m.To.Row, "Wall should stop the winning step %s", m)
		}
	})

	t.Run("loss is unavoidable without walls", func(t *testing.T) {
		gs := stateWith(game.Cell{Col: 4, Row: 7}, game.Cell{Col: 0, Row: 5}, game.Second)
		gs.WallsLeft[game.Second] = 0

		result, err := New().Search(gs, Medium)
		require.NoError(t, err)
		require.Equal(t, game.PawnStep, result.Move.Kind)
		require.Less(t, result.Score, -game.WinScore/2, "Score should be a loss")
	})
}

func TestSearchErrors(t *testing.T) {
	t.Run("invalid difficulty", func(t *testing.T) {
		_, err := New().Search(game.NewGameState(), Difficulty(0))
		require.ErrorIs(t, err, ErrInvalidDifficulty)
		_, err = New().BestMove(game.NewGameState(), Hard+1)
		require.ErrorIs(t, err, ErrInvalidDifficulty)
	})

	t.Run("finished game", func(t *testing.T) {
		gs := stateWith(game.Cell{Col: 4, Row: 8}, game.Cell{Col: 4, Row: 4}, game.Second)
		_, err := New().Search(gs, Easy)
		require.ErrorIs(t, err, game.ErrGameOver)
	})

	t.Run("no legal moves", func(t *testing.T) {
		// First is boxed into a2 by walls and the second pawn, with no walls left
		gs := stateWith(game.Cell{Col: 0, Row: 1}, game.Cell{Col: 0, Row: 2}, game.First)
		gs.Walls[0][0] = game.Horizontal
		gs.Walls[0][1] = game.Vertical
		gs.Walls[0][2] = game.Horizontal
		gs.WallsLeft[game.First] = 0
		require.Empty(t, gs.LegalMoves())

		_, err := New().Search(gs, Easy)
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("sealed pawn aborts the whole search", func(t *testing.T) {
		gs := game.NewGameState()
		sealFirst(gs)
		for _, d := range []Difficulty{Easy, Medium} {
			move, err := New().BestMove(gs, d)
			require.ErrorIs(t, err, game.ErrInvariantViolation)
			require.Equal(t, game.Move{}, move, "Search should not guess a move")
		}

		gs.Turn = game.Second
		_, err := New().Search(gs, Medium)
		require.ErrorIs(t, err, game.ErrInvariantViolation, "Deeper levels should surface the violation")
	})
}

func TestSearchDeterminism(t *testing.T) {
	positions := randomPositions(t, 11, 12)

	t.Run("fresh searchers agree", func(t *testing.T) {
		for _, gs := range positions {
			a, err := New().BestMove(gs, Medium)
			require.NoError(t, err)
			b, err := New().BestMove(gs, Medium)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	})

	t.Run("reused and cached searchers agree", func(t *testing.T) {
		plain := New()
		cached := New(WithEvalCache(1 << 12))
		for _, gs := range positions {
			want, err := plain.BestMove(gs, Medium)
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				got, err := cached.BestMove(gs, Medium)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	})

	t.Run("state is not modified", func(t *testing.T) {
		gs := positions[len(positions)-1]
		before := *gs
		_, err := New().Search(gs, Medium)
		require.NoError(t, err)
		require.Equal(t, before, *gs)
	})
}

func TestPruningEquivalence(t *testing.T) {
	positions := randomPositions(t, 5, 16)
	positions = append(positions,
		stateWith(game.Cell{Col: 4, Row: 4}, game.Cell{Col: 4, Row: 5}, game.First),
		stateWith(game.Cell{Col: 4, Row: 7}, game.Cell{Col: 0, Row: 5}, game.Second),
	)

	pruned := New(WithMetrics())
	full := New(WithoutPruning(), WithMetrics())
	for _, d := range []Difficulty{Easy, Medium} {
		for i, gs := range positions {
			want, err := full.Search(gs, d)
			require.NoError(t, err)
			got, err := pruned.Search(gs, d)
			require.NoError(t, err)

			require.Equal(t, want.Move, got.Move, "position %d at %s should pick the same move", i, d)
			require.InDelta(t, want.Score, got.Score, 1e-9, "position %d at %s should score the same", i, d)
			require.Zero(t, want.Metric.Cutoffs, "Unpruned search should never cut off")
			require.LessOrEqual(t, got.Metric.Nodes, want.Metric.Nodes)
		}
	}

	t.Run("late game at hard", func(t *testing.T) {
		// Few walls in hand keep the unpruned tree small
		facing := stateWith(game.Cell{Col: 4, Row: 4}, game.Cell{Col: 4, Row: 5}, game.First)
		facing.Walls[3][5] = game.Horizontal
		facing.Walls[5][3] = game.Vertical
		facing.WallsLeft = [2]int{0, 0}

		lastWall := stateWith(game.Cell{Col: 2, Row: 6}, game.Cell{Col: 6, Row: 2}, game.Second)
		lastWall.Walls[1][6] = game.Horizontal
		lastWall.WallsLeft = [2]int{0, 1}

		for i, gs := range []*game.GameState{facing, lastWall} {
			want, err := full.Search(gs, Hard)
			require.NoError(t, err)
			got, err := pruned.Search(gs, Hard)
			require.NoError(t, err)

			require.Equal(t, want.Move, got.Move, "late position %d should pick the same move", i)
			require.InDelta(t, want.Score, got.Score, 1e-9, "late position %d should score the same", i)
			require.LessOrEqual(t, got.Metric.Nodes, want.Metric.Nodes)
		}
	})
}

func TestSearchMetrics(t *testing.T) {
	t.Run("pruning cuts the tree", func(t *testing.T) {
		gs := game.NewGameState()
		pruned, err := New(WithMetrics()).Search(gs, Medium)
		require.NoError(t, err)
		full, err := New(WithMetrics(), WithoutPruning()).Search(gs, Medium)
		require.NoError(t, err)

		require.Equal(t, "medium", pruned.Metric.Difficulty)
		require.Equal(t, 2, pruned.Metric.Depth)
		require.True(t, pruned.Metric.Pruning)
		require.False(t, full.Metric.Pruning)
		require.Positive(t, pruned.Metric.Cutoffs)
		require.Less(t, pruned.Metric.Nodes, full.Metric.Nodes)
		require.Equal(t, pruned.Score, pruned.Metric.Score)
	})

	t.Run("cache hits on a repeated search", func(t *testing.T) {
		s := New(WithMetrics(), WithEvalCache(1<<14))
		gs := game.NewGameState()
		first, err := s.Search(gs, Easy)
		require.NoError(t, err)
		require.Zero(t, first.Metric.CacheHits)

		second, err := s.Search(gs, Easy)
		require.NoError(t, err)
		require.Equal(t, first.Metric.Leaves, second.Metric.CacheHits, "Every leaf should come from the cache")
		require.Equal(t, first.Move, second.Move)
	})

	t.Run("no metrics by default", func(t *testing.T) {
		result, err := New().Search(game.NewGameState(), Easy)
		require.NoError(t, err)
		require.Zero(t, result.Metric.Nodes)
		require.Equal(t, "easy", result.Metric.Difficulty)
	})
}

func TestDifficulty(t *testing.T) {
	t.Run("depth and wall weight", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3}, []int{Easy.Depth(), Medium.Depth(), Hard.Depth()})
		require.Equal(t, 0.5, Easy.WallWeight())
		require.Equal(t, 1.0, Medium.WallWeight())
		require.Equal(t, 1.5, Hard.WallWeight())

		w := Hard.Weights(game.DefaultWeights)
		require.Equal(t, 15.0, w.Walls)
		require.Equal(t, game.DefaultWeights.Path, w.Path)
		require.Equal(t, 10.0, game.DefaultWeights.Walls, "Base weights should not change")
	})

	t.Run("parsing", func(t *testing.T) {
		for input, want := range map[string]Difficulty{"easy": Easy, " Medium ": Medium, "HARD": Hard, "3": Hard} {
			got, err := ParseDifficulty(input)
			require.NoError(t, err)
			require.Equal(t, want, got, input)
		}

		got, err := ParseDifficulty("nightmare")
		require.ErrorIs(t, err, ErrInvalidDifficulty)
		require.Equal(t, Medium, got, "Unknown names should fall back to medium")
	})

	t.Run("invalid values", func(t *testing.T) {
		require.False(t, Difficulty(0).Valid())
		require.False(t, Difficulty(4).Valid())
		require.Equal(t, "difficulty(4)", Difficulty(4).String())
	})
}
