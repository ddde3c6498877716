package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	require.Equal(t, Cell{Col: 4, Row: 0}, gs.PawnCell(First))
	require.Equal(t, Cell{Col: 4, Row: 8}, gs.PawnCell(Second))
	require.Equal(t, WallsPerPlayer, gs.WallsRemaining(First))
	require.Equal(t, WallsPerPlayer, gs.WallsRemaining(Second))
	require.Equal(t, First, gs.Player())
	require.Empty(t, gs.PlacedWalls())
	require.False(t, gs.IsTerminal())
}

func TestIsWallBetween(t *testing.T) {
	gs := NewGameState()
	placeWalls(t, gs, "e3h", "b5v")

	t.Run("horizontal wall blocks both columns it spans", func(t *testing.T) {
		require.True(t, gs.IsWallBetween(Cell{Col: 4, Row: 2}, Cell{Col: 4, Row: 3}))
		require.True(t, gs.IsWallBetween(Cell{Col: 5, Row: 3}, Cell{Col: 5, Row: 2}))
		require.False(t, gs.IsWallBetween(Cell{Col: 3, Row: 2}, Cell{Col: 3, Row: 3}))
		require.False(t, gs.IsWallBetween(Cell{Col: 6, Row: 2}, Cell{Col: 6, Row: 3}))
	})

	t.Run("vertical wall blocks both rows it spans", func(t *testing.T) {
		require.True(t, gs.IsWallBetween(Cell{Col: 1, Row: 4}, Cell{Col: 2, Row: 4}))
		require.True(t, gs.IsWallBetween(Cell{Col: 2, Row: 5}, Cell{Col: 1, Row: 5}))
		require.False(t, gs.IsWallBetween(Cell{Col: 1, Row: 6}, Cell{Col: 2, Row: 6}))
		require.False(t, gs.IsWallBetween(Cell{Col: 1, Row: 3}, Cell{Col: 2, Row: 3}))
	})

	t.Run("walls do not block steps parallel to them", func(t *testing.T) {
		require.False(t, gs.IsWallBetween(Cell{Col: 4, Row: 2}, Cell{Col: 5, Row: 2}))
		require.False(t, gs.IsWallBetween(Cell{Col: 1, Row: 4}, Cell{Col: 1, Row: 5}))
	})

	t.Run("non-adjacent cells are never separated", func(t *testing.T) {
		require.False(t, gs.IsWallBetween(Cell{Col: 4, Row: 2}, Cell{Col: 4, Row: 4}))
		require.False(t, gs.IsWallBetween(Cell{Col: 4, Row: 2}, Cell{Col: 5, Row: 3}))
	})
}

func TestApply(t *testing.T) {
	t.Run("pawn step moves the pawn and passes the turn", func(t *testing.T) {
		gs := NewGameState()
		require.NoError(t, gs.Apply(PawnMove(Cell{Col: 4, Row: 1})))
		require.Equal(t, Cell{Col: 4, Row: 1}, gs.PawnCell(First))
		require.Equal(t, Second, gs.Player())
	})

	t.Run("wall placement inserts the wall and spends one wall", func(t *testing.T) {
		gs := NewGameState()
		w := mustWall(t, "e3h")
		require.NoError(t, gs.Apply(WallMove(w)))
		require.Equal(t, []Wall{w}, gs.PlacedWalls())
		require.Equal(t, WallsPerPlayer-1, gs.WallsRemaining(First))
		require.Equal(t, WallsPerPlayer, gs.WallsRemaining(Second))
		require.Equal(t, Second, gs.Player())
	})

	t.Run("rejecting overlapping and crossing walls", func(t *testing.T) {
		gs := NewGameState()
		placeWalls(t, gs, "e3h")
		for _, n := range []string{"e3h", "d3h", "f3h", "e3v"} {
			err := gs.Apply(WallMove(mustWall(t, n)))
			require.ErrorIs(t, err, ErrIllegalMove, n)
		}
		for _, n := range []string{"c3h", "g3h", "d3v", "f3v", "e2v", "e4v"} {
			require.NoError(t, gs.Copy().Apply(WallMove(mustWall(t, n))), n)
		}
	})

	t.Run("rejecting vertical walls sharing a segment", func(t *testing.T) {
		gs := NewGameState()
		placeWalls(t, gs, "c4v")
		for _, n := range []string{"c3v", "c4v", "c5v", "c4h"} {
			require.ErrorIs(t, gs.Apply(WallMove(mustWall(t, n))), ErrIllegalMove, n)
		}
	})

	t.Run("rejecting walls when none are left", func(t *testing.T) {
		gs := NewGameState()
		gs.WallsLeft[First] = 0
		err := gs.Apply(WallMove(mustWall(t, "a1h")))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting out of bounds targets", func(t *testing.T) {
		gs := NewGameState()
		require.ErrorIs(t, gs.Apply(PawnMove(Cell{Col: 4, Row: -1})), ErrOutOfBounds)
		require.ErrorIs(t, gs.Apply(WallMove(Wall{Anchor: Cell{Col: 8, Row: 0}, Orientation: Vertical})), ErrOutOfBounds)
	})

	t.Run("rejecting unreachable pawn targets", func(t *testing.T) {
		gs := NewGameState()
		require.ErrorIs(t, gs.Apply(PawnMove(Cell{Col: 4, Row: 2})), ErrIllegalMove)
		require.ErrorIs(t, gs.Apply(Move{}), ErrIllegalMove)
		require.Equal(t, NewGameState(), gs, "failed moves should not change the state")
	})

	t.Run("rejecting moves after the game is over", func(t *testing.T) {
		gs := stateWith(Cell{Col: 0, Row: 8}, Cell{Col: 4, Row: 4}, Second)
		err := gs.Apply(PawnMove(Cell{Col: 4, Row: 3}))
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestPlayLeavesReceiverUntouched(t *testing.T) {
	gs := NewGameState()
	next, err := gs.Play(WallMove(mustWall(t, "a1h")))
	require.NoError(t, err)

	require.Equal(t, NewGameState(), gs)
	require.Len(t, next.PlacedWalls(), 1)

	next.Pawns[First] = Cell{Col: 0, Row: 0}
	require.Equal(t, Cell{Col: 4, Row: 0}, gs.PawnCell(First), "copies must not alias")
}

func TestRevertRestoresPriorState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gs := NewGameState()

	for ply := 0; ply < 30 && !gs.IsTerminal(); ply++ {
		for _, m := range gs.LegalMoves() {
			before := *gs
			from := gs.PawnCell(gs.Player())
			next, err := gs.Play(m)
			require.NoError(t, err, m)
			require.NoError(t, next.Revert(m, from), m)
			require.Equal(t, before, *next, "revert of %s", m)
		}
		moves := gs.LegalMoves()
		require.NoError(t, gs.Apply(moves[rng.Intn(len(moves))]))
	}
}

func TestRevertRejectsMismatchedMoves(t *testing.T) {
	gs := NewGameState()
	require.NoError(t, gs.Apply(PawnMove(Cell{Col: 4, Row: 1})))

	require.ErrorIs(t, gs.Copy().Revert(PawnMove(Cell{Col: 3, Row: 0}), Cell{Col: 4, Row: 0}), ErrIllegalMove)
	require.ErrorIs(t, gs.Copy().Revert(WallMove(mustWall(t, "a1h")), Cell{}), ErrIllegalMove)
	require.ErrorIs(t, gs.Copy().Revert(PawnMove(Cell{Col: 4, Row: 1}), Cell{Col: 4, Row: 9}), ErrOutOfBounds)
}

func TestWinner(t *testing.T) {
	t.Run("no winner in the opening", func(t *testing.T) {
		_, over := NewGameState().Winner()
		require.False(t, over)
	})

	t.Run("first wins on the last row", func(t *testing.T) {
		winner, over := stateWith(Cell{Col: 2, Row: 8}, Cell{Col: 4, Row: 4}, Second).Winner()
		require.True(t, over)
		require.Equal(t, First, winner)
	})

	t.Run("second wins on the first row", func(t *testing.T) {
		winner, over := stateWith(Cell{Col: 4, Row: 4}, Cell{Col: 7, Row: 0}, First).Winner()
		require.True(t, over)
		require.Equal(t, Second, winner)
	})
}

func TestHash(t *testing.T) {
	a := NewGameState()
	b := NewGameState()
	require.Equal(t, a.Hash(), b.Hash())

	b.Turn = Second
	require.NotEqual(t, a.Hash(), b.Hash(), "side to move is part of the hash")

	c := NewGameState()
	placeWalls(t, c, "a1h")
	d := NewGameState()
	placeWalls(t, d, "a1v")
	require.NotEqual(t, c.Hash(), d.Hash())
	require.NotEqual(t, a.Hash(), c.Hash())
}
