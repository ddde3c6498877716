package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stateWith(first, second Cell, turn Player) *GameState {
	gs := NewGameState()
	gs.Pawns = [2]Cell{first, second}
	gs.Turn = turn
	return gs
}

func mustWall(t *testing.T, notation string) Wall {
	t.Helper()
	m, err := ParseMove(notation)
	require.NoError(t, err)
	require.Equal(t, WallPlacement, m.Kind)
	return m.Wall
}

func placeWalls(t *testing.T, gs *GameState, notations ...string) {
	t.Helper()
	for _, n := range notations {
		w := mustWall(t, n)
		require.False(t, gs.overlaps(w), "wall %s should not overlap", n)
		gs.Walls[w.Anchor.Col][w.Anchor.Row] = w.Orientation
	}
}

func pawnTargets(moves []Move) []Cell {
	var cells []Cell
	for _, m := range moves {
		if m.Kind == PawnStep {
			cells = append(cells, m.To)
		}
	}
	return cells
}

func countWalls(moves []Move) int {
	n := 0
	for _, m := range moves {
		if m.Kind == WallPlacement {
			n++
		}
	}
	return n
}
