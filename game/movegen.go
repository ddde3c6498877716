package game

import "slices"

// LegalMoves returns every legal move for the side to move: pawn steps first, in direction
// order, then wall placements ordered by anchor row, column and orientation. A finished game
// has no legal moves.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsTerminal() {
		return nil
	}
	moves := gs.PawnMoves()
	return append(moves, gs.WallMoves()...)
}

// PawnMoves returns the pawn steps available to the side to move, including straight jumps
// over an adjacent opponent and the diagonal jumps allowed when the straight jump is blocked.
func (gs *GameState) PawnMoves() []Move {
	me := gs.Pawns[gs.Turn]
	opponent := gs.Pawns[gs.Turn.Opponent()]
	moves := make([]Move, 0, 5)

	for _, dir := range directions {
		next := me.Step(dir)
		if !next.InBounds() || gs.IsWallBetween(me, next) {
			continue
		}
		if next != opponent {
			moves = append(moves, PawnMove(next))
			continue
		}

		// Opponent is adjacent: jump straight over it if nothing is behind it
		jump := next.Step(dir)
		if jump.InBounds() && !gs.IsWallBetween(next, jump) {
			moves = append(moves, PawnMove(jump))
			continue
		}
		for _, side := range dir.sides() {
			diagonal := next.Step(side)
			if diagonal.InBounds() && !gs.IsWallBetween(next, diagonal) {
				moves = append(moves, PawnMove(diagonal))
			}
		}
	}
	return moves
}

// WallMoves returns the wall placements available to the side to move. A player without walls
// gets none.
func (gs *GameState) WallMoves() []Move {
	if gs.WallsLeft[gs.Turn] <= 0 {
		return nil
	}
	var moves []Move
	for row := 0; row < Slots; row++ {
		for col := 0; col < Slots; col++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{Anchor: Cell{Col: col, Row: row}, Orientation: o}
				if gs.CanPlaceWall(w) {
					moves = append(moves, WallMove(w))
				}
			}
		}
	}
	return moves
}

// CanPlaceWall reports whether w fits on the board without overlapping a placed wall and
// leaves both players a path to their goal rows. Wall supply is not checked.
func (gs *GameState) CanPlaceWall(w Wall) bool {
	if !w.InBounds() || gs.overlaps(w) {
		return false
	}
	scratch := *gs
	scratch.Walls[w.Anchor.Col][w.Anchor.Row] = w.Orientation
	return HasPath(&scratch, First) && HasPath(&scratch, Second)
}

// IsLegal reports whether m is one of the moves LegalMoves would return.
func (gs *GameState) IsLegal(m Move) bool {
	if gs.IsTerminal() {
		return false
	}
	switch m.Kind {
	case PawnStep:
		return slices.Contains(gs.PawnMoves(), m)
	case WallPlacement:
		return gs.WallsLeft[gs.Turn] > 0 && gs.CanPlaceWall(m.Wall)
	}
	return false
}
