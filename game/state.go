package game

import (
	"fmt"
	"slices"
)

// GameState is the complete position: pawns, placed walls, remaining wall counts and the side
// to move. It holds no references, so a plain value copy is an independent snapshot.
type GameState struct {
	Pawns     [2]Cell
	WallsLeft [2]int
	Walls     [Slots][Slots]Orientation // Indexed [col][row] by wall anchor
	Turn      Player
}

// NewGameState returns the starting position with First to move.
func NewGameState() *GameState {
	return &GameState{
		Pawns:     [2]Cell{First.StartCell(), Second.StartCell()},
		WallsLeft: [2]int{WallsPerPlayer, WallsPerPlayer},
		Turn:      First,
	}
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Player returns the side to move.
func (gs *GameState) Player() Player {
	return gs.Turn
}

func (gs *GameState) PawnCell(p Player) Cell {
	return gs.Pawns[p]
}

func (gs *GameState) WallsRemaining(p Player) int {
	return gs.WallsLeft[p]
}

// PlacedWalls lists the walls on the board ordered by anchor row, then column.
func (gs *GameState) PlacedWalls() []Wall {
	var walls []Wall
	for row := 0; row < Slots; row++ {
		for col := 0; col < Slots; col++ {
			if o := gs.Walls[col][row]; o != 0 {
				walls = append(walls, Wall{Anchor: Cell{Col: col, Row: row}, Orientation: o})
			}
		}
	}
	return walls
}

func (gs *GameState) wallAt(col, row int) Orientation {
	if col < 0 || col >= Slots || row < 0 || row >= Slots {
		return 0
	}
	return gs.Walls[col][row]
}

// IsWallBetween reports whether a wall blocks the orthogonal step between a and b.
// Cells that are not orthogonal neighbours are never separated by a wall.
func (gs *GameState) IsWallBetween(a, b Cell) bool {
	switch {
	case a.Col == b.Col && (a.Row-b.Row == 1 || b.Row-a.Row == 1):
		row := min(a.Row, b.Row)
		return gs.wallAt(a.Col, row) == Horizontal || gs.wallAt(a.Col-1, row) == Horizontal
	case a.Row == b.Row && (a.Col-b.Col == 1 || b.Col-a.Col == 1):
		col := min(a.Col, b.Col)
		return gs.wallAt(col, a.Row) == Vertical || gs.wallAt(col, a.Row-1) == Vertical
	}
	return false
}

// overlaps reports whether w shares an edge segment with a placed wall or crosses one at its
// midpoint.
func (gs *GameState) overlaps(w Wall) bool {
	col, row := w.Anchor.Col, w.Anchor.Row
	if gs.Walls[col][row] != 0 {
		return true
	}
	if w.Orientation == Horizontal {
		return gs.wallAt(col-1, row) == Horizontal || gs.wallAt(col+1, row) == Horizontal
	}
	return gs.wallAt(col, row-1) == Vertical || gs.wallAt(col, row+1) == Vertical
}

// Winner returns the player whose pawn stands on its goal row, if any.
func (gs *GameState) Winner() (Player, bool) {
	for _, p := range [2]Player{First, Second} {
		if gs.Pawns[p].Row == p.GoalRow() {
			return p, true
		}
	}
	return 0, false
}

func (gs *GameState) IsTerminal() bool {
	_, over := gs.Winner()
	return over
}

// Apply performs m for the side to move and passes the turn. Only structural checks are made
// here: bounds, pawn reach, wall overlap and wall supply. Whether a wall leaves both players a
// path is the move generator's job, so callers must validate with LegalMoves or IsLegal first.
func (gs *GameState) Apply(m Move) error {
	if gs.IsTerminal() {
		return ErrGameOver
	}
	switch m.Kind {
	case PawnStep:
		if !m.To.InBounds() {
			return fmt.Errorf("pawn step to %s: %w", m.To, ErrOutOfBounds)
		}
		if !slices.Contains(gs.PawnMoves(), m) {
			return fmt.Errorf("%w: %s cannot step from %s to %s", ErrIllegalMove, gs.Turn, gs.Pawns[gs.Turn], m.To)
		}
		gs.Pawns[gs.Turn] = m.To
	case WallPlacement:
		if !m.Wall.InBounds() {
			return fmt.Errorf("wall %s: %w", m.Wall, ErrOutOfBounds)
		}
		if gs.WallsLeft[gs.Turn] <= 0 {
			return fmt.Errorf("%w: %s has no walls left", ErrIllegalMove, gs.Turn)
		}
		if gs.overlaps(m.Wall) {
			return fmt.Errorf("%w: wall %s overlaps a placed wall", ErrIllegalMove, m.Wall)
		}
		gs.Walls[m.Wall.Anchor.Col][m.Wall.Anchor.Row] = m.Wall.Orientation
		gs.WallsLeft[gs.Turn]--
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, m.Kind)
	}
	gs.Turn = gs.Turn.Opponent()
	return nil
}

// Play returns a copy of the state with m applied. The receiver is not modified.
func (gs *GameState) Play(m Move) (*GameState, error) {
	next := gs.Copy()
	if err := next.Apply(m); err != nil {
		return nil, err
	}
	return next, nil
}

// Revert undoes m, the last move applied to the state. For pawn steps from is the cell the
// pawn stood on before the move; it is ignored for wall placements.
func (gs *GameState) Revert(m Move, from Cell) error {
	mover := gs.Turn.Opponent()
	switch m.Kind {
	case PawnStep:
		if gs.Pawns[mover] != m.To {
			return fmt.Errorf("%w: cannot revert %s, %s pawn is on %s", ErrIllegalMove, m, mover, gs.Pawns[mover])
		}
		if !from.InBounds() {
			return fmt.Errorf("revert to %s: %w", from, ErrOutOfBounds)
		}
		if from == gs.Pawns[gs.Turn] {
			return fmt.Errorf("%w: cannot revert onto occupied cell %s", ErrIllegalMove, from)
		}
		gs.Pawns[mover] = from
	case WallPlacement:
		if !m.Wall.InBounds() {
			return fmt.Errorf("wall %s: %w", m.Wall, ErrOutOfBounds)
		}
		if gs.Walls[m.Wall.Anchor.Col][m.Wall.Anchor.Row] != m.Wall.Orientation {
			return fmt.Errorf("%w: cannot revert %s, wall not placed", ErrIllegalMove, m)
		}
		if gs.WallsLeft[mover] >= WallsPerPlayer {
			return fmt.Errorf("%w: cannot revert %s, %s has all walls", ErrIllegalMove, m, mover)
		}
		gs.Walls[m.Wall.Anchor.Col][m.Wall.Anchor.Row] = 0
		gs.WallsLeft[mover]++
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, m.Kind)
	}
	gs.Turn = mover
	return nil
}
