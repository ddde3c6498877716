package game

import "fmt"

// Cell is a pawn square, identified by column and row.
type Cell struct {
	Col int
	Row int
}

// NewCell returns the cell at (col, row) or ErrOutOfBounds.
func NewCell(col, row int) (Cell, error) {
	c := Cell{Col: col, Row: row}
	if !c.InBounds() {
		return Cell{}, fmt.Errorf("cell (%d,%d): %w", col, row, ErrOutOfBounds)
	}
	return c, nil
}

func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

func (c Cell) Step(d Direction) Cell {
	delta := deltas[d]
	return Cell{Col: c.Col + delta.Col, Row: c.Row + delta.Row}
}

func (c Cell) index() int {
	return c.Row*Size + c.Col
}

// Direction is one of the four orthogonal steps.
type Direction int

const (
	North Direction = iota // towards higher rows
	South
	West
	East
)

var deltas = [4]Cell{
	North: {Col: 0, Row: 1},
	South: {Col: 0, Row: -1},
	West:  {Col: -1, Row: 0},
	East:  {Col: 1, Row: 0},
}

// directions is the fixed order in which pawn steps are generated.
var directions = [4]Direction{North, South, West, East}

// sides returns the two directions perpendicular to d, used for diagonal jumps.
func (d Direction) sides() [2]Direction {
	if d == North || d == South {
		return [2]Direction{West, East}
	}
	return [2]Direction{South, North}
}

// Player identifies one of the two sides.
type Player int

const (
	First Player = iota
	Second
)

func (p Player) Opponent() Player {
	if p == First {
		return Second
	}
	return First
}

// GoalRow is the row the player's pawn must reach to win.
func (p Player) GoalRow() int {
	if p == First {
		return Size - 1
	}
	return 0
}

// StartCell is the player's pawn position in a new game.
func (p Player) StartCell() Cell {
	if p == First {
		return Cell{Col: CenterColumn, Row: 0}
	}
	return Cell{Col: CenterColumn, Row: Size - 1}
}

func (p Player) String() string {
	if p == First {
		return "First"
	}
	return "Second"
}

// Orientation of a wall. The zero value marks an empty wall slot.
type Orientation uint8

const (
	Horizontal Orientation = iota + 1
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return "-"
	}
}

// Wall is two cells long. A horizontal wall anchored at (c, r) separates rows r and r+1 on
// columns c and c+1; a vertical wall anchored at (c, r) separates columns c and c+1 on rows
// r and r+1. Both share the midpoint at the corner between those four cells.
type Wall struct {
	Anchor      Cell
	Orientation Orientation
}

// NewWall returns a wall or ErrOutOfBounds when the anchor does not fit the wall grid.
func NewWall(anchor Cell, o Orientation) (Wall, error) {
	w := Wall{Anchor: anchor, Orientation: o}
	if !w.InBounds() {
		return Wall{}, fmt.Errorf("wall %s: %w", w, ErrOutOfBounds)
	}
	return w, nil
}

func (w Wall) InBounds() bool {
	if w.Orientation != Horizontal && w.Orientation != Vertical {
		return false
	}
	return w.Anchor.Col >= 0 && w.Anchor.Col < Slots && w.Anchor.Row >= 0 && w.Anchor.Row < Slots
}
