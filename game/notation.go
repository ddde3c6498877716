package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Cells are written as a column letter and a 1-based row ("e1"). Walls are written as their
// anchor cell followed by "h" or "v" ("e3h").

func (c Cell) String() string {
	if c.Col < 0 || c.Col >= 26 {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(c.Row+1)
}

func (w Wall) String() string {
	return w.Anchor.String() + w.Orientation.String()
}

func (m Move) String() string {
	switch m.Kind {
	case PawnStep:
		return m.To.String()
	case WallPlacement:
		return m.Wall.String()
	default:
		return "none"
	}
}

// ParseCell parses a cell in "e1" notation.
func ParseCell(s string) (Cell, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Cell{}, fmt.Errorf("invalid cell %q", s)
	}
	col := int(s[0]) - 'a'
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return NewCell(col, row-1)
}

// ParseMove parses a pawn step ("e2") or a wall placement ("e3h", "d5v").
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Move{}, fmt.Errorf("empty move")
	}
	var o Orientation
	switch s[len(s)-1] {
	case 'h':
		o = Horizontal
	case 'v':
		o = Vertical
	}
	if o == 0 {
		c, err := ParseCell(s)
		if err != nil {
			return Move{}, err
		}
		return PawnMove(c), nil
	}
	anchor, err := ParseCell(s[:len(s)-1])
	if err != nil {
		return Move{}, err
	}
	w, err := NewWall(anchor, o)
	if err != nil {
		return Move{}, err
	}
	return WallMove(w), nil
}

// ParseMoves parses a whitespace separated move list.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
