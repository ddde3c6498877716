package shell

import (
	"fmt"
	"strings"

	"quoridor/game"
)

// Render draws the board with the first player's home row at the bottom. Pawns are F and
// S, walls are drawn with '-' and '|' and '+' marks a wall midpoint.
func Render(gs *game.GameState) string {
	var b strings.Builder
	b.WriteString("   ")
	for col := 0; col < game.Size; col++ {
		fmt.Fprintf(&b, "%c ", 'a'+col)
	}
	b.WriteString("\n")

	for row := game.Size - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%d  ", row+1)
		for col := 0; col < game.Size; col++ {
			cell := game.Cell{Col: col, Row: row}
			b.WriteByte(pawnAt(gs, cell))
			if col == game.Size-1 {
				break
			}
			if gs.IsWallBetween(cell, game.Cell{Col: col + 1, Row: row}) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("\n")

		if row == 0 {
			break
		}
		b.WriteString("   ")
		for col := 0; col < game.Size; col++ {
			cell := game.Cell{Col: col, Row: row}
			if gs.IsWallBetween(cell, game.Cell{Col: col, Row: row - 1}) {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
			if col == game.Size-1 {
				break
			}
			if gs.Walls[col][row-1] != 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "walls: %s %d, %s %d; %s to move\n",
		game.First, gs.WallsLeft[game.First], game.Second, gs.WallsLeft[game.Second], gs.Turn)
	return b.String()
}

func pawnAt(gs *game.GameState, c game.Cell) byte {
	switch c {
	case gs.Pawns[game.First]:
		return 'F'
	case gs.Pawns[game.Second]:
		return 'S'
	default:
		return '.'
	}
}
