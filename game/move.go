package game

// MoveKind tags the Move variant.
type MoveKind uint8

const (
	PawnStep MoveKind = iota + 1
	WallPlacement
)

// Move is either a pawn step to To or a wall placement of Wall, depending on Kind.
// Moves are comparable values and can be used as map keys.
type Move struct {
	Kind MoveKind
	To   Cell
	Wall Wall
}

func PawnMove(to Cell) Move {
	return Move{Kind: PawnStep, To: to}
}

func WallMove(w Wall) Move {
	return Move{Kind: WallPlacement, Wall: w}
}
