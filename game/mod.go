package game

// Board geometry. Cells are addressed 0..Size-1 on both axes, wall anchors 0..Slots-1.
const (
	Size           = 9
	Slots          = Size - 1
	WallsPerPlayer = 10
	CenterColumn   = Size / 2
)

type StateHash uint64
