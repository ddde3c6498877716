package game

import "github.com/cespare/xxhash"

// Hash returns a 64-bit hash of the position, including the side to move.
func (gs *GameState) Hash() StateHash {
	var buf [6 + Slots*Slots]byte
	buf[0] = byte(gs.Turn)
	buf[1] = byte(gs.Pawns[First].index())
	buf[2] = byte(gs.Pawns[Second].index())
	buf[3] = byte(gs.WallsLeft[First])
	buf[4] = byte(gs.WallsLeft[Second])
	buf[5] = 0xff
	i := 6
	for col := 0; col < Slots; col++ {
		for row := 0; row < Slots; row++ {
			buf[i] = byte(gs.Walls[col][row])
			i++
		}
	}
	return StateHash(xxhash.Sum64(buf[:]))
}
