package game

import "fmt"

// WinScore is the magnitude of a decided position. Heuristic scores stay far below it.
const WinScore = 1_000_000.0

// Weights scales the heuristic terms of Evaluate.
type Weights struct {
	Path     float64 // per step of path length advantage
	Walls    float64 // per wall in hand above the opponent
	Center   float64 // per column closer to the centre file than the opponent
	Blocking float64 // per point of blocking potential
}

var DefaultWeights = Weights{
	Path:     100,
	Walls:    10,
	Center:   5,
	Blocking: 15,
}

// Evaluate scores the position from perspective's point of view; positive is good for
// perspective. Finished games score ±WinScore. A pawn with no path to its goal row is an
// invariant violation and is returned as an error.
func Evaluate(gs *GameState, perspective Player, w Weights) (float64, error) {
	if winner, over := gs.Winner(); over {
		if winner == perspective {
			return WinScore, nil
		}
		return -WinScore, nil
	}

	opponent := perspective.Opponent()
	mine := ShortestPathLength(gs, perspective)
	theirs := ShortestPathLength(gs, opponent)
	if mine == Unreachable || theirs == Unreachable {
		return 0, fmt.Errorf("%w: no path to goal (%s=%d, %s=%d)", ErrInvariantViolation, perspective, mine, opponent, theirs)
	}

	path := float64(theirs - mine)
	walls := wallScore(gs.WallsLeft[perspective], gs.WallsLeft[opponent])
	center := float64(centerDistance(gs.Pawns[opponent]) - centerDistance(gs.Pawns[perspective]))
	blocking := blockingScore(gs, perspective)

	return path*w.Path + walls*w.Walls + center*w.Center + blocking*w.Blocking, nil
}

func wallScore(mine, theirs int) float64 {
	diff := float64(mine - theirs)
	// Holding walls the opponent can no longer answer is worth extra
	if mine > 0 && theirs == 0 {
		return diff + 5
	}
	return diff
}

func centerDistance(c Cell) int {
	if c.Col < CenterColumn {
		return CenterColumn - c.Col
	}
	return c.Col - CenterColumn
}

// blockingScore rewards staying close to the opponent while holding walls to block with.
func blockingScore(gs *GameState, perspective Player) float64 {
	if gs.WallsLeft[perspective] == 0 {
		return 0
	}
	a, b := gs.Pawns[perspective], gs.Pawns[perspective.Opponent()]
	distance := abs(a.Col-b.Col) + abs(a.Row-b.Row)
	switch {
	case distance < 4:
		return 2
	case distance < 8:
		return 1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
