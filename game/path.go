package game

// Unreachable is returned by the path functions when no path to the goal row exists.
// It never occurs for a state built from legal moves.
const Unreachable = -1

// ShortestPathLength returns the minimum number of orthogonal steps the player's pawn needs to
// reach its goal row, ignoring pawns and respecting walls, or Unreachable.
func ShortestPathLength(gs *GameState, p Player) int {
	return DistanceToGoal(gs, gs.Pawns[p], p)
}

// HasPath reports whether the player's pawn can still reach its goal row.
func HasPath(gs *GameState, p Player) bool {
	return ShortestPathLength(gs, p) != Unreachable
}

// DistanceToGoal runs a breadth-first search from start to the player's goal row.
func DistanceToGoal(gs *GameState, start Cell, p Player) int {
	goal := p.GoalRow()
	if start.Row == goal {
		return 0
	}

	var dist [Size * Size]int8
	for i := range dist {
		dist[i] = -1
	}
	var queue [Size * Size]Cell
	head, tail := 0, 0

	dist[start.index()] = 0
	queue[tail] = start
	tail++

	for head < tail {
		current := queue[head]
		head++
		d := dist[current.index()]
		for _, dir := range directions {
			next := current.Step(dir)
			if !next.InBounds() || dist[next.index()] >= 0 || gs.IsWallBetween(current, next) {
				continue
			}
			if next.Row == goal {
				return int(d) + 1
			}
			dist[next.index()] = d + 1
			queue[tail] = next
			tail++
		}
	}
	return Unreachable
}
