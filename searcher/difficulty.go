package searcher

import (
	"fmt"
	"strings"

	"quoridor/game"
)

// Difficulty selects the search depth and how much the evaluator values walls in hand.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Depth is the number of plies searched.
func (d Difficulty) Depth() int {
	return int(d)
}

func (d Difficulty) WallWeight() float64 {
	switch d {
	case Easy:
		return 0.5
	case Hard:
		return 1.5
	default:
		return 1.0
	}
}

// Weights scales the wall term of base by the difficulty's wall weight.
func (d Difficulty) Weights(base game.Weights) game.Weights {
	base.Walls *= d.WallWeight()
	return base
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts a difficulty name or its depth ("hard", "3"). Anything else is
// reported as an error together with Medium, the default level.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range difficulties {
		if s == d.String() || s == fmt.Sprint(d.Depth()) {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}
