package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove reports a move that is not legal in the state it was applied to.
	ErrIllegalMove = errors.New("illegal move")
	// ErrOutOfBounds reports a cell or wall anchor outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvariantViolation reports a state that should be unreachable, e.g. a pawn with no
	// path to its goal row. Callers must not continue using the state.
	ErrInvariantViolation = errors.New("internal invariant violation")

	ErrGameOver = fmt.Errorf("game is over - no moves allowed: %w", ErrIllegalMove)
)
