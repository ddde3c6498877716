package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"quoridor/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// UpdateGetter returns the oldest move committed since the previous call and the state it
// produced, or ok=false when there is nothing new.
type UpdateGetter func() (move game.Move, state *game.GameState, ok bool)

type update struct {
	move  game.Move
	state *game.GameState
}

// played is a committed move together with what Revert needs to undo it.
type played struct {
	move game.Move
	from game.Cell
}

// Game is the authoritative record of a match. Every move goes through the same legality
// check, whether it comes from a player, a redo or a replayed record. Game is safe for
// concurrent use.
type Game struct {
	mu      sync.Mutex
	state   *game.GameState
	history []played
	redo    []played
	updates []update
}

func NewGame() *Game {
	return &Game{state: game.NewGameState()}
}

// Replay builds a game by playing moves from the opening position. It stops at the first
// illegal move.
func Replay(moves []game.Move) (*Game, error) {
	g := NewGame()
	for i, m := range moves {
		if err := g.Play(m); err != nil {
			return nil, fmt.Errorf("replay move %d (%s): %w", i+1, m, err)
		}
	}
	g.updates = nil
	return g, nil
}

// Init returns a copy of the current state and a getter for the moves that follow.
func (g *Game) Init() (*game.GameState, UpdateGetter) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates = nil
	return g.state.Copy(), func() (game.Move, *game.GameState, bool) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if len(g.updates) == 0 {
			return game.Move{}, nil, false
		}
		u := g.updates[0]
		g.updates = g.updates[1:]
		return u.move, u.state.Copy(), true
	}
}

// State returns a copy of the current position.
func (g *Game) State() *game.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Copy()
}

func (g *Game) LegalMoves() []game.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.LegalMoves()
}

func (g *Game) Winner() (game.Player, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Winner()
}

// History returns the committed moves in order.
func (g *Game) History() []game.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	moves := make([]game.Move, len(g.history))
	for i, p := range g.history {
		moves[i] = p.move
	}
	return moves
}

// Play commits move for the side to move. A new move discards the redo stack.
func (g *Game) Play(move game.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.play(move); err != nil {
		return err
	}
	g.redo = nil
	return nil
}

func (g *Game) play(move game.Move) error {
	if g.state.IsTerminal() {
		return game.ErrGameOver
	}
	if !g.state.IsLegal(move) {
		return fmt.Errorf("%w: %s for %s", game.ErrIllegalMove, move, g.state.Turn)
	}

	mover := g.state.Turn
	from := g.state.Pawns[mover]
	if err := g.state.Apply(move); err != nil {
		return err
	}
	g.history = append(g.history, played{move: move, from: from})
	g.updates = append(g.updates, update{move: move, state: g.state.Copy()})

	log.Debug().Msgf("%s played %s", mover, move)
	if winner, over := g.state.Winner(); over {
		log.Info().Msgf("%s wins after %d moves", winner, len(g.history))
	}
	return nil
}

// Undo takes back the last committed move.
func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.history) == 0 {
		return ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	if err := g.state.Revert(last.move, last.from); err != nil {
		return fmt.Errorf("undo %s: %w", last.move, err)
	}
	g.history = g.history[:len(g.history)-1]
	g.redo = append(g.redo, last)
	return nil
}

// Redo replays the most recently undone move.
func (g *Game) Redo() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.redo) == 0 {
		return ErrNothingToRedo
	}
	next := g.redo[len(g.redo)-1]
	if err := g.play(next.move); err != nil {
		return fmt.Errorf("redo %s: %w", next.move, err)
	}
	g.redo = g.redo[:len(g.redo)-1]
	return nil
}
