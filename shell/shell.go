package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"quoridor/game"
	"quoridor/gamemaster"
	"quoridor/searcher"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "<move> - play a pawn step (e2) or a wall (e3h, d5v)\n")
	io.WriteString(w, "board - show the board\n")
	io.WriteString(w, "moves - list your legal moves\n")
	io.WriteString(w, "hint - ask the computer for a move\n")
	io.WriteString(w, "undo / redo - take back or replay your last move and the reply\n")
	io.WriteString(w, "history - list the moves played so far\n")
	io.WriteString(w, "save <file> - write the moves played so far to a file\n")
	io.WriteString(w, "load <file> - replay a saved game\n")
	io.WriteString(w, "new - start over\n")
	io.WriteString(w, "exit - quit\n")
}

type Option func(c *Controller)

// WithoutComputer lets two humans share the board. The searcher only answers hints.
func WithoutComputer() Option {
	return func(c *Controller) {
		c.twoPlayers = true
	}
}

// Controller plays a human against the searcher, or two humans against each other.
type Controller struct {
	game       *gamemaster.Game
	searcher   *searcher.Searcher
	difficulty searcher.Difficulty
	human      game.Player
	twoPlayers bool
	out        io.Writer
}

func NewController(s *searcher.Searcher, difficulty searcher.Difficulty, human game.Player, out io.Writer, options ...Option) *Controller {
	c := &Controller{
		game:       gamemaster.NewGame(),
		searcher:   s,
		difficulty: difficulty,
		human:      human,
		out:        out,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Start shows the board and lets the computer open when it has the first move.
func (c *Controller) Start() error {
	if err := c.reply(); err != nil {
		return err
	}
	c.show()
	return nil
}

// Execute runs one command line. It reports whether the session should end.
func (c *Controller) Execute(line string) (bool, error) {
	raw := strings.TrimSpace(line)
	line = strings.ToLower(raw)
	switch line {
	case "":
	case "exit", "bye", "quit":
		return true, nil
	case "help":
		usage(c.out)
	case "board":
		c.show()
	case "moves":
		moves := lo.Map(c.game.LegalMoves(), func(m game.Move, _ int) string { return m.String() })
		fmt.Fprintln(c.out, strings.Join(moves, " "))
	case "history":
		moves := lo.Map(c.game.History(), func(m game.Move, _ int) string { return m.String() })
		fmt.Fprintln(c.out, strings.Join(moves, " "))
	case "hint":
		move, err := c.searcher.BestMove(c.game.State(), c.difficulty)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "try %s\n", move)
	case "undo":
		if err := c.takeBack(c.game.Undo); err != nil {
			return false, err
		}
		c.show()
	case "redo":
		if err := c.takeBack(c.game.Redo); err != nil {
			return false, err
		}
		c.show()
	case "new":
		c.game = gamemaster.NewGame()
		return false, c.Start()
	default:
		// File names keep their case
		fields := strings.Fields(raw)
		switch cmd := strings.ToLower(fields[0]); cmd {
		case "save", "load":
			if len(fields) != 2 {
				return false, fmt.Errorf("usage: %s <file>", cmd)
			}
			if cmd == "save" {
				return false, c.save(fields[1])
			}
			return false, c.load(fields[1])
		}
		return false, c.play(line)
	}
	return false, nil
}

// save writes the game as a single line of move notation.
func (c *Controller) save(path string) error {
	moves := lo.Map(c.game.History(), func(m game.Move, _ int) string { return m.String() })
	if err := os.WriteFile(path, []byte(strings.Join(moves, " ")+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	fmt.Fprintf(c.out, "saved %d moves to %s\n", len(moves), path)
	return nil
}

// load replays a saved game through the usual legality checks. The current game is kept when
// the file does not hold a legal game.
func (c *Controller) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	moves, err := game.ParseMoves(string(data))
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	g, err := gamemaster.Replay(moves)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	c.game = g
	log.Debug().Msgf("loaded %d moves from %s", len(moves), path)
	if err := c.reply(); err != nil {
		return err
	}
	c.show()
	return nil
}

func (c *Controller) play(notation string) error {
	if _, over := c.game.Winner(); over {
		return game.ErrGameOver
	}
	if !c.twoPlayers && c.game.State().Turn != c.human {
		return fmt.Errorf("%w: not your turn", game.ErrIllegalMove)
	}
	move, err := game.ParseMove(notation)
	if err != nil {
		return err
	}
	if err := c.game.Play(move); err != nil {
		return err
	}
	if err := c.reply(); err != nil {
		return err
	}
	c.show()
	return nil
}

// reply lets the computer move when it is its turn.
func (c *Controller) reply() error {
	state := c.game.State()
	if c.twoPlayers || state.IsTerminal() || state.Turn == c.human {
		return nil
	}
	move, err := c.searcher.BestMove(state, c.difficulty)
	if err != nil {
		return fmt.Errorf("computer failed to move: %w", err)
	}
	if err := c.game.Play(move); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "computer plays %s\n", move)
	return nil
}

// takeBack undoes or redoes single moves until it is the human's turn again. With two
// players every step is a single move.
func (c *Controller) takeBack(step func() error) error {
	if err := step(); err != nil {
		return err
	}
	if c.twoPlayers || c.game.State().Turn == c.human {
		return nil
	}
	err := step()
	if errors.Is(err, gamemaster.ErrNothingToUndo) || errors.Is(err, gamemaster.ErrNothingToRedo) {
		// The computer opened the game or its reply was never made
		return c.reply()
	}
	return err
}

func (c *Controller) show() {
	state := c.game.State()
	io.WriteString(c.out, Render(state))
	if winner, over := state.Winner(); over {
		if c.twoPlayers {
			fmt.Fprintf(c.out, "%s wins\n", winner)
		} else if winner == c.human {
			fmt.Fprintln(c.out, "you win")
		} else {
			fmt.Fprintln(c.out, "computer wins")
		}
	}
}

// Loop reads commands until exit or end of input.
func (c *Controller) Loop() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "quoridor> ",
		HistoryFile:     "/tmp/quoridor-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	c.out = l.Stdout()

	if err := c.Start(); err != nil {
		return err
	}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		quit, err := c.Execute(line)
		if errors.Is(err, game.ErrInvariantViolation) {
			log.Error().Err(err).Msg("")
			return err
		}
		if err != nil {
			fmt.Fprintf(l.Stderr(), "%v\n", err)
			continue
		}
		if quit {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
	return nil
}
