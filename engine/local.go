package engine

import (
	"fmt"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/gamemaster"
	"quoridor/meta"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

type localEngine struct {
	agents   [2]agent.Agent
	ids      [2]int // AgentConfig.ID per seat
	opening  agent.Agent
	plies    int
	maxTurns int
}

// WithOpening plays the first plies moves with the given agent instead of the seated ones,
// so that games between deterministic agents do not all follow the same line.
func WithOpening(opening agent.Agent, plies int) Option {
	return func(e *localEngine) {
		if opening != nil && plies > 0 {
			e.opening = opening
			e.plies = plies
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithAgentIDs labels the seats in the game metric.
func WithAgentIDs(first, second int) Option {
	return func(e *localEngine) {
		e.ids = [2]int{first, second}
	}
}

// LocalEngine seats first and second at a fresh game.
func LocalEngine(first, second agent.Agent, options ...Option) Engine {
	if first == nil || second == nil {
		panic("need an agent for both seats")
	}
	e := &localEngine{
		agents:   [2]agent.Agent{first, second},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found or the turn limit is hit.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	g := gamemaster.NewGame()
	gameMetric := metrics.GameMetric{
		StartingAgent: e.ids[0],
		Winner:        "none",
		StartTime:     time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	turn := 1
	for ; turn <= e.maxTurns; turn++ {
		if _, over := g.Winner(); over {
			break
		}
		state := g.State()
		player := state.Turn

		seat := e.agents[player]
		if turn <= e.plies {
			seat = e.opening
		}
		move, searchMetric, err := seat.FindMove(state)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", turn, player, err)
		}
		if err := g.Play(move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", turn, player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner, over := g.Winner(); over {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("%s won after %d moves", winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	return gameMetric, moveMetrics, nil
}
