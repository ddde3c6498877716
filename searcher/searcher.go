package searcher

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"quoridor/experiments/metrics"
	"quoridor/game"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrNoLegalMoves      = errors.New("no legal moves")
)

type Option func(s *Searcher)

// Result is the outcome of a search from the side to move's point of view.
type Result struct {
	Move   game.Move
	Score  float64
	Metric metrics.SearchMetric
}

// Searcher runs depth-bounded minimax with alpha-beta pruning. A Searcher is not safe for
// concurrent use when an evaluation cache or metrics are enabled.
type Searcher struct {
	pruning bool
	weights game.Weights
	cache   *simplelru.LRU
	metrics metrics.Collector
}

type evalKey struct {
	hash        game.StateHash
	perspective game.Player
	difficulty  Difficulty
}

// WithoutPruning searches the full minimax tree. Results are identical to the pruned search.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithWeights(weights game.Weights) Option {
	return func(s *Searcher) {
		s.weights = weights
	}
}

// WithEvalCache memoises leaf evaluations in an LRU cache holding up to size entries.
func WithEvalCache(size int) Option {
	return func(s *Searcher) {
		if size <= 0 {
			return
		}
		cache, err := simplelru.NewLRU(size, nil)
		if err != nil {
			panic(fmt.Sprintf("failed to create evaluation cache: %v", err))
		}
		s.cache = cache
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		pruning: true,
		weights: game.DefaultWeights,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// BestMove returns the move the side to move should play at the given difficulty.
func (s *Searcher) BestMove(state *game.GameState, difficulty Difficulty) (game.Move, error) {
	result, err := s.Search(state, difficulty)
	if err != nil {
		return game.Move{}, err
	}
	return result.Move, nil
}

// Search evaluates every legal move of the side to move to the difficulty's depth and returns
// the best one. Ties go to the move searched first. The state is never modified.
func (s *Searcher) Search(state *game.GameState, difficulty Difficulty) (Result, error) {
	if !difficulty.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}
	if state.IsTerminal() {
		return Result{}, game.ErrGameOver
	}

	depth := difficulty.Depth()
	r := &run{
		Searcher:    s,
		perspective: state.Turn,
		difficulty:  difficulty,
		weights:     difficulty.Weights(s.weights),
	}

	s.metrics.Start(depth, s.pruning)
	s.metrics.AddNode()
	result, err := r.root(state, depth)
	if err != nil {
		return Result{}, err
	}
	result.Metric = s.metrics.Complete()
	result.Metric.Difficulty = difficulty.String()
	result.Metric.Score = result.Score

	log.Debug().
		Str("player", state.Turn.String()).
		Str("difficulty", difficulty.String()).
		Str("move", result.Move.String()).
		Float64("score", result.Score).
		Int("nodes", result.Metric.Nodes).
		Int("cutoffs", result.Metric.Cutoffs).
		Msg("search complete")
	return result, nil
}

// run holds the settings of a single search.
type run struct {
	*Searcher
	perspective game.Player
	difficulty  Difficulty
	weights     game.Weights
}

func (r *run) root(state *game.GameState, depth int) (Result, error) {
	moves, err := r.order(state)
	if err != nil {
		return Result{}, err
	}
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w for %s", ErrNoLegalMoves, state.Turn)
	}

	// A pawn step onto the goal row cannot be improved on
	if first := moves[0]; first.Kind == game.PawnStep && first.To.Row == state.Turn.GoalRow() {
		return Result{Move: first, Score: game.WinScore + float64(depth-1)}, nil
	}

	best := Result{Score: math.Inf(-1)}
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, m := range moves {
		next := *state
		if err := next.Apply(m); err != nil {
			return Result{}, fmt.Errorf("search move %s: %w", m, err)
		}
		score, err := r.minimax(&next, depth-1, alpha, beta, false)
		if err != nil {
			return Result{}, err
		}
		if i == 0 || score > best.Score {
			best.Move, best.Score = m, score
		}
		if r.pruning {
			alpha = max(alpha, best.Score)
		}
	}
	return best, nil
}

func (r *run) minimax(state *game.GameState, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	r.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		return r.evaluate(state, depth)
	}

	moves, err := r.order(state)
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		// Stuck without walls: the position stands as it is
		return r.evaluate(state, depth)
	}

	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	for _, m := range moves {
		next := *state
		if err := next.Apply(m); err != nil {
			return 0, fmt.Errorf("search move %s: %w", m, err)
		}
		score, err := r.minimax(&next, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}

		if maximizing {
			value = max(value, score)
			alpha = max(alpha, value)
		} else {
			value = min(value, score)
			beta = min(beta, value)
		}
		if r.pruning && beta <= alpha {
			r.metrics.AddCutoff()
			break
		}
	}
	return value, nil
}

// evaluate scores a leaf for the searching player. Decided games score beyond any heuristic
// value, sooner wins and later losses more so.
func (r *run) evaluate(state *game.GameState, depth int) (float64, error) {
	r.metrics.AddLeaf()
	if winner, over := state.Winner(); over {
		if winner == r.perspective {
			return game.WinScore + float64(depth), nil
		}
		return -game.WinScore - float64(depth), nil
	}

	key := evalKey{hash: state.Hash(), perspective: r.perspective, difficulty: r.difficulty}
	if r.cache != nil {
		if score, ok := r.cache.Get(key); ok {
			r.metrics.AddCacheHit()
			return score.(float64), nil
		}
	}

	score, err := game.Evaluate(state, r.perspective, r.weights)
	if err != nil {
		log.Error().Err(err).Msgf("evaluation failed for position %x", uint64(key.hash))
		return 0, err
	}
	if r.cache != nil {
		r.cache.Add(key, score)
	}
	return score, nil
}

type rankedStep struct {
	move     game.Move
	distance int
}

// order returns the legal moves of the side to move with pawn steps first, sorted by the
// mover's remaining distance after the step, then wall placements in generation order.
func (r *run) order(state *game.GameState) ([]game.Move, error) {
	pawns, walls := lo.FilterReject(state.LegalMoves(), func(m game.Move, _ int) bool {
		return m.Kind == game.PawnStep
	})

	steps := lo.Map(pawns, func(m game.Move, _ int) rankedStep {
		return rankedStep{move: m, distance: game.DistanceToGoal(state, m.To, state.Turn)}
	})
	if _, stranded := lo.Find(steps, func(s rankedStep) bool { return s.distance == game.Unreachable }); stranded {
		return nil, fmt.Errorf("%w: %s has no path to goal", game.ErrInvariantViolation, state.Turn)
	}
	slices.SortStableFunc(steps, func(a, b rankedStep) int {
		return cmp.Compare(a.distance, b.distance)
	})

	ordered := lo.Map(steps, func(s rankedStep, _ int) game.Move { return s.move })
	return append(ordered, walls...), nil
}
