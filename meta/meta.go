// meta/meta.go
package meta

// MaxTurns caps the number of moves in a self-play game.
const MaxTurns = 200

// Games defines the number of games per match-up in an experiment.
const Games = 10

// OpeningPlies defines how many random moves open each self-play game.
const OpeningPlies = 4

// EvalCacheSize defines the default number of cached leaf evaluations per searcher.
const EvalCacheSize = 1 << 16

// OutputDir defines where experiment results are written.
const OutputDir = "results"
