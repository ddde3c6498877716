package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quoridor/meta"
	"quoridor/searcher"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
)

const (
	ModePlay     = "play"
	ModeSelfPlay = "selfplay"
	ModePruning  = "pruning"

	HumanFirst  = "first"
	HumanSecond = "second"
	HumanBoth   = "both"

	envPrefix = "QUORIDOR"
)

// Config values come from command-line flags, then QUORIDOR_* environment variables, then
// the given .env files, then built-in defaults.
type Config struct {
	Mode       string
	Difficulty searcher.Difficulty
	Human      string // seat of the human player in play mode, or both for two humans
	Games      int
	MaxTurns   int
	OutputDir  string
	EvalCache  int
	Seed       uint64
	Debug      bool
}

func (c *Config) Load(args []string, envFiles ...string) error {
	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return err
	}
	defaults := envDefaults{values: dotenv}

	var difficulty string
	fs := flag.NewFlagSetWithEnvPrefix("quoridor", envPrefix, flag.ContinueOnError)
	fs.StringVar(&c.Mode, "mode", defaults.stringVal("mode", ModePlay), "play, selfplay or pruning")
	fs.StringVar(&difficulty, "difficulty", defaults.stringVal("difficulty", searcher.Medium.String()), "computer strength: easy, medium or hard")
	fs.StringVar(&c.Human, "human", defaults.stringVal("human", HumanFirst), "seat of the human player in play mode: first, second or both")
	fs.IntVar(&c.Games, "games", defaults.intVal("games", meta.Games), "games per matchup in experiments")
	fs.IntVar(&c.MaxTurns, "max-turns", defaults.intVal("max-turns", meta.MaxTurns), "turn limit for self-play games")
	fs.StringVar(&c.OutputDir, "output-dir", defaults.stringVal("output-dir", meta.OutputDir), "directory for experiment results")
	fs.IntVar(&c.EvalCache, "eval-cache", defaults.intVal("eval-cache", meta.EvalCacheSize), "cached evaluations per searcher, 0 to disable")
	fs.Uint64Var(&c.Seed, "seed", defaults.uint64Val("seed", 1), "seed for random openings and random agents")
	fs.BoolVar(&c.Debug, "debug", defaults.boolVal("debug", false), "enable debug logging")
	if defaults.err != nil {
		return defaults.err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.Difficulty, err = searcher.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	switch c.Mode {
	case ModePlay, ModeSelfPlay, ModePruning:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Human {
	case HumanFirst, HumanSecond, HumanBoth:
	default:
		return fmt.Errorf("human must be first, second or both, got %q", c.Human)
	}
	if c.Games <= 0 || c.MaxTurns <= 0 || c.EvalCache < 0 {
		return fmt.Errorf("games and max-turns must be positive and eval-cache not negative")
	}
	return nil
}

// readEnvFiles reads the files that exist, later files overriding earlier ones. The process
// environment is left untouched.
func readEnvFiles(files []string) (map[string]string, error) {
	values := map[string]string{}
	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
	}
	return values, nil
}

// envDefaults looks flags up in .env values by their environment name and remembers the
// first malformed value.
type envDefaults struct {
	values map[string]string
	err    error
}

func (d *envDefaults) lookup(name string) (string, bool) {
	v, ok := d.values[envName(name)]
	return v, ok
}

func (d *envDefaults) stringVal(name, fallback string) string {
	if v, ok := d.lookup(name); ok {
		return v
	}
	return fallback
}

func (d *envDefaults) intVal(name string, fallback int) int {
	v, ok := d.lookup(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		d.fail(name, v, err)
		return fallback
	}
	return n
}

func (d *envDefaults) uint64Val(name string, fallback uint64) uint64 {
	v, ok := d.lookup(name)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		d.fail(name, v, err)
		return fallback
	}
	return n
}

func (d *envDefaults) boolVal(name string, fallback bool) bool {
	v, ok := d.lookup(name)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		d.fail(name, v, err)
		return fallback
	}
	return b
}

func (d *envDefaults) fail(name, value string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("invalid %s=%q: %w", envName(name), value, err)
	}
}

// envName maps a flag name to its environment variable, "max-turns" to QUORIDOR_MAX_TURNS.
func envName(name string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
