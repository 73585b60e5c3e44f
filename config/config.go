// Package config holds the settings shared by the blockfall hosts. Values
// come from Default, optionally overlaid by a YAML file and then by
// command-line flags.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

type Config struct {
	// Seed for the piece randomizer. Zero picks a seed from the clock.
	Seed       uint64 `yaml:"seed"`
	Randomizer string `yaml:"randomizer"`
	PlayerName string `yaml:"player_name"`

	// HighScoreDir is where the score table is written.
	HighScoreDir string `yaml:"high_score_dir"`

	// MoveDelay is the minimum time between repeats of a held direction key.
	MoveDelay time.Duration `yaml:"move_delay"`

	// TickRate is the number of simulation ticks per second for headless hosts.
	TickRate int `yaml:"tick_rate"`

	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`
}

const (
	DefaultMoveDelay = 100 * time.Millisecond
	DefaultTickRate  = 60
)

func Default() Config {
	return Config{
		Randomizer:   tetris.RandomizerUniform,
		PlayerName:   tetris.DefaultPlayerName,
		HighScoreDir: defaultHighScoreDir(),
		MoveDelay:    DefaultMoveDelay,
		TickRate:     DefaultTickRate,
	}
}

func defaultHighScoreDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".blockfall"
	}
	return filepath.Join(dir, "blockfall")
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	switch c.Randomizer {
	case "", tetris.RandomizerUniform, tetris.RandomizerBag:
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}
	if c.MoveDelay < 0 {
		errs = append(errs, fmt.Errorf("move_delay must not be negative, got %s", c.MoveDelay))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.HighScoreDir == "" {
		errs = append(errs, errors.New("high_score_dir must not be empty"))
	}

	return errors.Join(errs...)
}

// RegisterFlags binds the fields of c to flags on fs. The current values
// become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Randomizer seed (0 picks one from the clock).")
	fs.StringVar(&c.Randomizer, "randomizer", c.Randomizer, "Piece randomizer: uniform or bag.")
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "Player name recorded with high scores.")
	fs.StringVar(&c.HighScoreDir, "scores", c.HighScoreDir, "Directory the high score table is stored in.")
	fs.DurationVar(&c.MoveDelay, "move-delay", c.MoveDelay, "Minimum delay between repeated moves.")
	fs.IntVar(&c.TickRate, "tick-rate", c.TickRate, "Simulation ticks per second.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Write logs to this file.")
}

// Parse parses args into a Config. A -config flag names a YAML file that is
// loaded first; flags given explicitly on the command line override it. Any
// host-specific flags already registered on fs are parsed as well.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	path := fs.String("config", "", "YAML configuration file.")
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *path == "" {
		return cfg, cfg.Validate()
	}

	loaded, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	loaded.RegisterFlags(overlay)

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if overlay.Lookup(f.Name) == nil {
			return
		}
		if err := overlay.Set(f.Name, f.Value.String()); err != nil {
			setErr = errors.Join(setErr, err)
		}
	})
	if setErr != nil {
		return loaded, setErr
	}

	return loaded, loaded.Validate()
}

// Seeded returns the configured seed, or one derived from now when the seed is zero.
func (c Config) Seeded(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// GameOptions builds the session options described by c.
func (c Config) GameOptions(scores tetris.ScoreRecorder) ([]tetris.Option, error) {
	randomizer, err := tetris.NewRandomizer(c.Randomizer, c.Seeded(time.Now()))
	if err != nil {
		return nil, err
	}

	opts := []tetris.Option{
		tetris.WithRandomizer(randomizer),
		tetris.WithPlayerName(c.PlayerName),
	}
	if scores != nil {
		opts = append(opts, tetris.WithScoreRecorder(scores))
	}
	return opts, nil
}
