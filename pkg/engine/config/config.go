// Package config loads labyrinth settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds command configuration. Flags override the environment.
type Config struct {
	RoomLimit   int    `env:"LABYRINTH_ROOM_LIMIT"  envDefault:"100"`
	Seed        int64  `env:"LABYRINTH_SEED"`
	Color       bool   `env:"LABYRINTH_COLOR"       envDefault:"true"`
	Locale      string `env:"LABYRINTH_LOCALE"      envDefault:"en_GB"`
	LocaleDir   string `env:"LABYRINTH_LOCALE_DIR"  envDefault:"locales"`
	DBPath      string `env:"LABYRINTH_DB"`
	Bounds      string `env:"LABYRINTH_BOUNDS"`
	JSON        bool   `env:"LABYRINTH_JSON"`
	Check       bool   `env:"LABYRINTH_CHECK"`
	Interactive bool   `env:"LABYRINTH_INTERACTIVE"`
	Load        string `env:"LABYRINTH_LOAD"`
	List        bool   `env:"LABYRINTH_LIST"`
	Dump        string `env:"LABYRINTH_DUMP"`
	Verbose     bool   `env:"LABYRINTH_VERBOSE"`
}

// ParseConfig parses the environment, then flags from args, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.RoomLimit, "rooms", cfg.RoomLimit, "number of rooms to generate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colour the map when writing to a terminal")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale")
	fs.StringVar(&cfg.LocaleDir, "locale-dir", cfg.LocaleDir, "directory holding message catalogues")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file to save mazes to")
	fs.StringVar(&cfg.Bounds, "bounds", cfg.Bounds, "limit growth to a box, as minX,minY,maxX,maxY")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the maze as JSON instead of a map")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "verify the maze is perfect before printing it")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "browse seeds with single key presses")
	fs.StringVar(&cfg.Load, "load", cfg.Load, "print a saved maze by id (needs -db)")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list saved mazes (needs -db)")
	fs.StringVar(&cfg.Dump, "dump", cfg.Dump, "write a debug dump of the maze to this file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log generation notices")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used together
func (c Config) Validate() error {
	if c.RoomLimit <= 0 {
		return fmt.Errorf("%w: room limit must be positive, got %d", ErrInvalidConfig, c.RoomLimit)
	}
	if (c.Load != "" || c.List) && strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: -load and -list need a database path", ErrInvalidConfig)
	}
	if c.Load != "" && c.List {
		return fmt.Errorf("%w: -load and -list cannot be combined", ErrInvalidConfig)
	}
	if c.Interactive && c.JSON {
		return fmt.Errorf("%w: -interactive cannot print JSON", ErrInvalidConfig)
	}
	if c.Bounds != "" {
		if _, err := ParseBounds(c.Bounds); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
