// Package config loads the engine's TOML configuration file and exposes
// its defaults. Grounded on the teacher's config package (BurntSushi/toml
// decoding into a package-level Settings value, set up once via Load),
// narrowed to logging and search settings.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, holding built-in defaults and
// optionally overridden by a TOML file via Load.
var Settings = conf{
	Log: logConfig{
		Level: "INFO",
	},
	Search: searchConfig{
		DefaultDepth:          6,
		DefaultMoveTimeMs:     5000,
		UseQuiescence:         true,
		UseKillerMoves:        true,
		UseHistoryHeuristic:   true,
		UseTranspositionTable: true,
		TTSizeMB:              32,
	},
}

type conf struct {
	Log    logConfig
	Search searchConfig
}

type logConfig struct {
	// Level is one of DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL.
	Level string
}

// searchConfig holds the search settings. The Use* toggles and TTSizeMB
// are read by the search package; DefaultDepth and DefaultMoveTimeMs are
// decoded from the file but no package reads them (the CLI's -depth and
// -movetime flags carry their own defaults).
type searchConfig struct {
	DefaultDepth      int
	DefaultMoveTimeMs int

	UseQuiescence         bool
	UseKillerMoves        bool
	UseHistoryHeuristic   bool
	UseTranspositionTable bool
	TTSizeMB              int
}

// Load decodes path into Settings, leaving any field the file omits at
// its default. An empty path is not an error - Settings keeps its
// built-in defaults; a file that cannot be read or decoded is.
func Load(path string) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return nil
}
