// Package logging wraps "github.com/op/go-logging" with the single
// preconfigured backend the rest of the engine uses, so every other
// package can get a ready Logger in one line instead of repeating the
// backend/formatter setup. Grounded on the teacher's internal/logging
// and franky_logging packages, trimmed to the one standard logger
// SPEC_FULL.md's components need (no separate search/UCI log streams).
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/kpeterson/chesscore/internal/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var standardLog = logging.MustGetLogger("chesscore")

// GetLog returns the shared Logger, configured with a stdout backend at
// the level set in config.Settings.Log.Level (config.Load must have run
// first for a file's level to take effect; otherwise it defaults to INFO).
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFromString(config.Settings.Log.Level), "")
	logging.SetBackend(leveled)
	return standardLog
}

func levelFromString(s string) logging.Level {
	switch s {
	case "CRITICAL":
		return logging.CRITICAL
	case "ERROR":
		return logging.ERROR
	case "WARNING":
		return logging.WARNING
	case "NOTICE":
		return logging.NOTICE
	case "DEBUG":
		return logging.DEBUG
	default:
		return logging.INFO
	}
}
