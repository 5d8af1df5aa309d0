// Package config reads tabgroups settings from the environment.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/reorder"
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	DBPath   string
	LogCalls bool
	LogLevel slog.Level

	// Rows is the geometry used by `drag` and `tree --geometry`.
	Rows reorder.RowMetrics
	// DragActivation is the pointer travel before a drag shows hints.
	DragActivation float64

	// NoColor disables styling; set by NO_COLOR.
	NoColor bool
}

// DefaultConfig returns a Config with sensible defaults. The database lives
// in ~/.tabgroups, falling back to the working directory when there is no
// home directory.
func DefaultConfig() Config {
	dbPath := filepath.Join(".tabgroups", "tabgroups.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".tabgroups", "tabgroups.db")
	}
	return Config{
		DBPath:         dbPath,
		LogCalls:       false,
		LogLevel:       slog.LevelInfo,
		Rows:           reorder.DefaultRowMetrics(),
		DragActivation: reorder.DefaultActivationDistance,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TABGROUPS_DB"); v != "" {
		cfg.DBPath = v
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("TABGROUPS_LOG"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TABGROUPS_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}

	applyPositiveFloatEnv(&cfg.Rows.RowHeight, "TABGROUPS_ROW_HEIGHT")
	applyPositiveFloatEnv(&cfg.Rows.Width, "TABGROUPS_ROW_WIDTH")
	if v := os.Getenv("TABGROUPS_INDENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Rows.Indent = f
		}
	}
	if v := os.Getenv("TABGROUPS_DRAG_ACTIVATION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.DragActivation = f
		}
	}

	return cfg
}

func applyPositiveFloatEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}
