package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"betboard/internal/board"
)

// Environment variables read by Load.
const (
	EnvSnapshot  = "BETBOARD_SNAPSHOT"
	EnvSeed      = "BETBOARD_SEED"
	EnvTab       = "BETBOARD_TAB"
	EnvMyBets    = "BETBOARD_MYBETS"
	EnvPeriod    = "BETBOARD_PERIOD"
	EnvAnimate   = "BETBOARD_ANIMATE"
	EnvTrend     = "BETBOARD_TREND"
	EnvLogFile   = "BETBOARD_LOG_FILE"
	EnvLogLevel  = "BETBOARD_LOG_LEVEL"
	EnvLoadLimit = "BETBOARD_LOAD_TIMEOUT"
)

// Config contains configurable parameters for the board.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Data source
	SnapshotPath string        // YAML/JSON snapshot file; empty means demo data
	DemoSeed     int64         // Seed for demo data (0 = time based)
	LoadTimeout  time.Duration // Timeout for loading a snapshot (default: 5s)

	// Initial selection
	InitialTab   board.Tab
	MyBetsSubTab board.MyBetsSubTab
	TopSubTab    board.Period

	// Presentation
	Animate   bool // Staggered row entrance (default: true)
	ShowTrend bool // Win trend chart under top players (default: true)

	// Logging
	LogFile  string // Empty discards logs while the TUI owns the terminal
	LogLevel string // logrus level name (default: "info")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	sel := board.DefaultSelection()
	return Config{
		LoadTimeout: 5 * time.Second,

		InitialTab:   sel.Tab,
		MyBetsSubTab: sel.MyBets,
		TopSubTab:    sel.Top,

		Animate:   true,
		ShowTrend: true,

		LogLevel: "info",
	}
}

// Selection returns the initial UI selection described by the config.
func (c Config) Selection() board.Selection {
	return board.Selection{Tab: c.InitialTab, MyBets: c.MyBetsSubTab, Top: c.TopSubTab}
}

// WithSnapshotPath returns a copy of the config reading data from path.
func (c Config) WithSnapshotPath(path string) Config {
	c.SnapshotPath = path
	return c
}

// WithDemoSeed returns a copy of the config with a fixed demo seed.
func (c Config) WithDemoSeed(seed int64) Config {
	c.DemoSeed = seed
	return c
}

// WithSelection returns a copy of the config starting on sel.
func (c Config) WithSelection(sel board.Selection) Config {
	c.InitialTab = sel.Tab
	c.MyBetsSubTab = sel.MyBets
	c.TopSubTab = sel.Top
	return c
}

// WithAnimate returns a copy of the config with row animation enabled/disabled.
func (c Config) WithAnimate(enabled bool) Config {
	c.Animate = enabled
	return c
}

// WithTrend returns a copy of the config with the trend chart enabled/disabled.
func (c Config) WithTrend(enabled bool) Config {
	c.ShowTrend = enabled
	return c
}

// WithLog returns a copy of the config with log destination and level.
func (c Config) WithLog(file, level string) Config {
	c.LogFile = file
	c.LogLevel = level
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.LoadTimeout <= 0 {
		return &ConfigError{Field: "LoadTimeout", Message: "must be positive"}
	}
	if _, err := board.ParseTab(string(c.InitialTab)); err != nil {
		return &ConfigError{Field: "InitialTab", Message: err.Error()}
	}
	if _, err := board.ParseMyBetsSubTab(string(c.MyBetsSubTab)); err != nil {
		return &ConfigError{Field: "MyBetsSubTab", Message: err.Error()}
	}
	if _, err := board.ParsePeriod(string(c.TopSubTab)); err != nil {
		return &ConfigError{Field: "TopSubTab", Message: err.Error()}
	}
	if c.LogLevel == "" {
		return &ConfigError{Field: "LogLevel", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load reads optional .env files and applies BETBOARD_* variables on top of
// the defaults. Missing env files are not an error.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return ApplyEnv(DefaultConfig(), os.LookupEnv)
}

// ApplyEnv overrides cfg with values found through lookup.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvSnapshot); ok {
		cfg.SnapshotPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, &ConfigError{Field: "DemoSeed", Message: "must be an integer"}
		}
		cfg.DemoSeed = seed
	}
	if v, ok := lookup(EnvTab); ok && v != "" {
		cfg.InitialTab = board.Tab(v)
	}
	if v, ok := lookup(EnvMyBets); ok && v != "" {
		cfg.MyBetsSubTab = board.MyBetsSubTab(v)
	}
	if v, ok := lookup(EnvPeriod); ok && v != "" {
		cfg.TopSubTab = board.Period(v)
	}
	if v, ok := lookup(EnvAnimate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, &ConfigError{Field: "Animate", Message: "must be a boolean"}
		}
		cfg.Animate = b
	}
	if v, ok := lookup(EnvTrend); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, &ConfigError{Field: "ShowTrend", Message: "must be a boolean"}
		}
		cfg.ShowTrend = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLoadLimit); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, &ConfigError{Field: "LoadTimeout", Message: "must be a duration"}
		}
		cfg.LoadTimeout = d
	}
	return cfg, nil
}
