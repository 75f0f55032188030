package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betboard/internal/board"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5*time.Second, cfg.LoadTimeout)
	assert.Equal(t, board.TabLeaderboard, cfg.InitialTab)
	assert.Equal(t, board.SubTabOngoing, cfg.MyBetsSubTab)
	assert.Equal(t, board.PeriodDay, cfg.TopSubTab)
	assert.True(t, cfg.Animate)
	assert.True(t, cfg.ShowTrend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SnapshotPath)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		field   string
		wantErr bool
	}{
		{name: "valid default config", cfg: DefaultConfig()},
		{name: "zero timeout", cfg: Config{LoadTimeout: 0}, field: "LoadTimeout", wantErr: true},
		{
			name:    "unknown tab",
			cfg:     DefaultConfig().WithSelection(board.Selection{Tab: "stats", MyBets: board.SubTabOngoing, Top: board.PeriodDay}),
			field:   "InitialTab",
			wantErr: true,
		},
		{
			name:    "bad my bets sub-tab",
			cfg:     DefaultConfig().WithSelection(board.Selection{Tab: board.TabMyBets, MyBets: "all", Top: board.PeriodDay}),
			field:   "MyBetsSubTab",
			wantErr: true,
		},
		{
			name:    "bad period",
			cfg:     DefaultConfig().WithSelection(board.Selection{Tab: board.TabTop, MyBets: board.SubTabEnded, Top: "week"}),
			field:   "TopSubTab",
			wantErr: true,
		},
		{name: "empty log level", cfg: DefaultConfig().WithLog("", ""), field: "LogLevel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "want *ConfigError, got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_WithModifiersCopy(t *testing.T) {
	base := DefaultConfig()
	modified := base.WithSnapshotPath("snap.yaml").WithDemoSeed(42).WithAnimate(false).WithTrend(false)

	assert.Empty(t, base.SnapshotPath, "original must stay untouched")
	assert.True(t, base.Animate)
	assert.Equal(t, "snap.yaml", modified.SnapshotPath)
	assert.Equal(t, int64(42), modified.DemoSeed)
	assert.False(t, modified.Animate)
	assert.False(t, modified.ShowTrend)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSnapshot:  " data/board.yaml ",
		EnvSeed:      "7",
		EnvTab:       "top",
		EnvPeriod:    "month",
		EnvMyBets:    "ended",
		EnvAnimate:   "false",
		EnvTrend:     "0",
		EnvLogFile:   "/tmp/betboard.log",
		EnvLogLevel:  "debug",
		EnvLoadLimit: "250ms",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, err := ApplyEnv(DefaultConfig(), lookup)
	require.NoError(t, err)

	assert.Equal(t, "data/board.yaml", cfg.SnapshotPath)
	assert.Equal(t, int64(7), cfg.DemoSeed)
	assert.Equal(t, board.Selection{Tab: board.TabTop, MyBets: board.SubTabEnded, Top: board.PeriodMonth}, cfg.Selection())
	assert.False(t, cfg.Animate)
	assert.False(t, cfg.ShowTrend)
	assert.Equal(t, "/tmp/betboard.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.LoadTimeout)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
		field string
	}{
		{EnvSeed, "abc", "DemoSeed"},
		{EnvAnimate, "maybe", "Animate"},
		{EnvTrend, "sometimes", "ShowTrend"},
		{EnvLoadLimit, "soon", "LoadTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			_, err := ApplyEnv(DefaultConfig(), lookup)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BETBOARD_TAB=mybets\nBETBOARD_MYBETS=ended\n"), 0o600))

	// godotenv never overrides variables that are already set.
	t.Setenv(EnvTab, "")
	os.Unsetenv(EnvTab)
	t.Setenv(EnvMyBets, "")
	os.Unsetenv(EnvMyBets)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, board.TabMyBets, cfg.InitialTab)
	assert.Equal(t, board.SubTabEnded, cfg.MyBetsSubTab)
}
