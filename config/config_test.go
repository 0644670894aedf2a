package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "csv", cfg.Roster.Backend)
	require.Equal(t, "data", cfg.Roster.Dir)
	require.Equal(t, 8, cfg.Draw.LeaderCount)
	require.Equal(t, "xlsx", cfg.Export.Backend)
	require.Equal(t, "draw_result", cfg.Export.Prefix)
	require.Equal(t, 150*time.Millisecond, cfg.UI.RevealInterval)
	require.True(t, cfg.UI.Animate)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("TEAMDRAW_ROSTER_BACKEND", "yaml")
	t.Setenv("TEAMDRAW_DRAW_LEADER_COUNT", "10")
	t.Setenv("TEAMDRAW_UI_ANIMATE", "false")

	cfg, err := NewConfig("")
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Roster.Backend)
	require.Equal(t, 10, cfg.Draw.LeaderCount)
	require.False(t, cfg.UI.Animate)
}

func TestNewConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamdraw.yaml")
	content := "roster:\n  dir: rosters\nexport:\n  backend: csv\n  dir: out\nui:\n  spin_interval: 10ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, "rosters", cfg.Roster.Dir)
	require.Equal(t, "csv", cfg.Export.Backend)
	require.Equal(t, "out", cfg.Export.Dir)
	require.Equal(t, 10*time.Millisecond, cfg.UI.SpinInterval)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Roster:  RosterConfig{Dir: "data", LeadersFile: "leaders"},
			Draw:    DrawConfig{LeaderCount: 8},
			Export:  ExportConfig{Dir: "output"},
			Command: CommandConfig{Timeout: time.Second},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "any_leader_count", mutate: func(c *Config) { c.Draw.LeaderCount = 0 }, ok: true},
		{name: "odd_leader_count", mutate: func(c *Config) { c.Draw.LeaderCount = 7 }},
		{name: "missing_roster_dir", mutate: func(c *Config) { c.Roster.Dir = "" }},
		{name: "missing_export_dir", mutate: func(c *Config) { c.Export.Dir = "" }},
		{name: "zero_timeout", mutate: func(c *Config) { c.Command.Timeout = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
