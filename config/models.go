package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Roster  RosterConfig  `mapstructure:"roster"`
	Draw    DrawConfig    `mapstructure:"draw"`
	Export  ExportConfig  `mapstructure:"export"`
	UI      UIConfig      `mapstructure:"ui"`
	Command CommandConfig `mapstructure:"command"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Roster.Dir == "" {
		return errors.New("roster.dir is required")
	}
	if c.Roster.LeadersFile == "" {
		return errors.New("roster.leaders_file is required")
	}
	if c.Draw.LeaderCount < 0 || c.Draw.LeaderCount%2 != 0 {
		return fmt.Errorf("draw.leader_count must be a non-negative even number, got %d", c.Draw.LeaderCount)
	}
	if c.Export.Dir == "" {
		return errors.New("export.dir is required")
	}
	if c.UI.SpinFrames < 0 {
		return errors.New("ui.spin_frames must not be negative")
	}
	if c.Command.Timeout <= 0 {
		return errors.New("command.timeout must be positive")
	}
	return nil
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// RosterConfig describes where rosters are read from.
// File names are given without extension; the backend appends its own.
type RosterConfig struct {
	Backend     string `mapstructure:"backend"`
	Dir         string `mapstructure:"dir"`
	LeadersFile string `mapstructure:"leaders_file"`
	OBFile      string `mapstructure:"ob_file"`
	YBFile      string `mapstructure:"yb_file"`
	GirlsFile   string `mapstructure:"girls_file"`
	Bootstrap   bool   `mapstructure:"bootstrap"`
}

// DrawConfig contains draw rules. LeaderCount 0 accepts any valid leader count.
type DrawConfig struct {
	LeaderCount int `mapstructure:"leader_count"`
}

// ExportConfig contains export preferences.
type ExportConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Prefix  string `mapstructure:"prefix"`
}

// UIConfig controls the terminal reveal animation.
type UIConfig struct {
	Animate        bool          `mapstructure:"animate"`
	RevealInterval time.Duration `mapstructure:"reveal_interval"`
	SpinInterval   time.Duration `mapstructure:"spin_interval"`
	SpinFrames     int           `mapstructure:"spin_frames"`
}

// CommandConfig contains per-command execution limits.
type CommandConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}
