// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envFile   = "config/.env"
	envPrefix = "TEAMDRAW"
)

// NewConfig loads configuration from an optional YAML file and the environment using viper
// with typed defaults and validation. An empty path skips the file.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")

	v.SetDefault("roster.backend", "csv")
	v.SetDefault("roster.dir", "data")
	v.SetDefault("roster.leaders_file", "leaders")
	v.SetDefault("roster.ob_file", "ob")
	v.SetDefault("roster.yb_file", "yb")
	v.SetDefault("roster.girls_file", "girls")
	v.SetDefault("roster.bootstrap", true)

	v.SetDefault("draw.leader_count", 8)

	v.SetDefault("export.backend", "xlsx")
	v.SetDefault("export.dir", "output")
	v.SetDefault("export.prefix", "draw_result")

	v.SetDefault("ui.animate", true)
	v.SetDefault("ui.reveal_interval", 150*time.Millisecond)
	v.SetDefault("ui.spin_interval", 70*time.Millisecond)
	v.SetDefault("ui.spin_frames", 6)

	v.SetDefault("command.timeout", 30*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"logging.file",
		"roster.backend",
		"roster.dir",
		"roster.leaders_file",
		"roster.ob_file",
		"roster.yb_file",
		"roster.girls_file",
		"roster.bootstrap",
		"draw.leader_count",
		"export.backend",
		"export.dir",
		"export.prefix",
		"ui.animate",
		"ui.reveal_interval",
		"ui.spin_interval",
		"ui.spin_frames",
		"command.timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
