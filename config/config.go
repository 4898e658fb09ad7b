package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"minimax-chess/engine"
)

type Config struct {
	MaxDepth        int           `mapstructure:"max_depth"`
	TimeBudget      time.Duration `mapstructure:"time_budget"`
	QuiescenceDepth int           `mapstructure:"quiescence_depth"`
	CacheSizeMB     int           `mapstructure:"cache_size_mb"`
	LogLevel        string        `mapstructure:"log_level"`
}

// Setup loads the configuration: defaults, then the optional file at
// cfgPath, then CHESS_* environment variables (e.g. CHESS_MAX_DEPTH).
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()

	def := engine.DefaultConfig()
	v.SetDefault("max_depth", def.MaxDepth)
	v.SetDefault("time_budget", def.TimeBudget)
	v.SetDefault("quiescence_depth", def.QuiescenceDepth)
	v.SetDefault("cache_size_mb", def.CacheSizeMB)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("CHESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.MaxDepth < 1:
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	case c.QuiescenceDepth < 0:
		return fmt.Errorf("quiescence_depth must not be negative, got %d", c.QuiescenceDepth)
	case c.TimeBudget < 0:
		return fmt.Errorf("time_budget must not be negative, got %v", c.TimeBudget)
	case c.CacheSizeMB < 1:
		return fmt.Errorf("cache_size_mb must be at least 1, got %d", c.CacheSizeMB)
	}
	return nil
}

// Engine maps the file settings onto the search configuration. A zero time
// budget means no limit.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		MaxDepth:        c.MaxDepth,
		TimeBudget:      c.TimeBudget,
		QuiescenceDepth: c.QuiescenceDepth,
		CacheSizeMB:     c.CacheSizeMB,
	}
}
