// Package config loads server configuration from defaults, an optional
// compass.yaml, and COMPASS_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/wichai/compass/internal/auth"
)

// Config holds the serve-mode settings.
type Config struct {
	Listen        string        `mapstructure:"listen"`
	DatabaseURL   string        `mapstructure:"database_url"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
}

// Load reads the configuration. DatabaseURL left empty means the local
// SQLite database; a postgres:// URL switches the store to Postgres.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("session_secret", "")
	v.SetDefault("session_ttl", auth.DefaultSessionTTL)

	v.SetConfigName("compass")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/compass")
	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine; a malformed one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("COMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
