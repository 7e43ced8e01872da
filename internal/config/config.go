// Package config loads application configuration with viper.
//
// Sources, in precedence order: environment variables, then an optional
// config.yaml in the working directory or ./config, then defaults. Env
// vars keep deployment simple; the file exists for local development where
// exporting six variables per shell gets old.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/akutuh/bloglist-api/internal/auth"
)

// Config holds everything the server needs to start.
type Config struct {
	Port     int
	DBPath   string
	LogLevel string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// OpenLikes controls whether PUT /api/blogs/{id} (the likes update)
	// accepts anonymous callers. True reproduces the legacy behavior where
	// anyone may update likes on any post; false routes the endpoint
	// through the same bearer-token check as create and delete.
	OpenLikes bool
}

// Load reads configuration and validates the parts the server cannot run
// without. JWT_SECRET has no default on purpose — a guessable fallback
// secret would make every token forgeable.
func Load() (*Config, error) {
	viper.SetDefault("SERVER_PORT", 3003)
	viper.SetDefault("DB_PATH", "data/bloglist.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("BCRYPT_COST", auth.DefaultCost)
	viper.SetDefault("OPEN_LIKES", true)

	viper.AutomaticEnv()

	// Optional config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	_ = viper.ReadInConfig() // ignore error if no file

	cfg := &Config{
		Port:       viper.GetInt("SERVER_PORT"),
		DBPath:     viper.GetString("DB_PATH"),
		LogLevel:   viper.GetString("LOG_LEVEL"),
		JWTSecret:  viper.GetString("JWT_SECRET"),
		TokenTTL:   parseDuration(viper.GetString("TOKEN_TTL"), time.Hour),
		BcryptCost: viper.GetInt("BCRYPT_COST"),
		OpenLikes:  viper.GetBool("OPEN_LIKES"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}

	return cfg, nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}
