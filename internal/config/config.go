// Package config reads the server's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"git.sr.ht/~jakintosh/todo-server/internal/logging"
)

// ListenAddr is where the server accepts connections. It is not configurable.
const ListenAddr = "127.0.0.1:3000"

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

type Config struct {
	DatabaseURL string
	MaxConns    int
	LogLevel    slog.Level
	LogFormat   string
}

// DatabasePath is the sqlite path named by DatabaseURL.
func (c Config) DatabasePath() string {
	return SQLitePath(c.DatabaseURL)
}

// Load resolves the configuration from environment variables, applying
// defaults for everything except the database URL.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("database_max_conns", 10)
	v.SetDefault("log_level", "debug")
	v.SetDefault("log_format", logging.FormatText)
	for _, key := range []string{"database_url", "database_max_conns", "log_level", "log_format"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return Config{}, err
		}
	}

	url := strings.TrimSpace(v.GetString("database_url"))
	if url == "" {
		return Config{}, ErrMissingDatabaseURL
	}

	maxConns := v.GetInt("database_max_conns")
	if maxConns < 1 {
		return Config{}, fmt.Errorf("DATABASE_MAX_CONNS must be at least 1, got %d", maxConns)
	}

	level, err := logging.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}

	format := strings.ToLower(v.GetString("log_format"))
	if format != logging.FormatText && format != logging.FormatJSON {
		return Config{}, fmt.Errorf("unknown LOG_FORMAT %q", format)
	}

	return Config{
		DatabaseURL: url,
		MaxConns:    maxConns,
		LogLevel:    level,
		LogFormat:   format,
	}, nil
}

// SQLitePath strips the sqlite URL scheme so that "sqlite://todo.db",
// "sqlite:todo.db" and "todo.db" all name the same file, and
// "sqlite::memory:" names an in-memory database.
func SQLitePath(url string) string {
	if p, ok := strings.CutPrefix(url, "sqlite://"); ok {
		return p
	}
	if p, ok := strings.CutPrefix(url, "sqlite:"); ok {
		return p
	}
	return url
}
