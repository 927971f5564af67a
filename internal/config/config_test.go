package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://todo.db")
	t.Setenv("DATABASE_MAX_CONNS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sqlite://todo.db", cfg.DatabaseURL)
	assert.Equal(t, "todo.db", cfg.DatabasePath())
	assert.Equal(t, 10, cfg.MaxConns)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite::memory:")
	t.Setenv("DATABASE_MAX_CONNS", "3")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DatabasePath())
	assert.Equal(t, 3, cfg.MaxConns)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "  ")

	_, err := load(viper.New())
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "todo.db")

	t.Setenv("DATABASE_MAX_CONNS", "0")
	_, err := load(viper.New())
	assert.Error(t, err)

	t.Setenv("DATABASE_MAX_CONNS", "")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = load(viper.New())
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "xml")
	_, err = load(viper.New())
	assert.Error(t, err)
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"sqlite://data/todo.db": "data/todo.db",
		"sqlite:todo.db":        "todo.db",
		"sqlite::memory:":       ":memory:",
		":memory:":              ":memory:",
		"/var/lib/todo.db":      "/var/lib/todo.db",
	}
	for in, want := range tests {
		assert.Equal(t, want, SQLitePath(in), in)
	}
}
