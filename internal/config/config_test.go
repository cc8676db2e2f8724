package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"EMPTY_SYMBOL", "PROMPT", "SHOW_BOARD", "HISTORY_LIMIT", "LOG_MOVES", "VERBOSE", "SESSION_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, '-', cfg.EmptySymbol)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.ShowBoard)
	assert.False(t, cfg.LogMoves)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EMPTY_SYMBOL", ".")
	t.Setenv("PROMPT", "move: ")
	t.Setenv("SHOW_BOARD", "false")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("LOG_MOVES", "1")
	t.Setenv("VERBOSE", "true")
	t.Setenv("SESSION_TTL_MINUTES", "2")

	cfg := LoadConfig()
	assert.Equal(t, '.', cfg.EmptySymbol)
	assert.Equal(t, "move: ", cfg.Prompt)
	assert.False(t, cfg.ShowBoard)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.True(t, cfg.LogMoves)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 2*time.Minute, cfg.SessionTTL)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Setenv("EMPTY_SYMBOL", "ab")
	t.Setenv("SHOW_BOARD", "maybe")
	t.Setenv("HISTORY_LIMIT", "-3")
	t.Setenv("SESSION_TTL_MINUTES", "soon")

	cfg := LoadConfig()
	assert.Equal(t, '-', cfg.EmptySymbol)
	assert.True(t, cfg.ShowBoard)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestGetEnvAsRune(t *testing.T) {
	t.Setenv("SYMBOL", "·")
	assert.Equal(t, '·', GetEnvAsRune("SYMBOL", '-'))

	t.Setenv("SYMBOL", "")
	assert.Equal(t, '-', GetEnvAsRune("SYMBOL", '-'))
}
