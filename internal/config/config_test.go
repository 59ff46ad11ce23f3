package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BOT_TOKEN", "DATABASE_PATH", "DECK_SEED", "DECK_SHUFFLE", "TOP_LIMIT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, "./deck.db", cfg.DatabasePath)
	assert.True(t, cfg.ShuffleDeck)
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, 10, cfg.TopLimit)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_PATH", "/tmp/x.db")
	t.Setenv("DECK_SEED", "1234")
	t.Setenv("DECK_SHUFFLE", "false")
	t.Setenv("TOP_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.False(t, cfg.ShuffleDeck)
	assert.Equal(t, 3, cfg.TopLimit)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing token", env: map[string]string{}},
		{name: "bad seed", env: map[string]string{"BOT_TOKEN": "t", "DECK_SEED": "-1"}},
		{name: "bad shuffle", env: map[string]string{"BOT_TOKEN": "t", "DECK_SHUFFLE": "maybe"}},
		{name: "bad limit", env: map[string]string{"BOT_TOKEN": "t", "TOP_LIMIT": "0"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
