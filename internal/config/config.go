package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	// Seed makes every deck reproducible when HasSeed is set.
	Seed        uint64
	HasSeed     bool
	ShuffleDeck bool
	TopLimit    int
}

func Load() (*Config, error) {
	godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./deck.db"
	}

	cfg := &Config{
		BotToken:     token,
		DatabasePath: dbPath,
		ShuffleDeck:  true,
		TopLimit:     10,
	}

	if v := os.Getenv("DECK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DECK_SEED: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if v := os.Getenv("DECK_SHUFFLE"); v != "" {
		shuffle, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DECK_SHUFFLE: %w", err)
		}
		cfg.ShuffleDeck = shuffle
	}

	if v := os.Getenv("TOP_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid TOP_LIMIT: %q", v)
		}
		cfg.TopLimit = limit
	}

	return cfg, nil
}
