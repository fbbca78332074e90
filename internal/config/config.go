package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with an
// optional .env file on top.
type Config struct {
	Addr        string
	TurnTimeout time.Duration
	// Seed fixes every table's RNG for replayable games; 0 (the default)
	// seeds from the clock.
	Seed int64
}

// Load reads configuration. A missing .env file is fine; malformed values
// are not.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getenv("SABACC_ADDR", ":8080"),
		TurnTimeout: 30 * time.Second,
	}

	if v := os.Getenv("SABACC_TURN_TIMEOUT_SEC"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid SABACC_TURN_TIMEOUT_SEC %q", v)
		}
		cfg.TurnTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("SABACC_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SABACC_SEED %q", v)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
