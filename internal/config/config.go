package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Config is the driver's runtime configuration, read from the environment
// (after .env has been loaded by main).
type Config struct {
	LogLevel         zerolog.Level
	Seed             uint64 // 0 = seed from the clock
	DailySalt        string
	SimGames         int
	SimWorkers       int
	AutoplayMaxSteps int
	NoColor          bool
}

func Load() (Config, error) {
	c := Config{
		DailySalt: envOr("DAILY_SALT", "local_dev_salt"),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}

	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	if v := os.Getenv("SET_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SET_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"SIM_GAMES", 100, &c.SimGames},
		{"SIM_WORKERS", 4, &c.SimWorkers},
		{"AUTOPLAY_MAX_STEPS", 500, &c.AutoplayMaxSteps},
	}
	for _, in := range ints {
		n, err := positiveInt(in.key, in.def)
		if err != nil {
			return Config{}, err
		}
		*in.dst = n
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
