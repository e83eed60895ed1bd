// Package config assembles application settings from the environment.
// A .env file in the working directory is loaded first when present, so
// local development does not need exported variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/store"
)

// Config is everything the server process needs to start.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// SecureCookies marks session cookies Secure; enable behind TLS.
	SecureCookies bool

	// Development switches logging to the human-readable console format.
	Development bool

	DB  store.Config
	LLM llm.Config
}

// Load reads the optional .env file and then the MINDFLOW_* environment.
// LLM keys are resolved through llm.ConfigFromEnv with a DiscoverConfig
// fallback so a bare ANTHROPIC_API_KEY is enough to enable AI features.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr: envOr("MINDFLOW_ADDR", ":8080"),
		DB:   store.DefaultConfig(),
	}

	if d := os.Getenv("MINDFLOW_DB_DRIVER"); d != "" {
		cfg.DB.Driver = d
	}
	if dsn := os.Getenv("MINDFLOW_DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	var err error
	if cfg.SecureCookies, err = envBool("MINDFLOW_SECURE_COOKIES"); err != nil {
		return Config{}, err
	}
	if cfg.Development, err = envBool("MINDFLOW_DEV"); err != nil {
		return Config{}, err
	}

	if os.Getenv("MINDFLOW_LLM_PROVIDER") != "" {
		cfg.LLM = llm.ConfigFromEnv()
	} else if discovered, ok := llm.DiscoverConfig(); ok {
		cfg.LLM = discovered
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: expected a boolean, got %q", key, v)
	}
	return b, nil
}

// HasLLM reports whether any provider was configured.
func (c Config) HasLLM() bool {
	return c.LLM.Provider != ""
}
