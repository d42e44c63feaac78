package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIURL   string // ROLODEX_API_URL (default "http://localhost:8000")
	APIToken string // ROLODEX_API_TOKEN (optional, empty = no Authorization header)
	NATSURL  string // ROLODEX_NATS_URL (optional, empty = polling instead of events)

	PageSize     int           // ROLODEX_PAGE_SIZE (default 25)
	Debounce     time.Duration // ROLODEX_DEBOUNCE (default 300ms)
	CountTTL     time.Duration // ROLODEX_COUNT_TTL (default 5m)
	PollInterval time.Duration // ROLODEX_POLL_INTERVAL (default 2s; job status polling)
}

func Load() (*Config, error) {
	c := &Config{
		APIURL:   envOrDefault("ROLODEX_API_URL", "http://localhost:8000"),
		APIToken: os.Getenv("ROLODEX_API_TOKEN"),
		NATSURL:  os.Getenv("ROLODEX_NATS_URL"),
	}

	size, err := envInt("ROLODEX_PAGE_SIZE", 25)
	if err != nil {
		return nil, err
	}
	if size <= 0 || size > 500 {
		return nil, fmt.Errorf("ROLODEX_PAGE_SIZE must be between 1 and 500, got %d", size)
	}
	c.PageSize = size

	if c.Debounce, err = envDuration("ROLODEX_DEBOUNCE", 300*time.Millisecond); err != nil {
		return nil, err
	}
	if c.CountTTL, err = envDuration("ROLODEX_COUNT_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if c.PollInterval, err = envDuration("ROLODEX_POLL_INTERVAL", 2*time.Second); err != nil {
		return nil, err
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
