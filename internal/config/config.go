package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultModelBin            = "ollama"
	DefaultModelName           = "deepseek-r1:8b"
	DefaultModelTimeoutSeconds = 120
	DefaultPollTimeoutSeconds  = 30
	DefaultWorkerCount         = 4
	DefaultQueueSize           = 64
)

// Config is assembled from the environment (optionally seeded from a
// .env file by the caller). The Telegram token is never embedded in
// the binary; startup fails when it is absent.
type Config struct {
	TelegramToken string

	ModelBin     string
	ModelName    string
	ModelTimeout time.Duration

	PollTimeout int
	WorkerCount int
	QueueSize   int
}

func Load() (Config, error) {
	cfg := Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		ModelBin:      getenvDefault("MODEL_BIN", DefaultModelBin),
		ModelName:     getenvDefault("MODEL_NAME", DefaultModelName),
	}
	if cfg.TelegramToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	timeoutSecs, err := getenvInt("MODEL_TIMEOUT_SECONDS", DefaultModelTimeoutSeconds)
	if err != nil {
		return Config{}, err
	}
	if timeoutSecs <= 0 {
		return Config{}, fmt.Errorf("MODEL_TIMEOUT_SECONDS must be positive, got %d", timeoutSecs)
	}
	cfg.ModelTimeout = time.Duration(timeoutSecs) * time.Second

	if cfg.PollTimeout, err = getenvInt("POLL_TIMEOUT_SECONDS", DefaultPollTimeoutSeconds); err != nil {
		return Config{}, err
	}
	if cfg.PollTimeout < 0 {
		return Config{}, fmt.Errorf("POLL_TIMEOUT_SECONDS must not be negative, got %d", cfg.PollTimeout)
	}

	if cfg.WorkerCount, err = getenvInt("WORKER_COUNT", DefaultWorkerCount); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("WORKER_COUNT must be positive, got %d", cfg.WorkerCount)
	}

	if cfg.QueueSize, err = getenvInt("QUEUE_SIZE", DefaultQueueSize); err != nil {
		return Config{}, err
	}
	if cfg.QueueSize <= 0 {
		return Config{}, fmt.Errorf("QUEUE_SIZE must be positive, got %d", cfg.QueueSize)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
