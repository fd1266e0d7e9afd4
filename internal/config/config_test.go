package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "MODEL_BIN", "MODEL_NAME",
		"MODEL_TIMEOUT_SECONDS", "POLL_TIMEOUT_SECONDS",
		"WORKER_COUNT", "QUEUE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_TokenRequired(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.ModelBin != DefaultModelBin || cfg.ModelName != DefaultModelName {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ModelTimeout != DefaultModelTimeoutSeconds*time.Second {
		t.Fatalf("timeout=%s", cfg.ModelTimeout)
	}
	if cfg.WorkerCount != DefaultWorkerCount || cfg.QueueSize != DefaultQueueSize {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MODEL_BIN", "/usr/local/bin/ollama")
	t.Setenv("MODEL_NAME", "llama3")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "5")
	t.Setenv("WORKER_COUNT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.ModelBin != "/usr/local/bin/ollama" || cfg.ModelName != "llama3" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ModelTimeout != 5*time.Second {
		t.Fatalf("timeout=%s", cfg.ModelTimeout)
	}
	if cfg.WorkerCount != 2 {
		t.Fatalf("workers=%d", cfg.WorkerCount)
	}
}

func TestLoad_InvalidInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}
