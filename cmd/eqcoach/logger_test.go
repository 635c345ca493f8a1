package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/easeaico/eq-coach/internal/config"
)

func TestSetupLoggerWritesToRotatedFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "eqcoach.log")
	logger, closer := setupLogger(config.Config{LogFile: path, LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("visible", "provider", "groq")
	if err := closer.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=visible") || !strings.Contains(out, "provider=groq") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestSetupLoggerDefaultsToStdout(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	logger, closer := setupLogger(config.Config{})
	if logger == nil || closer == nil {
		t.Fatalf("expected logger and closer")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) || logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected info level by default")
	}
}
