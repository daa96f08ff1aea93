package infrastructure

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pxmcli/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	cfg := config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger is nil")
	}

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	logger.Info("test message", "key", "value")

	// Close log file to allow reading on Windows
	CloseLogFile()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var logEntry map[string]interface{}
	if err := json.Unmarshal(content, &logEntry); err != nil {
		t.Errorf("Log output is not valid JSON: %v", err)
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key='value', got %v", logEntry["key"])
	}
}

func TestInitializeLoggerOnce(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	cfg := config.LoggingConfig{Level: "info", Output: "console"}

	first, err := InitializeLogger(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	// A second call must return the same instance regardless of config.
	second, err := InitializeLogger(config.LoggingConfig{Level: "error", Output: "console"})
	if err != nil {
		t.Fatalf("Second initialize returned error: %v", err)
	}
	if first != second {
		t.Error("InitializeLogger created a second logger instance")
	}
}

func TestGetLoggerUninitialized(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil before initialization")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
