package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty directory so the logs dir never touches the source tree
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		os.Chdir(wd)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_RotationFailureIsLogged(t *testing.T) {
	chdirTemp(t)

	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	// A non-empty directory at the rotated name makes the rename fail
	blocker := filepath.Join(logDir, "breakout-20240301-120000.log")
	if err := os.MkdirAll(filepath.Join(blocker, "keep"), 0755); err != nil {
		t.Fatalf("Failed to create blocking directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	logFile.Close()
	log.SetOutput(io.Discard)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data[maxLogSize:]), "log rotation failed") {
		t.Error("Expected the rotation failure to be written to the log")
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}

func TestLoadConfigSeed(t *testing.T) {
	cfg, err := loadConfig("", 99)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Game.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Game.Seed)
	}

	cfg, err = loadConfig("", 0)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Game.Seed == 0 {
		t.Error("Expected a clock seed when none is configured")
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), 0); err == nil {
		t.Error("Expected error for a missing config file")
	}
}
