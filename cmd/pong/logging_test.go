package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLoggingDisabled(t *testing.T) {
	inTempDir(t)

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not share the terminal")
	}

	log.Printf("point scored by %s", "ai")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "point scored by ai") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}

func TestSetupLoggingAppends(t *testing.T) {
	inTempDir(t)

	first := setupLogging(true)
	log.Print("first run")
	first.Close()

	second := setupLogging(true)
	log.Print("second run")
	second.Close()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("Expected both runs in the log, got %q", data)
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	inTempDir(t)

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

	rotated, err := filepath.Glob(filepath.Join(logDir, "pong-*.log"))
	if err != nil {
		t.Fatalf("Failed to glob logs: %v", err)
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated log, got %v", rotated)
	}
	if info, err := os.Stat(rotated[0]); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated log to keep the old contents")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected a fresh log file, got %d bytes", info.Size())
	}
}
