// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileLogger(t *testing.T, level Level, types, excludedTypes []string) (*Manager, string) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "test.log")
	logman, err := NewManager([]LoggingConfig{
		{
			MethodFile:    true,
			Filename:      filename,
			Level:         level,
			Types:         types,
			ExcludedTypes: excludedTypes,
		},
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return logman, filename
}

func readLog(t *testing.T, filename string) string {
	t.Helper()
	contents, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("could not read log file: %v", err)
	}
	return string(contents)
}

func TestLevelFiltering(t *testing.T) {
	logman, filename := fileLogger(t, LogWarning, []string{"*"}, nil)

	logman.Debug("main", "debug line")
	logman.Info("main", "info line")
	logman.Warning("main", "warning line")
	logman.Error("main", "error line")

	contents := readLog(t, filename)
	for _, unwanted := range []string{"debug line", "info line"} {
		if strings.Contains(contents, unwanted) {
			t.Errorf("line below the configured level was written: %q", unwanted)
		}
	}
	for _, wanted := range []string{"warning line", "error line"} {
		if !strings.Contains(contents, wanted) {
			t.Errorf("line at or above the configured level is missing: %q", wanted)
		}
	}
}

func TestTypeExclusion(t *testing.T) {
	logman, filename := fileLogger(t, LogDebug, []string{"*"}, []string{"convert"})

	logman.Info("charmap", "kept line")
	logman.Info("convert", "excluded line")

	contents := readLog(t, filename)
	if !strings.Contains(contents, "kept line") {
		t.Error("wildcard-captured line is missing")
	}
	if strings.Contains(contents, "excluded line") {
		t.Error("excluded type was written anyway")
	}
}

func TestTypeCaptureWithoutWildcard(t *testing.T) {
	logman, filename := fileLogger(t, LogDebug, []string{"charmap"}, nil)

	logman.Info("charmap", "captured line")
	logman.Info("main", "uncaptured line")

	contents := readLog(t, filename)
	if !strings.Contains(contents, "captured line") {
		t.Error("explicitly captured type is missing")
	}
	if strings.Contains(contents, "uncaptured line") {
		t.Error("type outside the capture list was written")
	}
}

func TestLogLineAssembly(t *testing.T) {
	logman, filename := fileLogger(t, LogDebug, []string{"*"}, nil)

	logman.Info("charmap", "added pairs", "脩", "修")

	contents := readLog(t, filename)
	if !strings.Contains(contents, "info") {
		t.Errorf("level display name missing from %q", contents)
	}
	if !strings.Contains(contents, "charmap") {
		t.Errorf("log type missing from %q", contents)
	}
	if !strings.Contains(contents, "added pairs : 脩 : 修") {
		t.Errorf("message parts not joined as expected in %q", contents)
	}
}

func TestNewManagerBadFile(t *testing.T) {
	_, err := NewManager([]LoggingConfig{
		{
			MethodFile: true,
			Filename:   filepath.Join(t.TempDir(), "missing", "test.log"),
			Level:      LogInfo,
			Types:      []string{"*"},
		},
	})
	if err == nil {
		t.Error("expected an error for an unopenable log file")
	}
}
