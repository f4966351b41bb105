package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ricochet/constant"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(dir, false, false, "info")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	logger.Info("discarded")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile, err := setupLogging(dir, true, false, "debug")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logger.Debug("test log message", "wall", 3)

	data, err := os.ReadFile(filepath.Join(dir, constant.LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "test log message") || !strings.Contains(out, "wall=3") {
		t.Errorf("Expected message and field in log, got %q", out)
	}
	if !strings.Contains(out, "run=") {
		t.Errorf("Expected run id in log, got %q", out)
	}
}

func TestSetupLogging_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	logger, logFile, err := setupLogging(dir, true, false, "warn")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	logger.Info("hidden")
	logger.Warn("shown")

	data, _ := os.ReadFile(filepath.Join(dir, constant.LogFileName))
	if strings.Contains(string(data), "hidden") {
		t.Error("Expected info line filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("Expected warn line in log")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, constant.LogFileName)

	// Just over the rotation threshold
	if err := os.WriteFile(logPath, make([]byte, constant.MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, logFile, err := setupLogging(dir, true, false, "info")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	old, err := os.Stat(logPath + ".old")
	if err != nil {
		t.Fatalf("Expected rotated .old file: %v", err)
	}
	if old.Size() != constant.MaxLogSize+1 {
		t.Errorf("Expected rotated size %d, got %d", constant.MaxLogSize+1, old.Size())
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Expected new log file: %v", err)
	}
	if info.Size() >= constant.MaxLogSize {
		t.Errorf("Expected fresh log file, got size %d", info.Size())
	}
}

func TestSetupLogging_BadLevel(t *testing.T) {
	if _, _, err := setupLogging(t.TempDir(), false, false, "chatty"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestResolveScene(t *testing.T) {
	tests := []struct {
		preset  string
		name    string
		wantErr bool
	}{
		{"box", "box", false},
		{"", "box", false},
		{"window", "window", false},
		{"maze", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			sc, err := resolveScene("", tt.preset)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveScene: %v", err)
			}
			if sc.Name != tt.name {
				t.Errorf("Expected %q, got %q", tt.name, sc.Name)
			}
		})
	}
}

func TestResolveScene_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	data := "name: tiny\nbody: {position: [1, 1], velocity: [0.5, 0], radius: 0.1}\nwalls:\n  - {id: 9, start: [3, -1], end: [3, 4]}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := resolveScene(path, "window")
	if err != nil {
		t.Fatalf("resolveScene: %v", err)
	}
	if sc.Name != "tiny" || len(sc.Walls) != 1 || sc.Walls[0].ID != 9 {
		t.Errorf("Unexpected scene %+v", sc)
	}
}
