package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(options{speed: 120, backend: "terminal", autoplay: true, mute: true, traceDir: "out"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Loop.Tick != 120*time.Millisecond {
		t.Errorf("Expected tick 120ms, got %s", cfg.Loop.Tick)
	}
	if cfg.Display.Backend != "terminal" || !cfg.Autopilot.Enabled || cfg.Audio.Enabled || cfg.Trace.Dir != "out" {
		t.Errorf("Flags not applied: %+v", cfg)
	}

	if _, err := loadConfig(options{backend: "plasma"}); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}

func TestRunReturnsConfigErrors(t *testing.T) {
	restoreLogger(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	err = run(options{configPath: filepath.Join(dir, "missing.yaml"), debug: true})
	if err == nil {
		t.Fatal("Expected an error for a missing config file")
	}

	// The debug log is closed by the time run returns, with the failure in it.
	data, readErr := os.ReadFile(filepath.Join(dir, logDir, logFileName))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.Contains(string(data), "config:") {
		t.Errorf("Expected the config failure in the log, got %q", data)
	}
}
