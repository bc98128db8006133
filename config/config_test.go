package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"led-snake/game/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Board.Rows != 5 || cfg.Board.Cols != 5 {
		t.Errorf("Expected 5x5 board, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Board.Start != (types.Point{}) || cfg.Board.Heading != types.Up {
		t.Errorf("Expected start (0,0) heading up, got %v %v", cfg.Board.Start, cfg.Board.Heading)
	}
	want := []types.Point{{Row: 0, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 2}}
	if len(cfg.Board.Fruits) != len(want) {
		t.Fatalf("Expected %d fruit, got %v", len(want), cfg.Board.Fruits)
	}
	for i := range want {
		if cfg.Board.Fruits[i] != want[i] {
			t.Errorf("Fruit %d = %v, want %v", i, cfg.Board.Fruits[i], want[i])
		}
	}
	if cfg.Loop.Tick != 500*time.Millisecond || cfg.Loop.InputPoll != 100*time.Millisecond {
		t.Errorf("Unexpected loop timings %s / %s", cfg.Loop.Tick, cfg.Loop.InputPoll)
	}
	if !cfg.Display.EvenRowsReversed {
		t.Error("Expected even rows reversed")
	}
	if cfg.Display.Palette.Snake != (RGB{G: 100}) || cfg.Display.Palette.Fruit != (RGB{R: 100}) {
		t.Errorf("Unexpected palette %+v", cfg.Display.Palette)
	}
	if cfg.Engine.SuppressReversal || cfg.Fruit.Respawn || cfg.Autopilot.Enabled {
		t.Error("Optional behaviours should default off")
	}
	if cfg.Input.ErrorMargin != 50 {
		t.Errorf("Expected error margin 50, got %d", cfg.Input.ErrorMargin)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
board:
  rows: 6
  heading: right
  fruits:
    - {row: 5, col: 4}
loop:
  tick: 250ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 5 {
		t.Errorf("Expected 6x5, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Board.Heading != types.Right {
		t.Errorf("Expected heading right, got %v", cfg.Board.Heading)
	}
	if len(cfg.Board.Fruits) != 1 || cfg.Board.Fruits[0] != (types.Point{Row: 5, Col: 4}) {
		t.Errorf("Fruit list should be replaced, got %v", cfg.Board.Fruits)
	}
	if cfg.Loop.Tick != 250*time.Millisecond {
		t.Errorf("Expected tick 250ms, got %s", cfg.Loop.Tick)
	}
	if cfg.Loop.InputPoll != 100*time.Millisecond {
		t.Errorf("Untouched fields should keep defaults, got input_poll %s", cfg.Loop.InputPoll)
	}
}

func TestLoadRejectsBadBoards(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"fruit off board", "board: {fruits: [{row: 5, col: 0}]}"},
		{"fruit on start", "board: {fruits: [{row: 0, col: 0}]}"},
		{"duplicate fruit", "board: {fruits: [{row: 1, col: 1}, {row: 1, col: 1}]}"},
		{"start off board", "board: {start: {row: -1, col: 0}}"},
		{"empty board", "board: {rows: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Expected ErrInvalidBoard, got %v", err)
			}
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown heading", "board: {heading: sideways}"},
		{"zero tick", "loop: {tick: 0s}"},
		{"unknown backend", "display: {backend: plasma}"},
		{"not yaml", "board: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
