// Package config loads game settings from YAML on top of embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"led-snake/game/types"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrInvalidBoard = errors.New("invalid board layout")

// Config holds every tunable of the game and its driver loop.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Engine    EngineConfig    `yaml:"engine"`
	Fruit     FruitConfig     `yaml:"fruit"`
	Loop      LoopConfig      `yaml:"loop"`
	Display   DisplayConfig   `yaml:"display"`
	Input     InputConfig     `yaml:"input"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Audio     AudioConfig     `yaml:"audio"`
	Trace     TraceConfig     `yaml:"trace"`
}

// BoardConfig describes the grid and its initial contents.
type BoardConfig struct {
	Rows    int             `yaml:"rows"`
	Cols    int             `yaml:"cols"`
	Start   types.Point     `yaml:"start"`
	Heading types.Direction `yaml:"heading"`
	Fruits  []types.Point   `yaml:"fruits"`
}

// Size is the number of cells, which is also the segment pool capacity.
func (b BoardConfig) Size() int { return b.Rows * b.Cols }

type EngineConfig struct {
	SuppressReversal bool `yaml:"suppress_reversal"` // ignore 180° turns into the neck
}

type FruitConfig struct {
	Respawn bool   `yaml:"respawn"` // place a new fruit after each one eaten
	Seed    uint64 `yaml:"seed"`
}

type LoopConfig struct {
	Tick      time.Duration `yaml:"tick"`       // time between moves
	InputPoll time.Duration `yaml:"input_poll"` // input sampler period
}

type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type PaletteConfig struct {
	Snake RGB `yaml:"snake"`
	Fruit RGB `yaml:"fruit"`
	Empty RGB `yaml:"empty"`
}

type DisplayConfig struct {
	Backend          string        `yaml:"backend"` // window or terminal
	LEDSize          int           `yaml:"led_size"`
	EvenRowsReversed bool          `yaml:"even_rows_reversed"`
	Palette          PaletteConfig `yaml:"palette"`
}

type InputConfig struct {
	ErrorMargin int `yaml:"error_margin"` // joystick dead band at each end of the ADC range
}

type AutopilotConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Epsilon      float64 `yaml:"epsilon"`
	LearningRate float64 `yaml:"learning_rate"`
	Discount     float64 `yaml:"discount"`
	Seed         uint64  `yaml:"seed"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TraceConfig struct {
	Dir string `yaml:"dir"` // empty disables the step trace
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg. Only fields present in data change,
// except lists, which are replaced wholesale.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks the board layout and loop timings.
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Loop.Tick <= 0 {
		return fmt.Errorf("loop.tick must be positive, got %s", c.Loop.Tick)
	}
	if c.Loop.InputPoll <= 0 {
		return fmt.Errorf("loop.input_poll must be positive, got %s", c.Loop.InputPoll)
	}
	switch c.Display.Backend {
	case "window", "terminal":
	default:
		return fmt.Errorf("display.backend %q: want window or terminal", c.Display.Backend)
	}
	return nil
}

// Validate checks dimensions and that the start and fruit cells are on the
// board and do not overlap.
func (b BoardConfig) Validate() error {
	if b.Rows < 1 || b.Cols < 1 {
		return fmt.Errorf("%w: %dx%d board", ErrInvalidBoard, b.Rows, b.Cols)
	}
	if !b.contains(b.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidBoard, b.Start, b.Rows, b.Cols)
	}
	if !b.Heading.Valid() {
		return fmt.Errorf("%w: heading %v", ErrInvalidBoard, b.Heading)
	}
	seen := make(map[types.Point]bool, len(b.Fruits))
	for _, f := range b.Fruits {
		if !b.contains(f) {
			return fmt.Errorf("%w: fruit %v outside %dx%d board", ErrInvalidBoard, f, b.Rows, b.Cols)
		}
		if f == b.Start {
			return fmt.Errorf("%w: fruit %v on start cell", ErrInvalidBoard, f)
		}
		if seen[f] {
			return fmt.Errorf("%w: duplicate fruit %v", ErrInvalidBoard, f)
		}
		seen[f] = true
	}
	return nil
}

func (b BoardConfig) contains(p types.Point) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}
