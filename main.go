package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"led-snake/config"
	"led-snake/input"
	"led-snake/ui"
	"led-snake/ui/tui"

	"github.com/gdamore/tcell/v2"
)

type options struct {
	configPath string
	speed      int
	backend    string
	autoplay   bool
	mute       bool
	traceDir   string
	debug      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file, overlaid on the built-in defaults")
	flag.IntVar(&opts.speed, "speed", 0, "Milliseconds between moves (0 keeps loop.tick)")
	flag.StringVar(&opts.backend, "display", "", "Display backend: window or terminal (empty keeps display.backend)")
	flag.BoolVar(&opts.autoplay, "autoplay", false, "Let the autopilot steer")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.StringVar(&opts.traceDir, "trace", "", "Write a per-step CSV trace to this directory")
	flag.BoolVar(&opts.debug, "debug", false, "Write a debug log to logs/ and check invariants after every step")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "led-snake: %v\n", err)
		os.Exit(1)
	}
}

// run sets up and drives one game. main exits only after it returns.
func run(opts options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Printf("config: %v", err)
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		log.Printf("session: %v", err)
		return err
	}
	s.verify = opts.debug
	defer s.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.start(ctx)

	log.Printf("game %s: %dx%d board, backend %s, tick %s", s.game.UUID, cfg.Board.Rows, cfg.Board.Cols, cfg.Display.Backend, cfg.Loop.Tick)

	if cfg.Display.Backend == "terminal" {
		return runTerminal(s, cfg)
	}
	runWindow(s, cfg)
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.speed > 0 {
		cfg.Loop.Tick = time.Duration(opts.speed) * time.Millisecond
	}
	if opts.backend != "" {
		cfg.Display.Backend = opts.backend
	}
	if opts.autoplay {
		cfg.Autopilot.Enabled = true
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	if opts.traceDir != "" {
		cfg.Trace.Dir = opts.traceDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runWindow drives the game from the raylib frame loop. Keyboard and
// gamepad are sampled every frame; the game steps once per tick.
func runWindow(s *session, cfg *config.Config) {
	r := ui.NewRenderer(s.proj, cfg.Display.LEDSize)
	r.Open("LED Snake")
	defer r.Close()

	joystick := input.NewJoystick(input.AnalogFunc(r.GamepadXY), cfg.Input.ErrorMargin)
	lastUpdate := time.Now()
	updateInterval := cfg.Loop.Tick

	for !r.ShouldClose() {
		switch r.ReadKeys().Apply(s.register) {
		case input.Quit:
			return
		case input.Restart:
			s.restart()
		}
		if dir, ok := joystick.Sample(); ok {
			s.register.Store(dir)
		}

		if time.Since(lastUpdate) >= updateInterval {
			s.tick()
			lastUpdate = time.Now()
		}

		if err := s.render(r); err != nil {
			log.Printf("render: %v", err)
		}
		r.Draw(s.status())
	}
}

// runTerminal drives the game from a ticker with tcell handling keys.
func runTerminal(s *session, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	term := tui.NewTerminal(screen, s.proj)
	defer term.Fini()

	actions := term.PumpEvents(s.register)
	ticker := time.NewTicker(cfg.Loop.Tick)
	defer ticker.Stop()

	draw := func() {
		term.SetStatus(s.status())
		if err := s.render(term); err != nil {
			log.Printf("render: %v", err)
		}
	}
	draw()

	for {
		select {
		case action, ok := <-actions:
			if !ok || action == input.Quit {
				return nil
			}
			if action == input.Restart {
				s.restart()
				draw()
			}
		case <-ticker.C:
			s.tick()
			draw()
		}
	}
}
