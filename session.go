package main

import (
	"context"
	"fmt"
	"log"

	"led-snake/ai"
	"led-snake/audio"
	"led-snake/config"
	"led-snake/game"
	"led-snake/game/types"
	"led-snake/input"
	"led-snake/trace"
	"led-snake/ui/led"
)

// session wires the engine to its collaborators for one run of the
// program. Everything here runs on the control loop's goroutine except
// the pilot and the input sampler.
type session struct {
	game     *game.Game
	proj     *led.Projector
	register *input.Register
	pixels   []led.Pixel

	pilot    *ai.Pilot
	sampler  *input.Sampler
	sound    *audio.SoundManager
	recorder *trace.Recorder

	autoRestart bool
	verify      bool
}

func newSession(cfg *config.Config) (*session, error) {
	g, err := game.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	palette := led.Palette{
		Snake: led.Color(cfg.Display.Palette.Snake),
		Fruit: led.Color(cfg.Display.Palette.Fruit),
		Empty: led.Color(cfg.Display.Palette.Empty),
	}
	proj := led.NewProjector(cfg.Board.Rows, cfg.Board.Cols, cfg.Display.EvenRowsReversed, palette)

	s := &session{
		game:     g,
		proj:     proj,
		register: input.NewRegister(cfg.Board.Heading),
		pixels:   make([]led.Pixel, proj.Len()),
	}

	if cfg.Autopilot.Enabled {
		s.pilot = ai.NewPilot(ai.NewQLearning(cfg.Autopilot))
		s.sampler = input.NewSampler(s.pilot, s.register, cfg.Loop.InputPoll)
		s.autoRestart = true
	}

	if cfg.Audio.Enabled {
		s.sound = audio.NewSoundManager()
		if err := s.sound.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	s.recorder, err = trace.Create(cfg.Trace.Dir, g.UUID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// start launches the background input producers.
func (s *session) start(ctx context.Context) {
	if s.pilot == nil {
		return
	}
	s.pilot.Start(ctx)
	s.sampler.Start(ctx)
	s.pilot.Observe(s.game.Snapshot())
}

func (s *session) close() {
	if s.sampler != nil {
		s.sampler.Stop()
	}
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if err := s.recorder.Close(); err != nil {
		log.Printf("closing trace: %v", err)
	}
}

// tick runs one iteration of the control loop: sample the register once
// and step. A halted game is left alone, or restarted under the autopilot.
func (s *session) tick() types.Outcome {
	if s.game.Status() == types.Halted {
		if s.autoRestart {
			s.restart()
		}
		return types.Blocked
	}

	outcome := s.game.Step(s.register.Poll())
	if s.verify {
		if err := s.game.Verify(); err != nil {
			panic(fmt.Sprintf("after step %d: %v", s.game.Steps(), err))
		}
	}

	snap := s.game.Snapshot()
	if err := s.recorder.Record(snap); err != nil {
		log.Printf("trace: %v", err)
	}
	if s.pilot != nil {
		s.pilot.Observe(snap)
	}

	switch outcome {
	case types.Grew:
		log.Printf("grew to %d at %v", s.game.Size(), s.game.Head())
		if s.sound != nil {
			s.sound.PlayGrow()
		}
	case types.Blocked:
		log.Printf("blocked by %v moving %v from %v after %d steps", s.game.LastCollision(), s.game.Heading(), s.game.Head(), s.game.Steps())
		if s.sound != nil {
			s.sound.PlayHalt()
		}
	}
	return outcome
}

func (s *session) restart() {
	if err := s.game.Init(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	s.register.Store(s.game.Heading())
	log.Printf("new game %s", s.game.UUID)
	if s.pilot != nil {
		s.pilot.Observe(s.game.Snapshot())
	}
}

// render projects the grid and pushes it to d.
func (s *session) render(d led.Display) error {
	return led.Present(d, s.proj.ProjectInto(s.pixels, s.game.Grid()))
}

func (s *session) status() string {
	if s.game.Status() == types.Halted {
		return fmt.Sprintf("halted (%v) - size %d - r to restart", s.game.LastCollision(), s.game.Size())
	}
	return fmt.Sprintf("size %d  heading %v  steps %d", s.game.Size(), s.game.Heading(), s.game.Steps())
}
