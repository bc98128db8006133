package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	growFreq     = 880
	growDuration = 60 * time.Millisecond
	haltFreq     = 110
	haltDuration = 400 * time.Millisecond
	volume       = 0.3
)

// SoundManager plays short cues for game events. Every method is safe to
// call before Initialize succeeds; it simply stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending sounds and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayGrow plays a short high chime.
func (sm *SoundManager) PlayGrow() {
	sm.play(growFreq, growDuration)
}

// PlayHalt plays a low buzz.
func (sm *SoundManager) PlayHalt() {
	sm.play(haltFreq, haltDuration)
}

func (sm *SoundManager) play(freq int, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	tone, err := Tone(freq, d)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// Tone returns a sine wave of freq Hz lasting d, attenuated to volume.
func Tone(freq int, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: math.Log2(volume)}
	return beep.Take(sampleRate.N(d), quiet), nil
}
