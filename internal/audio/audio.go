package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pong2d/internal/game"
	"github.com/diegok/pong2d/internal/physics"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies an effect
type Sound int

const (
	SoundNone Sound = iota
	SoundPaddle
	SoundWall
)

// bufferLatency is how far ahead the speaker buffers samples
const bufferLatency = time.Second / 30

var initialized bool

// Init opens the speaker. Calling it again after success is a no-op.
func Init() error {
	if initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLatency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	initialized = true
	return nil
}

// Close releases the speaker, if open
func Close() {
	if !initialized {
		return
	}
	speaker.Close()
	initialized = false
}

// Waveform shapes an effect
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Effect describes the blip played for a sound
type Effect struct {
	Shape    Waveform
	Freq     float64 // Hz
	Duration time.Duration
	Volume   float64 // Peak amplitude, 0..1
}

// Effects maps each sound to its blip. Paddle hits are a short high
// square beep, wall bounces a softer low sine.
var Effects = map[Sound]Effect{
	SoundPaddle: {Shape: Square, Freq: 880, Duration: 50 * time.Millisecond, Volume: 0.2},
	SoundWall:   {Shape: Sine, Freq: 440, Duration: 30 * time.Millisecond, Volume: 0.3},
}

// sample returns the waveform value at phase, measured in cycles
func (w Waveform) sample(phase float64) float64 {
	if w == Square {
		if math.Mod(phase, 1) > 0.5 {
			return -1
		}
		return 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// Streamer renders the effect as a mono signal on both channels
func (e Effect) Streamer() beep.Streamer {
	remaining := sampleRate.N(e.Duration)
	step := e.Freq / float64(sampleRate)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			v := e.Shape.sample(phase) * e.Volume
			samples[i] = [2]float64{v, v}
			phase += step
			remaining--
		}
		return len(samples), true
	})
}

// Play queues the effect for s. No-op before Init or for SoundNone.
func Play(s Sound) {
	e, ok := Effects[s]
	if !initialized || !ok {
		return
	}
	speaker.Play(e.Streamer())
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	Play(SoundPaddle)
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	Play(SoundWall)
}

// SoundFor picks the sound for a contact. The second value is false when
// the contact makes no sound.
func SoundFor(c game.Contact) (Sound, bool) {
	switch {
	case !c.Involves(game.BallID):
		return SoundNone, false
	case c.Involves(physics.TopWall), c.Involves(physics.BottomWall):
		return SoundWall, true
	default:
		return SoundPaddle, true
	}
}

// PlayContacts plays at most one sound per kind for a tick's contacts
func PlayContacts(contacts []game.Contact) {
	played := make(map[Sound]bool)
	for _, c := range contacts {
		s, ok := SoundFor(c)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		Play(s)
	}
}
