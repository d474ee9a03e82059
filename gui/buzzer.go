package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aquinn/chirp8"
)

const (
	sampleRate = 44100
	toneHz     = 440
)

// Buzzer plays the CHIP-8 monotone through a raylib audio stream. The
// stream stays loaded for the window's lifetime; the tone flag only pauses
// and resumes it.
type Buzzer struct {
	stream  rl.AudioStream
	samples []float32
	on      bool
}

// NewBuzzer initializes the audio device and prepares a square wave chunk
// that gets refilled into the stream while the tone is on. Call after
// rl.InitWindow and Close before rl.CloseWindow.
func NewBuzzer() *Buzzer {
	rl.InitAudioDevice()

	b := &Buzzer{
		stream: rl.LoadAudioStream(sampleRate, 32, 1),
		// four frames worth of samples per refill
		samples: make([]float32, sampleRate/chirp8.FramesPerSecond*4),
	}

	half := sampleRate / toneHz / 2
	for i := range b.samples {
		if (i/half)%2 == 0 {
			b.samples[i] = 0.25
		} else {
			b.samples[i] = -0.25
		}
	}

	return b
}

// SetTone implements chirp8.Buzzer.
func (b *Buzzer) SetTone(on bool) error {
	if on && !b.on {
		rl.PlayAudioStream(b.stream)
	}
	if !on && b.on {
		rl.StopAudioStream(b.stream)
	}
	b.on = on

	if on && rl.IsAudioStreamProcessed(b.stream) {
		rl.UpdateAudioStream(b.stream, b.samples)
	}

	return nil
}

func (b *Buzzer) Close() {
	rl.UnloadAudioStream(b.stream)
	rl.CloseAudioDevice()
}
