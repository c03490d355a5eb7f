// Package sound synthesizes the blips played for match cues.
package sound

import (
	"math"
	"time"

	"go.creack.net/pong/pong"
)

// SampleRate of the audio context created by the game.
const SampleRate = 48000

// Tone is a square wave blip.
type Tone struct {
	Freq float64
	Dur  time.Duration
}

var tones = map[pong.Cue]Tone{
	pong.CuePaddleHit: {Freq: 440, Dur: 60 * time.Millisecond},
	pong.CueWallHit:   {Freq: 220, Dur: 50 * time.Millisecond},
	pong.CueScore:     {Freq: 660, Dur: 250 * time.Millisecond},
}

// PCM renders the tone of the given cue, nil for an unknown cue.
func PCM(sampleRate int, c pong.Cue) []byte {
	t, ok := tones[c]
	if !ok {
		return nil
	}
	return Square(sampleRate, t.Freq, t.Dur)
}

// Silent drops every cue.
type Silent struct{}

func (Silent) Play(pong.Cue) {}

// Square renders a decaying square wave as 16 bit little endian stereo PCM.
func Square(sampleRate int, freq float64, dur time.Duration) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	buf := make([]byte, n*4)
	period := float64(sampleRate) / freq
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-6 * t / dur.Seconds())
		level := 5000.0
		if math.Mod(float64(i), period) >= period/2 {
			level = -level
		}
		v := int16(level * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
