package gfx

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"go.creack.net/pong/pong"
	"go.creack.net/pong/sound"
)

// cuePlayer is the part of *audio.Player the mixer drives.
type cuePlayer interface {
	Rewind() error
	Play()
}

// Mixer holds one pre-rendered player per cue.
type Mixer struct {
	players map[pong.Cue]cuePlayer
	broken  bool
}

func NewMixer(ctx *audio.Context, volume float64) *Mixer {
	m := &Mixer{players: make(map[pong.Cue]cuePlayer, len(pong.Cues))}
	for _, c := range pong.Cues {
		p := ctx.NewPlayerFromBytes(sound.PCM(ctx.SampleRate(), c))
		p.SetVolume(volume)
		m.players[c] = p
	}
	return m
}

// Play restarts the cue from the beginning and returns right away.
// The first rewind failure is logged, later ones are dropped.
func (m *Mixer) Play(c pong.Cue) {
	p, ok := m.players[c]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		if !m.broken {
			m.broken = true
			log.Printf("Failed to rewind %q cue: %s.", c, err)
		}
		return
	}
	p.Play()
}
