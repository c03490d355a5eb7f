package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go.creack.net/pong/cli"
	"go.creack.net/pong/gfx"
	"go.creack.net/pong/pong"
	"go.creack.net/pong/sound"
)

func main() {
	opts, err := cli.ParseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	m, err := pong.NewMatch(opts.Game, opts.Bindings)
	if err != nil {
		log.Fatalf("Failed to create match: %s.", err)
	}

	var cues pong.CuePlayer = sound.Silent{}
	if !opts.Mute {
		cues = gfx.NewMixer(audio.NewContext(sound.SampleRate), opts.Volume)
	}

	ebiten.SetWindowSize(int(opts.Game.Width)*opts.Scale, int(opts.Game.Height)*opts.Scale)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)

	log.Printf("Starting match %s (%s, %s).", m.ID(), m.Mode(), m.Difficulty())
	if err := ebiten.RunGameWithOptions(gfx.NewGame(m, cues), &ebiten.RunGameOptions{}); err != nil {
		log.Fatalf("Failed to run game: %s.", err)
	}
}
