package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"go.creack.net/pong/cli"
	"go.creack.net/pong/pong"
	"go.creack.net/pong/term"
)

func main() {
	opts, err := cli.ParseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}

	m, err := pong.NewMatch(opts.Game, opts.Bindings)
	if err != nil {
		log.Fatalf("Failed to create match: %s.", err)
	}

	v, err := term.NewViewer(context.Background(), m, opts.Tick, opts.Mute)
	if err != nil {
		log.Fatalf("Failed to create viewer: %s.", err)
	}
	if err := v.Run(); err != nil {
		log.Fatalf("Failed to run viewer: %s.", err)
	}
	p1, p2 := m.Score()
	log.Printf("Match %s ended %d - %d.", m.ID(), p1, p2)
}
