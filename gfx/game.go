// Package gfx runs a match in an ebiten window.
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go.creack.net/pong/pong"
)

var (
	fontFace text.Face = text.NewGoXFace(bitmapfont.Face)
	fpsFace  text.Face = text.NewGoXFace(basicfont.Face7x13)
)

var (
	backgroundColor = color.RGBA{R: 40, G: 45, B: 52, A: 255}
	foregroundColor = color.White
	fpsColor        = color.RGBA{G: 255, A: 255}
)

// scoreScale enlarges the bitmap font for the score digits.
const scoreScale = 3

// Game drives a pong.Match from ebiten's fixed rate Update.
type Game struct {
	match *pong.Match
	cues  pong.CuePlayer
	keys  pong.Keyboard
	hud   *hud
}

func NewGame(m *pong.Match, cues pong.CuePlayer) *Game {
	return &Game{
		match: m,
		cues:  cues,
		keys:  keyboard{},
		hud:   newHUD(fontFace, m.Bindings()),
	}
}

func (g *Game) Update() error {
	events, err := g.match.Update(1/float64(ebiten.TPS()), g.keys)
	pong.PlayCues(g.cues, events)
	g.logEvents(events)
	if errors.Is(err, pong.Termination) {
		return ebiten.Termination
	}
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if g.match.State() == pong.StateStart {
		g.hud.Update(g.match)
	}
	return nil
}

func (g *Game) logEvents(events []pong.Event) {
	for _, e := range events {
		switch e.Type {
		case pong.EventPaddleHit, pong.EventWallHit:
			continue
		case pong.EventScore:
			p1, p2 := g.match.Score()
			log.Printf("[%s] %s (%d - %d).", g.match.ID(), e, p1, p2)
		default:
			log.Printf("[%s] %s.", g.match.ID(), e)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	cfg := g.match.Config()

	title, prompt := g.match.Banner()
	drawCentered(screen, title, cfg.Width/2, 4, 1)
	drawCentered(screen, prompt, cfg.Width/2, 18, 1)

	p1, p2 := g.match.Score()
	drawCentered(screen, strconv.Itoa(p1), cfg.Width/2-40, cfg.Height/3, scoreScale)
	drawCentered(screen, strconv.Itoa(p2), cfg.Width/2+40, cfg.Height/3, scoreScale)

	left, right := g.match.Paddles()
	drawRect(screen, left.Bounds())
	drawRect(screen, right.Bounds())
	drawRect(screen, g.match.Ball().Bounds())

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(fpsColor)
	text.Draw(screen, fmt.Sprintf("FPS: %d", int(ebiten.ActualFPS())), fpsFace, op)

	if g.match.State() == pong.StateStart {
		g.hud.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.match.Config()
	return int(cfg.Width), int(cfg.Height)
}

func drawRect(screen *ebiten.Image, r pong.Rect) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), foregroundColor, false)
}

func drawCentered(screen *ebiten.Image, s string, x, y, scale float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(foregroundColor)
	text.Draw(screen, s, fontFace, op)
}
