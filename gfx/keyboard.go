package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go.creack.net/pong/pong"
)

// ebitenKeys lists the physical keys behind each game key.
var ebitenKeys = map[pong.Key][]ebiten.Key{
	pong.KeyEnter:     {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	pong.KeyEscape:    {ebiten.KeyEscape},
	pong.KeyBackspace: {ebiten.KeyBackspace},
	pong.Key0:         {ebiten.KeyDigit0, ebiten.KeyNumpad0},
	pong.Key1:         {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	pong.Key2:         {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	pong.KeyT:         {ebiten.KeyT},
	pong.KeyW:         {ebiten.KeyW},
	pong.KeyS:         {ebiten.KeyS},
	pong.KeyUp:        {ebiten.KeyArrowUp},
	pong.KeyDown:      {ebiten.KeyArrowDown},
}

// keyboard reads the ebiten key state. Ebiten refreshes it before every Update.
type keyboard struct{}

func (keyboard) IsHeld(k pong.Key) bool {
	for _, ek := range ebitenKeys[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (keyboard) JustPressed(k pong.Key) bool {
	for _, ek := range ebitenKeys[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}
