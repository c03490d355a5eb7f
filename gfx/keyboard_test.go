package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"go.creack.net/pong/pong"
)

func TestEbitenKeys(t *testing.T) {
	seen := map[ebiten.Key]pong.Key{}
	for _, k := range pong.Keys {
		eks, ok := ebitenKeys[k]
		if !ok || len(eks) == 0 {
			t.Fatalf("no ebiten key for %s", k)
		}
		for _, ek := range eks {
			if prev, ok := seen[ek]; ok {
				t.Fatalf("%s is bound to both %s and %s", ek, prev, k)
			}
			seen[ek] = k
		}
	}
	if _, ok := ebitenKeys[pong.KeyUnknown]; ok {
		t.Fatal("unknown key must not map to a physical key")
	}
}
