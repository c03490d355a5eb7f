package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"go.creack.net/pong/pong"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard() (*Keyboard, *clock) {
	c := &clock{t: time.Unix(1700000000, 0)}
	kb := NewKeyboard(pong.DefaultBindings(), 100*time.Millisecond)
	kb.now = c.now
	return kb, c
}

func TestKeyboardHold(t *testing.T) {
	kb, c := newTestKeyboard()
	if kb.IsHeld(pong.KeyW) {
		t.Fatal("w held before any press")
	}
	kb.Press(pong.KeyW)
	c.advance(99 * time.Millisecond)
	if !kb.IsHeld(pong.KeyW) {
		t.Fatal("w released inside the hold window")
	}
	c.advance(time.Millisecond)
	if kb.IsHeld(pong.KeyW) {
		t.Fatal("w still held after the hold window")
	}

	// Key repeat keeps it held.
	kb.Press(pong.KeyW)
	c.advance(80 * time.Millisecond)
	kb.Press(pong.KeyW)
	c.advance(80 * time.Millisecond)
	if !kb.IsHeld(pong.KeyW) {
		t.Fatal("repeated w not held")
	}
}

func TestKeyboardJustPressed(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.Press(pong.KeyEnter)
	if !kb.JustPressed(pong.KeyEnter) {
		t.Fatal("enter not just pressed")
	}
	if kb.JustPressed(pong.KeyT) {
		t.Fatal("t just pressed without an event")
	}
	kb.EndFrame()
	if kb.JustPressed(pong.KeyEnter) {
		t.Fatal("enter still just pressed after the frame ended")
	}
	if !kb.IsHeld(pong.KeyEnter) {
		t.Fatal("ending the frame released enter")
	}
}

func TestKeyboardOpposite(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.Press(pong.KeyW)
	kb.Press(pong.KeyUp)
	kb.Press(pong.KeyS)
	if kb.IsHeld(pong.KeyW) {
		t.Fatal("w held after pressing s")
	}
	if !kb.IsHeld(pong.KeyS) || !kb.IsHeld(pong.KeyUp) {
		t.Fatal("pressing s released an unrelated key")
	}
	kb.Press(pong.KeyDown)
	if kb.IsHeld(pong.KeyUp) {
		t.Fatal("up held after pressing down")
	}
}

func TestKeyboardIgnoresUnknown(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.Press(pong.KeyUnknown)
	if kb.JustPressed(pong.KeyUnknown) || kb.IsHeld(pong.KeyUnknown) {
		t.Fatal("unknown key recorded")
	}
}

func TestKeyFromEvent(t *testing.T) {
	for _, tc := range []struct {
		ev   *tcell.EventKey
		want pong.Key
	}{
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), pong.KeyEnter},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), pong.KeyEscape},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), pong.KeyBackspace},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), pong.KeyUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), pong.KeyDown},
		{tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), pong.Key1},
		{tcell.NewEventKey(tcell.KeyRune, 'T', tcell.ModNone), pong.KeyT},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), pong.KeyW},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), pong.KeyS},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), pong.KeyUnknown},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), pong.KeyUnknown},
	} {
		if got := KeyFromEvent(tc.ev); got != tc.want {
			t.Errorf("KeyFromEvent(%s) = %s, want %s", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestHoldWindowBridgesRepeatDelay(t *testing.T) {
	kb, c := newTestKeyboard()
	kb.hold = HoldWindow
	kb.Press(pong.KeyS)
	// Typical delay before the terminal starts repeating a held key.
	c.advance(500 * time.Millisecond)
	if !kb.IsHeld(pong.KeyS) {
		t.Fatalf("s released before the first repeat with a %s window", HoldWindow)
	}
}
