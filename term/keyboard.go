package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go.creack.net/pong/pong"
)

// HoldWindow is how long a key counts as held after its last press event.
// Terminals only report presses, so holding relies on key repeat.
const HoldWindow = 550 * time.Millisecond

// Keyboard turns terminal key events into the held/just pressed view a match reads.
type Keyboard struct {
	hold time.Duration
	now  func() time.Time

	last     map[pong.Key]time.Time
	pressed  map[pong.Key]bool
	opposite map[pong.Key]pong.Key
}

func NewKeyboard(b pong.Bindings, hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:    hold,
		now:     time.Now,
		last:    map[pong.Key]time.Time{},
		pressed: map[pong.Key]bool{},
		opposite: map[pong.Key]pong.Key{
			b.P1Up:   b.P1Down,
			b.P1Down: b.P1Up,
			b.P2Up:   b.P2Down,
			b.P2Down: b.P2Up,
		},
	}
}

// Press records a key event. Pressing a direction releases the opposite one.
func (k *Keyboard) Press(key pong.Key) {
	if key == pong.KeyUnknown {
		return
	}
	k.last[key] = k.now()
	k.pressed[key] = true
	if o, ok := k.opposite[key]; ok {
		delete(k.last, o)
	}
}

func (k *Keyboard) IsHeld(key pong.Key) bool {
	t, ok := k.last[key]
	return ok && k.now().Sub(t) < k.hold
}

func (k *Keyboard) JustPressed(key pong.Key) bool { return k.pressed[key] }

// EndFrame forgets the presses consumed by the last update.
func (k *Keyboard) EndFrame() {
	clear(k.pressed)
}

// KeyFromEvent maps a tcell key event to a game key.
func KeyFromEvent(ev *tcell.EventKey) pong.Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return pong.KeyEnter
	case tcell.KeyEscape:
		return pong.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return pong.KeyBackspace
	case tcell.KeyUp:
		return pong.KeyUp
	case tcell.KeyDown:
		return pong.KeyDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case '0':
			return pong.Key0
		case '1':
			return pong.Key1
		case '2':
			return pong.Key2
		case 't', 'T':
			return pong.KeyT
		case 'w', 'W':
			return pong.KeyW
		case 's', 'S':
			return pong.KeyS
		}
	}
	return pong.KeyUnknown
}
