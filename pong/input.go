package pong

import (
	"fmt"
	"strings"
)

// Key is a physical key the game understands. Anything else is ignored.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	Key0
	Key1
	Key2
	KeyT
	KeyW
	KeyS
	KeyUp
	KeyDown
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	Key0:         "0",
	Key1:         "1",
	Key2:         "2",
	KeyT:         "t",
	KeyW:         "w",
	KeyS:         "s",
	KeyUp:        "up",
	KeyDown:      "down",
}

// Keys lists every known key.
var Keys = []Key{KeyEnter, KeyEscape, KeyBackspace, Key0, Key1, Key2, KeyT, KeyW, KeyS, KeyUp, KeyDown}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKey returns the key with the given name, as printed by Key.String.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "return":
		return KeyEnter, nil
	case "esc":
		return KeyEscape, nil
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Keyboard is the input source polled once per frame.
type Keyboard interface {
	// IsHeld reports whether k is currently down.
	IsHeld(k Key) bool
	// JustPressed reports whether k went down since the previous frame.
	JustPressed(k Key) bool
}

// Bindings maps game actions to keys.
type Bindings struct {
	Confirm, Cancel, Quit Key
	Modes                 [3]Key
	Difficulty            Key

	P1Up, P1Down Key
	P2Up, P2Down Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Confirm:    KeyEnter,
		Cancel:     KeyBackspace,
		Quit:       KeyEscape,
		Modes:      [3]Key{Key0, Key1, Key2},
		Difficulty: KeyT,
		P1Up:       KeyW,
		P1Down:     KeyS,
		P2Up:       KeyUp,
		P2Down:     KeyDown,
	}
}

// Validate rejects a key bound to more than one action.
func (b Bindings) Validate() error {
	actions := []struct {
		name string
		key  Key
	}{
		{"confirm", b.Confirm},
		{"cancel", b.Cancel},
		{"quit", b.Quit},
		{"mode0", b.Modes[0]},
		{"mode1", b.Modes[1]},
		{"mode2", b.Modes[2]},
		{"difficulty", b.Difficulty},
		{"p1_up", b.P1Up},
		{"p1_down", b.P1Down},
		{"p2_up", b.P2Up},
		{"p2_down", b.P2Down},
	}
	seen := make(map[Key]string, len(actions))
	for _, a := range actions {
		if prev, ok := seen[a.key]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and %s", errInvalidConfig, a.key, prev, a.name)
		}
		seen[a.key] = a.name
	}
	return nil
}

// direction returns the human velocity direction for the given side: -1 up, 1 down.
func (b Bindings) direction(kb Keyboard, player int) float64 {
	up, down := b.P1Up, b.P1Down
	if player == 2 {
		up, down = b.P2Up, b.P2Down
	}
	switch {
	case kb.IsHeld(up):
		return -1
	case kb.IsHeld(down):
		return 1
	default:
		return 0
	}
}
