package pong

import (
	"errors"
	"testing"
)

func TestDifficultyNext(t *testing.T) {
	d := Difficulty(0)
	for _, want := range []Difficulty{1, 2, 3, 0} {
		d = d.Next()
		if d != want {
			t.Fatalf("next = %d, want %d", d, want)
		}
	}
}

func TestModeHuman(t *testing.T) {
	for _, tc := range []struct {
		mode   Mode
		p1, p2 bool
	}{
		{ModeAIvsAI, false, false},
		{ModePlayerVsAI, true, false},
		{ModePlayerVsPlayer, true, true},
	} {
		if got := tc.mode.Human(1); got != tc.p1 {
			t.Errorf("%s: player 1 human = %t, want %t", tc.mode, got, tc.p1)
		}
		if got := tc.mode.Human(2); got != tc.p2 {
			t.Errorf("%s: player 2 human = %t, want %t", tc.mode, got, tc.p2)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %s", err)
	}
	for name, mutate := range map[string]func(*Config){
		"zero width":         func(c *Config) { c.Width = 0 },
		"negative paddle":    func(c *Config) { c.PaddleWidth = -1 },
		"paddle too tall":    func(c *Config) { c.PaddleHeight = c.Height + 1 },
		"no paddle speed":    func(c *Config) { c.PaddleSpeed = 0 },
		"no ball":            func(c *Config) { c.BallSize = 0 },
		"no winning score":   func(c *Config) { c.WinningScore = 0 },
		"unknown mode":       func(c *Config) { c.Mode = 3 },
		"unknown difficulty": func(c *Config) { c.Difficulty = DifficultyLevels },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, errInvalidConfig) {
			t.Errorf("%s: error = %v, want %v", name, err, errInvalidConfig)
		}
	}
}

func TestParseKey(t *testing.T) {
	for _, k := range Keys {
		got, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("parse %q: %s", k, err)
		}
		if got != k {
			t.Fatalf("parse %q = %s, want %s", k, got, k)
		}
	}
	for name, want := range map[string]Key{"Return": KeyEnter, " ESC ": KeyEscape, "Up": KeyUp} {
		if got, err := ParseKey(name); err != nil || got != want {
			t.Fatalf("parse %q = %s, %v, want %s", name, got, err, want)
		}
	}
	if _, err := ParseKey("f13"); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestBindingsValidate(t *testing.T) {
	b := DefaultBindings()
	if err := b.Validate(); err != nil {
		t.Fatalf("default bindings: %s", err)
	}

	// Swapping two keys keeps them unique.
	b.P1Up, b.P1Down = b.P1Down, b.P1Up
	if err := b.Validate(); err != nil {
		t.Fatalf("swapped bindings: %s", err)
	}

	b = DefaultBindings()
	b.Difficulty = KeyEnter
	if err := b.Validate(); !errors.Is(err, errInvalidConfig) {
		t.Fatalf("error = %v, want %v", err, errInvalidConfig)
	}
}
