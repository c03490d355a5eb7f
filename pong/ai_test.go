package pong

import (
	"math"
	"testing"
)

func TestTrackDeadZone(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(10, 30, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Height)
	b := NewBall(cfg.Width, cfg.Height, cfg.BallSize)
	b.Y = 200
	gate := cfg.Width * AIEngageRatio

	b.X = p.X + gate
	if v := Track(p, b, 3, cfg); v != 0 {
		t.Fatalf("velocity at the gate = %g, want 0", v)
	}
	b.X = p.X + gate + 50
	if v := Track(p, b, 3, cfg); v != 0 {
		t.Fatalf("velocity past the gate = %g, want 0", v)
	}
	b.X = p.X + gate - 1
	if v := Track(p, b, 3, cfg); v <= 0 {
		t.Fatalf("velocity inside the gate = %g, want > 0", v)
	}

	// The gate is symmetric for the right paddle.
	right := NewPaddle(cfg.Width-10, 30, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Height)
	b.X = right.X - gate
	if v := Track(right, b, 3, cfg); v != 0 {
		t.Fatalf("right paddle velocity at the gate = %g, want 0", v)
	}
}

func TestTrackDirectionAndSpeed(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(10, 100, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Height)
	b := NewBall(cfg.Width, cfg.Height, cfg.BallSize)
	b.X = 50

	for _, tc := range []struct {
		d       Difficulty
		divisor float64
	}{
		{0, 1.8},
		{1, 1.5},
		{2, 1.2},
		{3, 1},
	} {
		speed := cfg.PaddleSpeed / tc.divisor

		b.Y = 10 // Above the paddle.
		if v := Track(p, b, tc.d, cfg); math.Abs(v+speed) > 1e-9 {
			t.Fatalf("tier %d, ball above: velocity = %g, want %g", tc.d, v, -speed)
		}
		b.Y = 200 // Below the paddle.
		if v := Track(p, b, tc.d, cfg); math.Abs(v-speed) > 1e-9 {
			t.Fatalf("tier %d, ball below: velocity = %g, want %g", tc.d, v, speed)
		}
	}

	// Centers aligned: paddle center 110, ball center 110.
	b.Y = 108
	if v := Track(p, b, 1, cfg); v != 0 {
		t.Fatalf("aligned velocity = %g, want 0", v)
	}
}
