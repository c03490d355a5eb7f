package pong

import "testing"

func TestPaddleClamp(t *testing.T) {
	p := NewPaddle(10, 30, 5, 20, 243)

	p.DY = -200
	p.Update(1)
	if p.Y != 0 {
		t.Fatalf("y after moving up = %g, want 0", p.Y)
	}

	p.DY = 200
	for i := 0; i < 120; i++ {
		p.Update(1.0 / 60)
		if p.Y < 0 || p.Y > 223 {
			t.Fatalf("step %d: y = %g out of [0, 223]", i, p.Y)
		}
	}
	if p.Y != 223 {
		t.Fatalf("y after moving down = %g, want 223", p.Y)
	}
}

func TestBallCollides(t *testing.T) {
	p := NewPaddle(10, 30, 5, 20, 243)
	for _, tc := range []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 12, 40, true},
		{"corner overlap", 7, 27, true},
		{"touching right edge", 15, 40, false},
		{"touching left edge", 6, 40, false},
		{"touching top", 12, 26, false},
		{"touching bottom", 12, 50, false},
		{"far away", 200, 120, false},
	} {
		b := &Ball{X: tc.x, Y: tc.y, Size: 4}
		if got := b.Collides(p); got != tc.want {
			t.Errorf("%s: collides = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestBallUpdateAndReset(t *testing.T) {
	b := NewBall(432, 243, 4)
	if b.X != 214 || b.Y != 119.5 {
		t.Fatalf("ball at (%g, %g), want (214, 119.5)", b.X, b.Y)
	}

	b.DX, b.DY = 120, -60
	b.Update(0.5)
	if b.X != 274 || b.Y != 89.5 {
		t.Fatalf("ball at (%g, %g), want (274, 89.5)", b.X, b.Y)
	}

	// Not clamped by itself.
	b.Update(10)
	if b.Y >= 0 {
		t.Fatalf("ball y = %g, want it past the top", b.Y)
	}

	b.Reset()
	if b.X != 214 || b.Y != 119.5 || b.DX != 0 || b.DY != 0 {
		t.Fatalf("reset ball = %+v", b)
	}
}
