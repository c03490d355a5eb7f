package pong

// Ball is the square puck. It does not clamp itself, walls are handled by the match.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Size   float64

	// Home is the top-left position Reset puts the ball back to.
	HomeX, HomeY float64
}

// NewBall creates a ball resting at the center of a width x height playfield.
func NewBall(width, height, size float64) *Ball {
	b := &Ball{
		Size:  size,
		HomeX: width/2 - size/2,
		HomeY: height/2 - size/2,
	}
	b.Reset()
	return b
}

func (b *Ball) Update(dt float64) {
	b.X += b.DX * dt
	b.Y += b.DY * dt
}

// Collides reports whether the ball box overlaps the paddle box.
func (b *Ball) Collides(p *Paddle) bool {
	return b.Bounds().Overlaps(p.Bounds())
}

// Reset puts the ball back at the center with no velocity.
func (b *Ball) Reset() {
	b.X, b.Y = b.HomeX, b.HomeY
	b.DX, b.DY = 0, 0
}

func (b *Ball) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}
