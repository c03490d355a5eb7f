package pong

// Rect is an axis-aligned box in playfield units.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o intersect. Boxes sharing only an edge do not.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterY returns the vertical center of the box.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Paddle is a vertically moving bat.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	DY            float64

	// Floor is the playfield height the paddle is clamped to.
	Floor float64
}

func NewPaddle(x, y, width, height, floor float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Floor:  floor,
	}
}

// Update moves the paddle by DY*dt, keeping it inside [0, Floor-Height].
func (p *Paddle) Update(dt float64) {
	p.Y += p.DY * dt
	if p.Y < 0 {
		p.Y = 0
	} else if maxY := p.Floor - p.Height; p.Y > maxY {
		p.Y = maxY
	}
}

func (p *Paddle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
