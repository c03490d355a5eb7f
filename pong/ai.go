package pong

// Track returns the vertical velocity an AI paddle should take to follow the ball.
//
// The paddle idles while the ball is at least AIEngageRatio of the playfield
// width away horizontally. Otherwise it heads for the ball's vertical center at
// the paddle speed scaled down by the difficulty tier. There is no prediction.
func Track(p *Paddle, b *Ball, d Difficulty, cfg Config) float64 {
	dist := p.X - b.X
	if dist < 0 {
		dist = -dist
	}
	if dist >= cfg.Width*AIEngageRatio {
		return 0
	}

	speed := cfg.PaddleSpeed / d.Divisor()
	diff := p.Bounds().CenterY() - b.Bounds().CenterY()
	switch {
	case diff > 0:
		return -speed
	case diff < 0:
		return speed
	default:
		return 0
	}
}
