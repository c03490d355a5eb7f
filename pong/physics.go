package pong

// tick runs the per-frame pipeline. The order matters: collisions are
// resolved on the positions of the previous frame, before anything moves.
func (m *Match) tick(dt float64, kb Keyboard) {
	m.armServe()
	if m.state == StatePlay {
		m.bouncePaddles()
		m.bounceWalls()
		m.checkScore()
	}
	m.steer(kb)
	m.integrate(dt)
}

// armServe draws the serve velocity on the first frame spent in Serve.
func (m *Match) armServe() {
	if m.state != StateServe || m.launched {
		return
	}
	m.launched = true
	m.ball.DY = m.uniform(-ServeMaxDY, ServeMaxDY)
	m.ball.DX = m.uniform(ServeMinDX, ServeMaxDX)
	if m.serving == 2 {
		m.ball.DX = -m.ball.DX
	}
}

func (m *Match) bouncePaddles() {
	if m.ball.Collides(m.p1) {
		m.ball.DX = -m.ball.DX * BounceSpeedup
		m.ball.X = m.p1.X + LeftPaddleClearance
		m.ball.DY = m.deflect(m.ball.DY)
		m.emit(Event{Type: EventPaddleHit, Player: 1})
	}
	if m.ball.Collides(m.p2) {
		m.ball.DX = -m.ball.DX * BounceSpeedup
		m.ball.X = m.p2.X - RightPaddleClearance
		m.ball.DY = m.deflect(m.ball.DY)
		m.emit(Event{Type: EventPaddleHit, Player: 2})
	}
}

// deflect redraws the vertical speed, keeping the direction of travel.
func (m *Match) deflect(dy float64) float64 {
	v := m.uniform(BounceMinDY, BounceMaxDY)
	if dy < 0 {
		return -v
	}
	return v
}

func (m *Match) bounceWalls() {
	if m.ball.Y <= 0 {
		m.ball.Y = 0
		m.ball.DY = -m.ball.DY
		m.emit(Event{Type: EventWallHit})
	}
	if floor := m.cfg.Height - m.ball.Size; m.ball.Y >= floor {
		m.ball.Y = floor
		m.ball.DY = -m.ball.DY
		m.emit(Event{Type: EventWallHit})
	}
}

func (m *Match) checkScore() {
	switch {
	case m.ball.X < 0:
		m.point(2)
	case m.ball.X > m.cfg.Width:
		m.point(1)
	}
}

// point credits the scorer and moves to Serve, or Done on a winning point.
func (m *Match) point(scorer int) {
	m.serving = opponent(scorer)
	m.scores[scorer-1]++
	m.emit(Event{Type: EventScore, Player: scorer})
	m.ball.Reset()

	if m.scores[scorer-1] >= m.cfg.WinningScore {
		m.winner = scorer
		m.setState(StateDone)
		return
	}
	m.enterServe()
}

// steer sets both paddle velocities from the keyboard or the AI, per mode.
func (m *Match) steer(kb Keyboard) {
	for i, p := range []*Paddle{m.p1, m.p2} {
		player := i + 1
		if m.mode.Human(player) {
			p.DY = m.bindings.direction(kb, player) * m.cfg.PaddleSpeed
			continue
		}
		p.DY = Track(p, m.ball, m.difficulty, m.cfg)
	}
}

func (m *Match) integrate(dt float64) {
	if m.state == StatePlay {
		m.ball.Update(dt)
	}
	m.p1.Update(dt)
	m.p2.Update(dt)
}

// uniform returns a value in [lo, hi).
func (m *Match) uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}
