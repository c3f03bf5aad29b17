package game

import "math"

// SpeedIncrement is applied to both velocity components on every paddle hit.
// There is no cap: long rallies keep getting faster.
const SpeedIncrement = 1.05

// approachedPaddle returns the paddle the ball is travelling towards
func (m *Model) approachedPaddle() *Paddle {
	if m.Ball.VX < 0 {
		return m.LeftPaddle
	}
	return m.RightPaddle
}

// checkPaddleCollision bounces the ball when this tick's horizontal travel
// would carry it across the approached paddle's column within its length.
func (m *Model) checkPaddleCollision() bool {
	b := m.Ball
	p := m.approachedPaddle()

	if math.Abs(b.X-p.X) > math.Abs(b.VX) || !p.ContainsY(b.Y) {
		return false
	}

	b.BounceOffPaddle()
	return true
}

// checkScore awards a point when the ball has left the field horizontally
// and serves a new ball. Observers see the point through the score fields.
func (m *Model) checkScore() {
	switch {
	case m.Ball.X < 0:
		m.RightScore++
		m.resetBall()
	case m.Ball.X > m.Field.Width:
		m.LeftScore++
		m.resetBall()
		// Only this branch flips the serve; a right-side point serves
		// towards the right with the freshly drawn positive VX.
		m.Ball.VX = -m.Ball.VX
	}
}

func (m *Model) resetBall() {
	m.Ball.Reset(m.Field, m.rnd)
}
