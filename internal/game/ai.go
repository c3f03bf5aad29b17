package game

// AIDeadbandDivisor sets the deadband to a third of the paddle length
const AIDeadbandDivisor = 3.0

// AIIntent steers paddle toward the ball's height, holding still while the
// ball is within the deadband of the paddle center. Callers should only use
// it for the side the ball is moving toward.
func AIIntent(ball Ball, paddle Paddle) Intent {
	deadband := paddle.Len / AIDeadbandDivisor
	switch {
	case ball.Y-paddle.Y > deadband:
		return Up
	case paddle.Y-ball.Y > deadband:
		return Down
	default:
		return Stop
	}
}

// ComputerIntent returns the AI intent for side, or Stop while the ball is
// moving away from that side.
func (m *Model) ComputerIntent(side Side) Intent {
	approaching := m.Ball.VX > 0
	if side == SideLeft {
		approaching = m.Ball.VX < 0
	}
	if !approaching {
		return Stop
	}
	return AIIntent(*m.Ball, *m.Paddle(side))
}
