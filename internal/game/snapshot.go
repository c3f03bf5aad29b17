package game

// Snapshot is a copy of the model state after a tick, safe to hold while the
// model keeps running.
type Snapshot struct {
	Field      Field
	Ball       Ball
	Left       Paddle
	Right      Paddle
	LeftScore  int
	RightScore int
	Ticks      int
}

// Snapshot copies the current state
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Field:      m.Field,
		Ball:       *m.Ball,
		Left:       *m.LeftPaddle,
		Right:      *m.RightPaddle,
		LeftScore:  m.LeftScore,
		RightScore: m.RightScore,
		Ticks:      m.Ticks,
	}
}

// Shapes returns the drawable primitives, paddles first so the ball is drawn
// on top.
func (s Snapshot) Shapes() []Shape {
	return []Shape{s.Left.Shape(), s.Right.Shape(), s.Ball.Shape()}
}
