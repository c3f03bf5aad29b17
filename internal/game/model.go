package game

// Model owns the whole simulation: field, ball, both paddles, scores and the
// pending intent for each side. It is not safe for concurrent use.
type Model struct {
	Field       Field
	Ball        *Ball
	LeftPaddle  *Paddle
	RightPaddle *Paddle
	LeftScore   int
	RightScore  int
	LeftIntent  Intent
	RightIntent Intent
	Ticks       int

	rnd Rand
}

// Option configures a Model at construction
type Option func(*Model)

// WithRand injects the random source used for serves
func WithRand(rnd Rand) Option {
	return func(m *Model) {
		m.rnd = rnd
	}
}

// WithSeed seeds the default random source. Zero picks a random seed.
func WithSeed(seed uint64) Option {
	return func(m *Model) {
		m.rnd = newRand(seed)
	}
}

// NewModel creates a model for a width x height field with the ball at the
// center and both paddles vertically centered.
func NewModel(width, height float64, opts ...Option) (*Model, error) {
	field, err := NewField(width, height)
	if err != nil {
		return nil, err
	}

	cx, cy := field.Center()
	m := &Model{
		Field:       field,
		Ball:        NewBall(cx, cy),
		LeftPaddle:  NewPaddle(SideLeft, field),
		RightPaddle: NewPaddle(SideRight, field),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = newRand(0)
	}
	return m, nil
}

// SetIntent queues intent for side's next tick
func (m *Model) SetIntent(side Side, intent Intent) {
	if side == SideLeft {
		m.LeftIntent = intent
	} else {
		m.RightIntent = intent
	}
}

// Paddle returns the paddle for side
func (m *Model) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return m.LeftPaddle
	}
	return m.RightPaddle
}

// Tick advances the simulation by one step. The order is fixed: paddles,
// paddle contact, ball motion, goal check.
func (m *Model) Tick() {
	m.LeftPaddle.Advance(m.Field, m.LeftIntent)
	m.LeftIntent = Stop
	m.RightPaddle.Advance(m.Field, m.RightIntent)
	m.RightIntent = Stop

	m.checkPaddleCollision()
	m.Ball.Advance(m.Field)
	m.checkScore()

	m.Ticks++
}
