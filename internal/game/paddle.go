package game

const (
	PaddleSpeed = 2.0

	// Construction-time proportions of the field
	PaddleLenDivisor   = 25.0
	PaddleInsetDivisor = 12.0
)

type Paddle struct {
	X     float64 // fixed column
	Y     float64 // center
	Len   float64
	VY    float64
	Color Color
}

// NewPaddle builds the paddle for side, vertically centered on the field
func NewPaddle(side Side, field Field) *Paddle {
	p := &Paddle{
		Len: field.Width / PaddleLenDivisor,
		Y:   field.Height / 2,
	}
	if side == SideLeft {
		p.X = field.Width / PaddleInsetDivisor
		p.Color = ColorBlue
	} else {
		p.X = field.Width * (PaddleInsetDivisor - 1) / PaddleInsetDivisor
		p.Color = ColorRed
	}
	return p
}

// Advance sets the velocity from intent and moves the paddle, clamped so it
// stays entirely inside the field.
func (p *Paddle) Advance(field Field, intent Intent) {
	switch intent {
	case Up:
		p.VY = PaddleSpeed
	case Down:
		p.VY = -PaddleSpeed
	default:
		p.VY = 0
	}

	p.Y = clamp(p.Y+p.VY, p.Len/2, field.Height-p.Len/2)
}

// ContainsY reports whether y lies strictly between the paddle ends
func (p *Paddle) ContainsY(y float64) bool {
	halfLen := p.Len / 2
	return y > p.Y-halfLen && y < p.Y+halfLen
}

func (p *Paddle) TopY() float64 {
	return p.Y + p.Len/2
}

func (p *Paddle) BottomY() float64 {
	return p.Y - p.Len/2
}

func (p *Paddle) Shape() Shape {
	return Shape{
		Kind:  ShapeLine,
		X1:    p.X,
		Y1:    p.BottomY(),
		X2:    p.X,
		Y2:    p.TopY(),
		Color: p.Color,
	}
}

func (*Paddle) entity() {}

// clamp bounds v to [lo, hi]. When the paddle is longer than the field
// lo > hi and hi wins.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
