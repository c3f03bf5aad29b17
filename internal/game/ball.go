package game

import "math"

const (
	BallRadius       = 0.5
	InitialBallSpeed = 0.5 // Per axis, before the first point
	ServeSpeedMin    = 0.4
	ServeSpeedMax    = 0.6
)

type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Color  Color
}

// NewBall places a ball at (x, y) with the opening serve velocity
func NewBall(x, y float64) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: BallRadius,
		VX:     InitialBallSpeed,
		VY:     InitialBallSpeed,
		Color:  ColorYellow,
	}
}

// Advance moves the ball by its velocity and mirrors it off the top and
// bottom walls. The overshoot past a wall is kept, reflected.
func (b *Ball) Advance(field Field) {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 {
		b.VY = -b.VY
		b.Y = -b.Y
	} else if b.Y >= field.Height {
		b.VY = -b.VY
		b.Y = 2*field.Height - b.Y
	}
}

// BounceOffPaddle reverses horizontal direction and speeds up both axes
func (b *Ball) BounceOffPaddle() {
	b.VX *= -SpeedIncrement
	b.VY *= SpeedIncrement
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Reset places ball at the field center with fresh, positive speed
// magnitudes drawn from rnd. Callers pick the serve direction afterwards.
func (b *Ball) Reset(field Field, rnd Rand) {
	b.X, b.Y = field.Center()
	b.VX = uniform(rnd, ServeSpeedMin, ServeSpeedMax)
	b.VY = uniform(rnd, ServeSpeedMin, ServeSpeedMax)
}

func (b *Ball) Shape() Shape {
	return Shape{Kind: ShapeCircle, X1: b.X, Y1: b.Y, Radius: b.Radius, Color: b.Color}
}

func (*Ball) entity() {}
