package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testField = Field{Width: 100, Height: 50}

func TestNewBall(t *testing.T) {
	ball := NewBall(50, 25)

	assert.Equal(t, 50.0, ball.X)
	assert.Equal(t, 25.0, ball.Y)
	assert.Equal(t, BallRadius, ball.Radius)
	assert.Equal(t, InitialBallSpeed, ball.VX)
	assert.Equal(t, InitialBallSpeed, ball.VY)
	assert.Equal(t, ColorYellow, ball.Color)
}

func TestBall_AdvanceFreeFlight(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 1.0
	ball.VY = -0.5

	ball.Advance(testField)

	assert.Equal(t, 11.0, ball.X)
	assert.Equal(t, 19.5, ball.Y)
	assert.Equal(t, 1.0, ball.VX, "velocity must not change in free flight")
	assert.Equal(t, -0.5, ball.VY, "velocity must not change in free flight")
}

func TestBall_AdvanceReflectsOffWalls(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"below floor", 1.0, -1.5, 0.5, 1.5},
		{"exactly floor", 1.0, -1.0, 0.0, 1.0},
		{"above ceiling", 49.0, 1.5, 49.5, -1.5},
		{"exactly ceiling", 49.0, 1.0, 50.0, -1.0},
		{"inside", 25.0, 1.0, 26.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(50, tt.y)
			ball.VY = tt.vy

			ball.Advance(testField)

			assert.Equal(t, tt.wantY, ball.Y)
			assert.Equal(t, tt.wantVY, ball.VY)
			assert.GreaterOrEqual(t, ball.Y, 0.0)
			assert.LessOrEqual(t, ball.Y, testField.Height)
		})
	}
}

func TestBall_BounceOffPaddle(t *testing.T) {
	ball := NewBall(5.0, 10.0)
	ball.VX = 0.5
	ball.VY = -0.4
	speed := ball.Speed()

	ball.BounceOffPaddle()

	assert.InDelta(t, -0.525, ball.VX, 1e-12)
	assert.InDelta(t, -0.42, ball.VY, 1e-12)
	assert.InDelta(t, speed*SpeedIncrement, ball.Speed(), 1e-12)
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(3, 4)
	ball.VX = -10
	ball.VY = -10

	ball.Reset(testField, &seqRand{vals: []float64{0, 0.999999}})

	assert.Equal(t, 50.0, ball.X)
	assert.Equal(t, 25.0, ball.Y)
	assert.Equal(t, ServeSpeedMin, ball.VX)
	assert.Less(t, ball.VY, ServeSpeedMax)
	assert.Greater(t, ball.VY, 0.59)
}

func TestBall_ResetStaysBelowMax(t *testing.T) {
	ball := NewBall(0, 0)

	// A source returning 1.0 is out of contract but must not escape the range.
	ball.Reset(testField, &seqRand{vals: []float64{1.0}})

	require.Less(t, ball.VX, ServeSpeedMax)
	require.Less(t, ball.VY, ServeSpeedMax)
}

func TestBall_Speed(t *testing.T) {
	ball := NewBall(0, 0)
	ball.VX = 3.0
	ball.VY = 4.0

	assert.Equal(t, 5.0, ball.Speed())
}

func TestBall_Shape(t *testing.T) {
	ball := NewBall(7, 8)

	s := ball.Shape()

	assert.Equal(t, ShapeCircle, s.Kind)
	assert.Equal(t, 7.0, s.X1)
	assert.Equal(t, 8.0, s.Y1)
	assert.Equal(t, BallRadius, s.Radius)
	assert.Equal(t, ColorYellow, s.Color)
}
