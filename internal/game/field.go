package game

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidField is returned when a field dimension is not a positive,
// finite number.
var ErrInvalidField = errors.New("invalid field dimensions")

// Field is the logical playing surface. Entities live in [0, Width] x [0, Height]
// with y growing upwards.
type Field struct {
	Width  float64
	Height float64
}

// NewField validates the dimensions and returns a Field
func NewField(width, height float64) (Field, error) {
	if !validDimension(width) || !validDimension(height) {
		return Field{}, errors.Wrapf(ErrInvalidField, "%gx%g", width, height)
	}
	return Field{Width: width, Height: height}, nil
}

// Center returns the middle of the field
func (f Field) Center() (float64, float64) {
	return f.Width / 2, f.Height / 2
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
