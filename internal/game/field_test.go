package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	f, err := NewField(80, 24)
	require.NoError(t, err)

	assert.Equal(t, Field{Width: 80, Height: 24}, f)
	cx, cy := f.Center()
	assert.Equal(t, 40.0, cx)
	assert.Equal(t, 12.0, cy)
}

func TestNewField_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		msg           string
	}{
		{"zero", 0, 24, "0x24"},
		{"negative height", 80, -1, "80x-1"},
		{"NaN", math.NaN(), 24, "NaNx24"},
		{"infinite", math.Inf(1), 24, "+Infx24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewField(tt.width, tt.height)

			require.ErrorIs(t, err, ErrInvalidField)
			assert.EqualError(t, err, tt.msg+": "+ErrInvalidField.Error())
		})
	}
}
