package game

// Resize rescales every entity so it keeps its fractional position in the
// field, then adopts the new bounds. Invalid dimensions are rejected and the
// model is left as it was.
func (m *Model) Resize(width, height float64) error {
	field, err := NewField(width, height)
	if err != nil {
		return err
	}

	xRatio := field.Width / m.Field.Width
	yRatio := field.Height / m.Field.Height

	m.Ball.X *= xRatio
	m.Ball.Y *= yRatio
	for _, p := range []*Paddle{m.LeftPaddle, m.RightPaddle} {
		p.X *= xRatio
		p.Y *= yRatio
		p.Len *= yRatio
	}

	m.Field = field
	return nil
}
