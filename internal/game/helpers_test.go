package game

import "testing"

// seqRand replays a fixed sequence of values, wrapping around
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// newTestModel builds a model whose serves draw from vals (0.5 by default)
func newTestModel(t testing.TB, width, height float64, vals ...float64) *Model {
	t.Helper()
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	m, err := NewModel(width, height, WithRand(&seqRand{vals: vals}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}
