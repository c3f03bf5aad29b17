package game

// ShapeKind enumerates the primitives an entity can be drawn as.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeLine
)

// Shape is a drawable primitive in field coordinates.
// Circles use X1, Y1 and Radius; lines run from (X1, Y1) to (X2, Y2).
type Shape struct {
	Kind   ShapeKind
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
	Color  Color
}

// Entity is implemented by Ball and Paddle only. It covers drawing alone:
// Ball.Advance(field) and Paddle.Advance(field, intent) take different
// inputs, so advancing stays on the concrete types.
type Entity interface {
	Shape() Shape
	entity()
}

var (
	_ Entity = (*Ball)(nil)
	_ Entity = (*Paddle)(nil)
)
