package game

// Intent is a one-tick control command for a paddle
type Intent int

const (
	Stop Intent = iota
	Up
	Down
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "stop"
	}
}

// Side identifies one half of the court
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Color is an index into the renderer's palette
type Color int

const (
	ColorWhite Color = iota
	ColorYellow
	ColorBlue
	ColorRed
)
