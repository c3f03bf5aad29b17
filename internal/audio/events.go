package audio

import (
	"math"

	"github.com/diegok/termpong/internal/game"
)

// Events are the sound-worthy things that happened between two snapshots
type Events struct {
	PaddleHit  bool
	WallBounce bool
	Score      bool
}

// Any reports whether at least one event fired
func (e Events) Any() bool {
	return e.PaddleHit || e.WallBounce || e.Score
}

// Detect compares consecutive snapshots. A score resets the ball and its
// velocity, so velocity flips are only read as bounces when nobody scored.
func Detect(prev, cur game.Snapshot) Events {
	var ev Events
	if cur.Ticks == prev.Ticks {
		return ev
	}

	if cur.LeftScore > prev.LeftScore || cur.RightScore > prev.RightScore {
		ev.Score = true
		return ev
	}

	ev.PaddleHit = flipped(prev.Ball.VX, cur.Ball.VX)
	ev.WallBounce = flipped(prev.Ball.VY, cur.Ball.VY)
	return ev
}

func flipped(a, b float64) bool {
	return a != 0 && b != 0 && math.Signbit(a) != math.Signbit(b)
}
