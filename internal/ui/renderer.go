package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

const (
	BallChar   = '●'
	PaddleChar = '█'
	NetChar    = '┆'
)

const title = " PONG "

// Renderer draws game snapshots onto a Screen
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the court area inside the border for field
func (r *Renderer) Viewport(field game.Field) Viewport {
	w, h := r.screen.Size()
	return Viewport{X: 1, Y: 1, W: w - 2, H: h - 2, Field: field}
}

// RenderGame draws the court border, title, score line, net and every
// entity in snap.
func (r *Renderer) RenderGame(snap game.Snapshot, paused bool) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(0, 0, screenW, screenH, borderStyle)
	r.drawCentered(0, screenW, title, borderStyle.Bold(true))
	r.renderScore(snap, screenW, screenH-1)

	vp := r.Viewport(snap.Field)
	if vp.Empty() {
		r.screen.Show()
		return
	}

	netStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	netX := vp.X + vp.W/2
	for y := vp.Y; y < vp.Y+vp.H; y += 2 {
		r.screen.SetCell(netX, y, netStyle, NetChar)
	}

	for _, s := range snap.Shapes() {
		r.drawShape(vp, s)
	}

	if paused {
		r.drawCentered(vp.Y+vp.H/2, screenW, " PAUSED ", tcell.StyleDefault.Reverse(true))
	}

	r.screen.Show()
}

func (r *Renderer) drawShape(vp Viewport, s game.Shape) {
	style := ColorStyle(s.Color)
	switch s.Kind {
	case game.ShapeLine:
		// Paddles are vertical; x2 is ignored.
		col, top := vp.Cell(s.X1, s.Y2)
		_, bottom := vp.Cell(s.X1, s.Y1)
		for row := top; row <= bottom; row++ {
			r.screen.SetCell(col, row, style, PaddleChar)
		}
	case game.ShapeCircle:
		col, row := vp.Cell(s.X1, s.Y1)
		r.screen.SetCell(col, row, style, BallChar)
	}
}

// renderScore writes " l : SCORE : r " centered on the bottom border
func (r *Renderer) renderScore(snap game.Snapshot, screenW, y int) {
	left := fmt.Sprintf("%d", snap.LeftScore)
	right := fmt.Sprintf("%d", snap.RightScore)
	label := " : SCORE : "

	x := (screenW - (len(left) + len(label) + len(right) + 2)) / 2
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	score := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	r.screen.DrawText(x, y, " ", plain)
	x++
	r.screen.DrawText(x, y, left, score)
	x += len(left)
	r.screen.DrawText(x, y, label, plain)
	x += len(label)
	r.screen.DrawText(x, y, right, score)
	x += len(right)
	r.screen.DrawText(x, y, " ", plain)
}

func (r *Renderer) drawCentered(y, screenW int, text string, style tcell.Style) {
	x := (screenW - len([]rune(text))) / 2
	r.screen.DrawText(x, y, text, style)
}
