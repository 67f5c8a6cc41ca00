package model

import (
	"github.com/gdamore/tcell/v2"
)

const (
	runeAlive = '█'
	runeDead  = ' '
)

// ScreenRenderer draws a board onto a tcell screen. The last screen row is
// reserved for a status line.
type ScreenRenderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewScreenRenderer creates a renderer for an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		status: tcell.StyleDefault.Reverse(true),
	}
}

// Viewport returns a viewport that fills the drawable area around (cx, cy).
func (r *ScreenRenderer) Viewport(cx, cy int) Viewport {
	w, h := r.screen.Size()
	return ViewportAround(cx, cy, max(w, 1), max(h-1, 1))
}

// Draw paints the viewport with the highest y on the top row, then the status
// line, and shows the result. Cells that do not fit on screen are clipped.
func (r *ScreenRenderer) Draw(b *Board, v Viewport, status string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	xMin, xMax, yMin, yMax := v.Bounds()

	for row, y := 0, yMax; y >= yMin && row < h-1; row, y = row+1, y-1 {
		for col, x := 0, xMin; x <= xMax && col < w; col, x = col+1, x+1 {
			if b.Get(x, y) {
				r.screen.SetContent(col, row, runeAlive, nil, r.alive)
			} else {
				r.screen.SetContent(col, row, runeDead, nil, r.dead)
			}
		}
	}

	if h > 0 {
		col := 0
		for _, ch := range status {
			if col >= w {
				break
			}
			r.screen.SetContent(col, h-1, ch, nil, r.status)
			col++
		}
	}
	r.screen.Show()
}
