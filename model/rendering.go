package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	glyphAlive = "◼"
	glyphDead  = "◻"

	clearCmd = "clear"
)

// Viewport is a rectangular window of the board, given as two inclusive
// coordinate ranges. Endpoints may be passed in either order.
type Viewport struct {
	X0, X1 int
	Y0, Y1 int
}

// NewViewport creates a viewport covering x0..x1 and y0..y1 inclusive
func NewViewport(x0, x1, y0, y1 int) Viewport {
	return Viewport{X0: x0, X1: x1, Y0: y0, Y1: y1}
}

// ViewportAround creates a width by height viewport centered on (cx, cy).
func ViewportAround(cx, cy, width, height int) Viewport {
	x0 := cx - width/2
	y0 := cy - height/2
	return Viewport{X0: x0, X1: x0 + width - 1, Y0: y0, Y1: y0 + height - 1}
}

// Bounds returns the normalized ranges, minimum first.
func (v Viewport) Bounds() (xMin, xMax, yMin, yMax int) {
	return min(v.X0, v.X1), max(v.X0, v.X1), min(v.Y0, v.Y1), max(v.Y0, v.Y1)
}

// Width returns the number of columns
func (v Viewport) Width() int {
	xMin, xMax, _, _ := v.Bounds()
	return xMax - xMin + 1
}

// Height returns the number of rows
func (v Viewport) Height() int {
	_, _, yMin, yMax := v.Bounds()
	return yMax - yMin + 1
}

// Pan shifts the viewport by (dx, dy)
func (v Viewport) Pan(dx, dy int) Viewport {
	return Viewport{X0: v.X0 + dx, X1: v.X1 + dx, Y0: v.Y0 + dy, Y1: v.Y1 + dy}
}

// Render writes the window to w, top row (highest y) first, one line per row.
func (v Viewport) Render(w io.Writer, b *Board) error {
	xMin, xMax, yMin, yMax := v.Bounds()

	var row strings.Builder
	for y := yMax; y >= yMin; y-- {
		row.Reset()
		for x := xMin; x <= xMax; x++ {
			if b.Get(x, y) {
				row.WriteString(glyphAlive)
			} else {
				row.WriteString(glyphDead)
			}
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the window into a string
func (v Viewport) String(b *Board) string {
	var sb strings.Builder
	_ = v.Render(&sb, b)
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the viewport followed by a status line
func (r *TerminalRenderer) Display(b *Board, v Viewport, status string) error {
	if err := v.Render(r.out(), b); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out(), status)
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	return cmd.Run()
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
