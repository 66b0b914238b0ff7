package draw

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only rewrites cells that changed since the previous frame.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	shown          []cellKey

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area. These are 0-based terminal
	// offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	numBuf [20]byte
}

// staleCell never matches a real cell, forcing it to be redrawn.
var staleCell = cellKey{top: numColors, bottom: numColors}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.shown = make([]cellKey, termHeight*termWidth)
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = staleCell
	}
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) as overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.shown[r*c.termWidth+x] = staleCell
	}
}

// At returns the pixel color at terminal pixel coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills the logical rectangle with top-left corner (x, y).
// Anything with a non-zero size covers at least one pixel.
func (c *Canvas) FillRect(x, y, width, height float64, color Color) {
	if width <= 0 || height <= 0 {
		return
	}

	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+width)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+height)*c.scaleY)), y0+1)

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = color
		}
	}
}

// Render writes every cell that changed since the last Render.
func (c *Canvas) Render(w io.Writer, p *Palette) {
	var buf strings.Builder

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]
		shown := c.shown[row*c.termWidth : (row+1)*c.termWidth]

		cursorCol := -1 // Column the cursor is at after the last write, if on this row
		for col := 0; col < c.termWidth; col++ {
			key := cellKey{top[col], bottom[col]}
			if shown[col] == key {
				continue
			}
			shown[col] = key

			if cursorCol != col {
				c.moveCursor(&buf, col+1, row+1)
			}
			buf.WriteString(p.Cell(key.top, key.bottom))
			cursorCol = col + 1
		}
	}

	io.WriteString(w, buf.String())
}

func (c *Canvas) moveCursor(buf *strings.Builder, col, row int) {
	buf.WriteString("\033[")
	buf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+c.offsetRow), 10))
	buf.WriteByte(';')
	buf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+c.offsetCol), 10))
	buf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when there is room
// for it. Draws horizontal borders when there is vertical offset, vertical
// borders when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
