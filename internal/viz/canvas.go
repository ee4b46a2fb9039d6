package viz

import (
	"math/bits"
	"strings"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]uint8{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille dot matrix of Width x Height character cells, which
// is (Width*2) x (Height*4) addressable dots.
type Canvas struct {
	Width, Height int
	cells         []uint8
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, cells: make([]uint8, w*h)}
}

// Set lights the dot at (x, y); out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row*c.Width+col] |= pixelMap[y%4][x%2]
}

// Dots returns the number of lit dots.
func (c *Canvas) Dots() int {
	n := 0
	for _, b := range c.cells {
		n += bits.OnesCount8(b)
	}
	return n
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines renders each cell row as a string of Braille runes.
func (c *Canvas) Lines() []string {
	out := make([]string, c.Height)
	row := make([]rune, c.Width)
	for r := 0; r < c.Height; r++ {
		for col := 0; col < c.Width; col++ {
			row[col] = rune(brailleBase + int(c.cells[r*c.Width+col]))
		}
		out[r] = string(row)
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n") + "\n"
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
