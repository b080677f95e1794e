package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots per character cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blankBraille = 0x2800

// Canvas is a braille pixel grid with one color per character cell.
// Plot coordinates are sub-pixels: (Width*2) x (Height*4). The last
// write to a cell decides its color, so painter-ordered drawing keeps
// near points on top.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]RGB
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]RGB, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]RGB, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankBraille
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y) and colors its cell.
func (c *Canvas) Set(x, y int, col RGB) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	if c.Grid[cy][cx]&^rune(0xff) != blankBraille {
		// Cell holds an overlay rune; braille dots must not corrupt it.
		return
	}
	c.Grid[cy][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[cy][cx] = col
}

// Overlay writes a literal rune into the cell containing sub-pixel
// (x, y), replacing any braille dots there. Used for point markers that
// must stay visible, like the coordinate origin.
func (c *Canvas) Overlay(x, y int, r rune, col RGB) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] = r
	c.Colors[cy][cx] = col
}

// Clear resets every cell. The backing arrays are reused.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankBraille
			c.Colors[i][j] = RGB{}
		}
	}
}

// DrawLine draws a Bresenham line in sub-pixel coordinates.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col RGB) {
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
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
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

// Snapshot copies the current cells into an immutable grid.
func (c *Canvas) Snapshot() CellGrid {
	g := CellGrid{
		Runes:  make([][]rune, c.Height),
		Colors: make([][]RGB, c.Height),
	}
	for i := range c.Grid {
		g.Runes[i] = append([]rune(nil), c.Grid[i]...)
		g.Colors[i] = append([]RGB(nil), c.Colors[i]...)
	}
	return g
}

// String renders the grid without styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CellGrid is a frozen canvas: runes plus per-cell color.
type CellGrid struct {
	Runes  [][]rune
	Colors [][]RGB
}

func (g CellGrid) Height() int { return len(g.Runes) }

func (g CellGrid) Width() int {
	if len(g.Runes) == 0 {
		return 0
	}
	return len(g.Runes[0])
}

// Plain renders the runes without styling.
func (g CellGrid) Plain() string {
	var b strings.Builder
	for _, row := range g.Runes {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

var styleCache = map[RGB]lipgloss.Style{}

func styleFor(col RGB) lipgloss.Style {
	if s, ok := styleCache[col]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	styleCache[col] = s
	return s
}

// Render produces ANSI-styled text, batching runs of equally colored
// cells into single style calls. Uncolored cells pass through plain.
func (g CellGrid) Render() string {
	var b strings.Builder
	for i, row := range g.Runes {
		var run []rune
		runCol := RGB{}
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == (RGB{}) {
				b.WriteString(string(run))
			} else {
				b.WriteString(styleFor(runCol).Render(string(run)))
			}
			run = run[:0]
		}
		for j, r := range row {
			col := g.Colors[i][j]
			if col != runCol {
				flush()
				runCol = col
			}
			run = append(run, r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}
