package terminal

import (
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so cells look roughly square.
const cellColumns = 2

// Canvas maps logical units onto terminal cells inside a one-cell frame.
type Canvas struct {
	screen tcell.Screen
	grid   types.Grid
	frame  tcell.Style
}

func NewCanvas(screen tcell.Screen, grid types.Grid) *Canvas {
	return &Canvas{
		screen: screen,
		grid:   grid,
		frame:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func style(bg types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

func fg(c types.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Cell converts a logical position to the terminal column and row of its
// top-left corner.
func (c *Canvas) Cell(x, y int) (col, row int) {
	return 1 + x*cellColumns/c.grid.UnitSize, 1 + y/c.grid.UnitSize
}

// Size is the number of columns and rows the board and its frame take.
func (c *Canvas) Size() (cols, rows int) {
	return c.grid.Columns()*cellColumns + 2, c.grid.Rows() + 2
}

func (c *Canvas) Clear(bg types.Color) {
	cols, rows := c.Size()
	s := style(bg)
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			c.screen.SetContent(col, row, ' ', nil, s)
		}
	}
	c.drawFrame(cols, rows)
}

func (c *Canvas) drawFrame(cols, rows int) {
	for col := 1; col < cols-1; col++ {
		c.screen.SetContent(col, 0, tcell.RuneHLine, nil, c.frame)
		c.screen.SetContent(col, rows-1, tcell.RuneHLine, nil, c.frame)
	}
	for row := 1; row < rows-1; row++ {
		c.screen.SetContent(0, row, tcell.RuneVLine, nil, c.frame)
		c.screen.SetContent(cols-1, row, tcell.RuneVLine, nil, c.frame)
	}
	c.screen.SetContent(0, 0, tcell.RuneULCorner, nil, c.frame)
	c.screen.SetContent(cols-1, 0, tcell.RuneURCorner, nil, c.frame)
	c.screen.SetContent(0, rows-1, tcell.RuneLLCorner, nil, c.frame)
	c.screen.SetContent(cols-1, rows-1, tcell.RuneLRCorner, nil, c.frame)
}

func (c *Canvas) FillRect(x, y, w, h int, col types.Color) {
	c.fill(x, y, w, h, ' ', style(col))
}

// FillOval draws a dot in each covered cell.
func (c *Canvas) FillOval(x, y, w, h int, col types.Color) {
	c.fill(x, y, w, h, '●', fg(col))
}

func (c *Canvas) fill(x, y, w, h int, r rune, s tcell.Style) {
	left, top := c.Cell(x, y)
	right, bottom := c.Cell(x+w, y+h)
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			ch := r
			if r != ' ' && (col-left)%cellColumns != 0 {
				ch = ' '
			}
			c.screen.SetContent(col, row, ch, nil, s)
		}
	}
}

// DrawText writes text on the row containing y. Font size is ignored; one
// rune takes one column.
func (c *Canvas) DrawText(text string, x, y, size int, col types.Color) {
	left, row := c.Cell(x, y)
	s := fg(col)
	for i, r := range []rune(text) {
		c.screen.SetContent(left+i, row, r, nil, s)
	}
}

// MeasureText returns the logical width of text at one column per rune.
func (c *Canvas) MeasureText(text string, size int) int {
	return len([]rune(text)) * c.grid.UnitSize / cellColumns
}
