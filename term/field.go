package term

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/pong/pong"
)

var (
	fieldStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ballStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// cells is an inclusive range of terminal cells.
type cells struct {
	x0, y0, x1, y1 int
}

// project maps a rectangle in playfield units onto a width x height grid of cells.
// Every rectangle covers at least one cell and stays inside the grid.
func project(r pong.Rect, cfg pong.Config, width, height int) cells {
	sx := float64(width) / cfg.Width
	sy := float64(height) / cfg.Height
	c := cells{
		x0: int(math.Floor(r.X * sx)),
		y0: int(math.Floor(r.Y * sy)),
		x1: int(math.Ceil((r.X+r.W)*sx)) - 1,
		y1: int(math.Ceil((r.Y+r.H)*sy)) - 1,
	}
	c.x0 = clampCell(c.x0, width)
	c.y0 = clampCell(c.y0, height)
	c.x1 = max(c.x0, clampCell(c.x1, width))
	c.y1 = max(c.y0, clampCell(c.y1, height))
	return c
}

func clampCell(v, n int) int {
	return min(max(v, 0), n-1)
}

func fill(screen tcell.Screen, x, y int, c cells, r rune, style tcell.Style) {
	for cy := c.y0; cy <= c.y1; cy++ {
		for cx := c.x0; cx <= c.x1; cx++ {
			screen.SetContent(x+cx, y+cy, r, nil, style)
		}
	}
}

// drawField renders the match inside the given area of the screen.
func drawField(screen tcell.Screen, m *pong.Match, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cfg := m.Config()

	p1, p2 := m.Score()
	third := y + height/3
	tview.Print(screen, strconv.Itoa(p1), x, third, width/2-2, tview.AlignRight, tcell.ColorWhite)
	tview.Print(screen, strconv.Itoa(p2), x+width/2+2, third, width/2-2, tview.AlignLeft, tcell.ColorWhite)

	title, prompt := m.Banner()
	tview.Print(screen, title, x, y, width, tview.AlignCenter, tcell.ColorWhite)
	tview.Print(screen, prompt, x, y+1, width, tview.AlignCenter, tcell.ColorGray)

	left, right := m.Paddles()
	fill(screen, x, y, project(left.Bounds(), cfg, width, height), '█', fieldStyle)
	fill(screen, x, y, project(right.Bounds(), cfg, width, height), '█', fieldStyle)
	fill(screen, x, y, project(m.Ball().Bounds(), cfg, width, height), '●', ballStyle)
}
