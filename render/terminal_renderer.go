package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quadsnake/constants"
	"github.com/lixenwraith/quadsnake/engine"
)

// Frame glyphs
const (
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
	frameHorizontal  = '─'
	frameVertical    = '│'
)

// Renderer draws game snapshots on a tcell screen
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen

	last    engine.Snapshot
	hasLast bool
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders snap and presents the frame
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = snap
	r.hasLast = true
	r.drawLocked(snap)
}

// Redraw repaints the last snapshot, e.g. after a resize
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasLast {
		return
	}
	r.screen.Sync()
	r.drawLocked(r.last)
}

func (r *Renderer) drawLocked(snap engine.Snapshot) {
	width, height := r.screen.Size()
	layout := NewLayout(snap.Grid, width, height)

	r.screen.Clear()
	r.fill(0, 0, width, height, StyleBackground)

	if !layout.Fits {
		r.text(0, 0, constants.TooSmallText, StyleTitle)
		r.screen.Show()
		return
	}

	r.text(layout.CenterX(len([]rune(constants.TitleText))), layout.TitleY, constants.TitleText, StyleTitle)
	r.frame(layout)

	board, snake, food := StyleBoard, StyleSnake, StyleFood
	if snap.Terminal {
		board, snake, food = StyleBoardDim, StyleSnakeDim, StyleFoodDim
	}

	x, y := layout.CellOrigin(engine.Cell{})
	r.fill(x, y, snap.Grid.Width*constants.CellColumns, snap.Grid.Height, board)

	r.cell(layout, snap.Food, constants.GlyphFood, food)
	for _, seg := range snap.Snake {
		r.cell(layout, seg, constants.GlyphCell, snake)
	}

	if snap.Terminal {
		r.overlay(layout)
	}

	r.screen.Show()
}

func (r *Renderer) frame(l Layout) {
	right := l.FrameX + l.FrameW - 1
	bottom := l.FrameY + l.FrameH - 1

	for x := l.FrameX + 1; x < right; x++ {
		r.screen.SetContent(x, l.FrameY, frameHorizontal, nil, StyleFrame)
		r.screen.SetContent(x, bottom, frameHorizontal, nil, StyleFrame)
	}
	for y := l.FrameY + 1; y < bottom; y++ {
		r.screen.SetContent(l.FrameX, y, frameVertical, nil, StyleFrame)
		r.screen.SetContent(right, y, frameVertical, nil, StyleFrame)
	}
	r.screen.SetContent(l.FrameX, l.FrameY, frameTopLeft, nil, StyleFrame)
	r.screen.SetContent(right, l.FrameY, frameTopRight, nil, StyleFrame)
	r.screen.SetContent(l.FrameX, bottom, frameBottomLeft, nil, StyleFrame)
	r.screen.SetContent(right, bottom, frameBottomRight, nil, StyleFrame)
}

// cell paints one grid cell across its terminal columns
func (r *Renderer) cell(l Layout, c engine.Cell, glyph rune, style tcell.Style) {
	if !l.Grid.Contains(c) {
		return
	}
	x, y := l.CellOrigin(c)
	for i := 0; i < constants.CellColumns; i++ {
		r.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (r *Renderer) overlay(l Layout) {
	row := l.BoardCenterRow()
	r.text(l.CenterX(len([]rune(constants.GameOverText))), row-1, constants.GameOverText, StyleGameOver)
	r.text(l.CenterX(len([]rune(constants.RestartHintText))), row+1, constants.RestartHintText, StyleRestartHint)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, constants.GlyphEmpty, nil, style)
		}
	}
}
