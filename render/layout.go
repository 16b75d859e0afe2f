package render

import (
	"github.com/lixenwraith/quadsnake/constants"
	"github.com/lixenwraith/quadsnake/engine"
)

// Layout positions the title and board on a screen of a given size
type Layout struct {
	Grid engine.Grid

	// Title row
	TitleY int

	// Top-left corner of the board frame
	FrameX, FrameY int

	// Frame outer size in terminal cells
	FrameW, FrameH int

	// Fits is false when the screen cannot hold the board
	Fits bool
}

// NewLayout centres the board on a width x height screen
func NewLayout(grid engine.Grid, width, height int) Layout {
	frameW := grid.Width*constants.CellColumns + 2*constants.BoardFrame
	frameH := grid.Height + 2*constants.BoardFrame
	totalH := 1 + constants.TitleGap + frameH

	l := Layout{
		Grid:   grid,
		FrameW: frameW,
		FrameH: frameH,
		Fits:   width >= frameW && height >= totalH,
	}

	l.TitleY = (height - totalH) / 2
	if l.TitleY < 0 {
		l.TitleY = 0
	}
	l.FrameX = (width - frameW) / 2
	if l.FrameX < 0 {
		l.FrameX = 0
	}
	l.FrameY = l.TitleY + 1 + constants.TitleGap
	return l
}

// CellOrigin returns the screen position of the left column of grid cell c
func (l Layout) CellOrigin(c engine.Cell) (x, y int) {
	return l.FrameX + constants.BoardFrame + c.X*constants.CellColumns,
		l.FrameY + constants.BoardFrame + c.Y
}

// BoardCenterRow returns the screen row at the middle of the board
func (l Layout) BoardCenterRow() int {
	return l.FrameY + constants.BoardFrame + l.Grid.Height/2
}

// CenterX returns the start column for centring a string of n runes on the board
func (l Layout) CenterX(n int) int {
	return l.FrameX + (l.FrameW-n)/2
}
