package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quadsnake/constants"
)

// Palette colours
var (
	RgbBackground  = hexColor(constants.ColorBackground)
	RgbBoard       = hexColor(constants.ColorBoard)
	RgbSnake       = hexColor(constants.ColorSnake)
	RgbFood        = hexColor(constants.ColorFood)
	RgbTitle       = hexColor(constants.ColorTitle)
	RgbFrame       = hexColor(constants.ColorFrame)
	RgbOverlayText = hexColor(constants.ColorOverlayText)

	// Board contents seen through the game-over overlay
	RgbBoardDim = hexColor(dimHex(constants.ColorBoard, constants.OverlayDimFactor))
	RgbSnakeDim = hexColor(dimHex(constants.ColorSnake, constants.OverlayDimFactor))
	RgbFoodDim  = hexColor(dimHex(constants.ColorFood, constants.OverlayDimFactor))
)

// Styles
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleTitle      = tcell.StyleDefault.Foreground(RgbTitle).Background(RgbBackground).Bold(true)
	StyleFrame      = tcell.StyleDefault.Foreground(RgbFrame).Background(RgbBackground)
	StyleBoard      = tcell.StyleDefault.Background(RgbBoard)
	StyleSnake      = tcell.StyleDefault.Foreground(RgbSnake).Background(RgbBoard)
	StyleFood       = tcell.StyleDefault.Foreground(RgbFood).Background(RgbBoard)

	StyleBoardDim    = tcell.StyleDefault.Background(RgbBoardDim)
	StyleSnakeDim    = tcell.StyleDefault.Foreground(RgbSnakeDim).Background(RgbBoardDim)
	StyleFoodDim     = tcell.StyleDefault.Foreground(RgbFoodDim).Background(RgbBoardDim)
	StyleGameOver    = tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbBoardDim).Bold(true)
	StyleRestartHint = tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbBoardDim).Underline(true)
)

func hexColor(hex uint32) tcell.Color {
	return tcell.NewRGBColor(int32(hex>>16&0xFF), int32(hex>>8&0xFF), int32(hex&0xFF))
}

// dimHex blends a colour toward black by factor (0 = unchanged, 1 = black)
func dimHex(hex uint32, factor float64) uint32 {
	scale := func(c uint32) uint32 {
		return uint32(float64(c) * (1 - factor))
	}
	r := scale(hex >> 16 & 0xFF)
	g := scale(hex >> 8 & 0xFF)
	b := scale(hex & 0xFF)
	return r<<16 | g<<8 | b
}
