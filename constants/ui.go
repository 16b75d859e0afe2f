package constants

// UI text
const (
	TitleText       = "Snake Game"
	GameOverText    = "Game Over"
	RestartHintText = "Tap to Restart"
	TooSmallText    = "terminal too small"
)

// Terminal layout
const (
	// CellColumns is how many terminal columns one grid cell spans.
	// Terminal cells are roughly twice as tall as wide.
	CellColumns = 2

	// BoardFrame is the border thickness around the board
	BoardFrame = 1

	// TitleGap is the number of rows between the title and the board frame
	TitleGap = 1
)

// Palette as 0xRRGGBB
const (
	ColorBackground  = 0xFFFFFF
	ColorBoard       = 0xEEFCF9
	ColorSnake       = 0x1B998B
	ColorFood        = 0xFF6B6B
	ColorOverlayText = 0xFFFFFF
	ColorTitle       = 0x222222
	ColorFrame       = 0x8A8A8A
)

// OverlayDimFactor darkens board cells behind the game-over overlay (rgba(0,0,0,0.5))
const OverlayDimFactor = 0.5

// Glyphs
const (
	GlyphCell  = '█'
	GlyphFood  = '█'
	GlyphEmpty = ' '
)
