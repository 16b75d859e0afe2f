package constants

import "time"

// Board geometry, in presentation units
const (
	// CellSize is the edge length of one grid cell
	CellSize = 20

	// BoardSize is the edge length of the square board
	BoardSize = 300

	// GridWidth is the number of cells per row (BoardSize / CellSize)
	GridWidth = BoardSize / CellSize

	// GridHeight is the number of cells per column
	GridHeight = BoardSize / CellSize
)

// Game Loop Timing
const (
	// TickIntervalMs is the simulation step cadence in milliseconds
	TickIntervalMs = 200

	// TickInterval is the simulation step cadence
	TickInterval = TickIntervalMs * time.Millisecond

	// FrameUpdateInterval bounds how often the terminal is redrawn outside ticks (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// InitialSnake is the starting body, head first
var InitialSnake = [3][2]int{
	{2, 2},
	{2, 1},
	{2, 0},
}
