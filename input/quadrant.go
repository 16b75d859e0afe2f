package input

import "github.com/lixenwraith/quadsnake/engine"

// QuadrantHeading maps a touch point to a heading by screen quadrant.
// Quadrants split at the screen centre; the centre lines belong to the
// right and bottom halves.
//
//	top-left     -> LEFT
//	top-right    -> UP
//	bottom-left  -> DOWN
//	bottom-right -> RIGHT
func QuadrantHeading(x, y, width, height float64) engine.Heading {
	left := x < width/2
	top := y < height/2

	switch {
	case left && top:
		return engine.HeadingLeft
	case !left && top:
		return engine.HeadingUp
	case left && !top:
		return engine.HeadingDown
	default:
		return engine.HeadingRight
	}
}
