package snake

import (
	"fmt"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// Direction is a unit step along one axis.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d.X != 0
}

// SameAxis reports whether d and other move along the same axis.
// A turn onto the same axis is either a no-op or a reversal.
func (d Direction) SameAxis(other Direction) bool {
	return d.Horizontal() == other.Horizontal()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a configuration name into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Direction{}, fmt.Errorf("snake: unknown direction %q", name)
	}
}

// directionFor maps a steering action to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Direction{}, false
	}
}
