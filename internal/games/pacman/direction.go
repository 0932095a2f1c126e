package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit displacement for d.
func (d Direction) Vector() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.V(0, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

func randomDirection(rng *rand.Rand) Direction {
	return cardinals[rng.Intn(len(cardinals))]
}

// DirectionFromAction maps a platform action onto a movement intent.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
