package blocks

import "github.com/pumpkin-go/blockcore/internal/worldstate"

// horizontalFacingIndex/horizontalFacingFromIndex convert between a
// horizontal Direction and properties.json's declared horizontal_facing
// variant order (north, south, west, east) — the order every
// *Props.toStateID/fromStateID helper in this package depends on.
func horizontalFacingIndex(d worldstate.Direction) uint16 {
	switch d {
	case worldstate.North:
		return 0
	case worldstate.South:
		return 1
	case worldstate.West:
		return 2
	case worldstate.East:
		return 3
	default:
		return 0
	}
}

func horizontalFacingFromIndex(idx uint16) worldstate.Direction {
	switch idx {
	case 0:
		return worldstate.North
	case 1:
		return worldstate.South
	case 2:
		return worldstate.West
	default:
		return worldstate.East
	}
}

func boolIndex(b bool) uint16 {
	if b {
		return 0
	}
	return 1
}

func boolFromIndex(idx uint16) bool { return idx == 0 }
