package blocks

import (
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// TripwireHookProps is the named-field view over minecraft:tripwire_hook's
// shared PropertyGroup (declaration order: horizontal_facing, powered,
// attached), standing in for original_source's generated
// TripwireHookLikeProperties.
type TripwireHookProps struct {
	Facing   worldstate.Direction
	Powered  bool
	Attached bool
}

func tripwireHookFromStateID(group *catalog.PropertyGroup, block *catalog.Block, stateID uint16) TripwireHookProps {
	v := group.FromStateID(stateID, block)
	return TripwireHookProps{
		Facing:   horizontalFacingFromIndex(v[0]),
		Powered:  boolFromIndex(v[1]),
		Attached: boolFromIndex(v[2]),
	}
}

func (p TripwireHookProps) toStateID(group *catalog.PropertyGroup, block *catalog.Block) uint16 {
	return group.ToStateID(block, []uint16{horizontalFacingIndex(p.Facing), boolIndex(p.Powered), boolIndex(p.Attached)})
}

// TripwireProps is the named-field view over minecraft:tripwire's shared
// PropertyGroup (declaration order: powered, attached, disarmed).
type TripwireProps struct {
	Powered  bool
	Attached bool
	Disarmed bool
}

func tripwireFromStateID(group *catalog.PropertyGroup, block *catalog.Block, stateID uint16) TripwireProps {
	v := group.FromStateID(stateID, block)
	return TripwireProps{
		Powered:  boolFromIndex(v[0]),
		Attached: boolFromIndex(v[1]),
		Disarmed: boolFromIndex(v[2]),
	}
}

func (p TripwireProps) toStateID(group *catalog.PropertyGroup, block *catalog.Block) uint16 {
	return group.ToStateID(block, []uint16{boolIndex(p.Powered), boolIndex(p.Attached), boolIndex(p.Disarmed)})
}
