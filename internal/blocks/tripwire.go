package blocks

import (
	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// Tripwire is the wire segment a TripwireHook circuit is made of. Its
// own state (powered/attached/disarmed) is written entirely by
// TripwireHook.update rescanning the line; tripwire.go itself only
// covers what original_source keeps outside tripwire_hook.rs — that a
// wire needs solid ground, matching every other ground-plant in this
// package (bush.go, farmland.go's sibling plant blocks).
type Tripwire struct {
	behavior.Base
	air *catalog.Block
}

func NewTripwire(cat *catalog.Catalog) *Tripwire {
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	return &Tripwire{air: air}
}

func (t *Tripwire) Names() []string { return []string{"minecraft:tripwire"} }

func (t *Tripwire) canPlaceAt(w behavior.World, pos worldstate.BlockPos) bool {
	_, below := w.GetBlockState(pos.Offset(worldstate.Down))
	return below.IsSolid()
}

func (t *Tripwire) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return t.canPlaceAt(w, pos)
}

func (t *Tripwire) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	if dir == worldstate.Down && !t.canPlaceAt(w, pos) {
		return t.air.DefaultStateID
	}
	return stateID
}
