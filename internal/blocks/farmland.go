// Package blocks implements the representative block behaviors named in
// spec.md §4.5 (component C5): farmland, soul fire (plus plain fire, a
// supplemented feature), bush-like plants, oak sapling (supplemented),
// and the tripwire hook/tripwire pair. Each is grounded directly on its
// original_source/pumpkin/src/block/blocks/... counterpart, translated
// from Rust's async trait methods to Go's synchronous Behavior hooks
// (this core's world access is synchronous, which spec.md §9 permits).
package blocks

import (
	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// Farmland reverts to dirt when the block above becomes solid, either
// immediately on placement or with a 1-tick delay on a later neighbor
// update (original_source/pumpkin/src/block/blocks/farmland.rs).
type Farmland struct {
	behavior.Base
	dirt *catalog.Block
}

func NewFarmland(cat *catalog.Catalog) *Farmland {
	dirt, _ := cat.BlockFromRegistryKey("minecraft:dirt")
	return &Farmland{dirt: dirt}
}

func (f *Farmland) Names() []string { return []string{"minecraft:farmland"} }

func (f *Farmland) canPlaceAt(w behavior.World, pos worldstate.BlockPos) bool {
	_, state := w.GetBlockState(pos.Offset(worldstate.Up))
	return !state.IsSolid()
}

func (f *Farmland) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return f.canPlaceAt(w, pos)
}

func (f *Farmland) OnPlace(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, ctx behavior.PlacementContext) uint16 {
	if !f.canPlaceAt(w, pos) {
		return f.dirt.DefaultStateID
	}
	return block.DefaultStateID
}

func (f *Farmland) OnScheduledTick(w behavior.World, pos worldstate.BlockPos, block *catalog.Block) {
	w.SetBlockState(pos, f.dirt.DefaultStateID, worldstate.DefaultFlags)
}

func (f *Farmland) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	if dir == worldstate.Up && !f.canPlaceAt(w, pos) {
		w.ScheduleBlockTick(pos, block.ID, 1, worldstate.Normal)
	}
	return stateID
}
