package blocks

import (
	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/tag"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// Bush covers bush-like plants that may only stand on dirt-tagged blocks
// or farmland (original_source/pumpkin/src/block/blocks/plant/bush.rs).
// Losing that support removes the plant and drops its loot, which the
// source leaves to the generic "block above a destroyed block is
// revalidated via can_place_at" path rather than bush.rs itself — this
// behavior additionally wires that revalidation through
// GetStateForNeighborUpdate since this core's World doesn't run it
// implicitly.
type Bush struct {
	behavior.Base
	tags *tag.Set
	air  *catalog.Block
}

func NewBush(cat *catalog.Catalog, tags *tag.Set) *Bush {
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	return &Bush{tags: tags, air: air}
}

func (b *Bush) Names() []string { return []string{"minecraft:bush", "minecraft:firefly_bush"} }

func (b *Bush) canPlaceAt(w behavior.World, pos worldstate.BlockPos) bool {
	below := w.GetBlock(pos.Offset(worldstate.Down))
	if below == nil {
		return false
	}
	return b.tags.IsTagged(below.Key, "minecraft:dirt") || below.Key == "minecraft:farmland"
}

func (b *Bush) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return b.canPlaceAt(w, pos)
}

func (b *Bush) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	if dir == worldstate.Down && !b.canPlaceAt(w, pos) {
		w.DropLoot(pos, block.LootTable)
		return b.air.DefaultStateID
	}
	return stateID
}
