package blocks

import (
	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/tag"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// fireBlockBase holds the placement check shared by plain fire and soul
// fire (original_source's FireBlockBase, referenced but not itself kept
// in original_source/ — reconstructed from its two call sites in
// soul_fire.rs: a fire variant may only exist over a block whose top
// face is solid).
type fireBlockBase struct{}

func (fireBlockBase) canPlaceAt(w behavior.World, pos worldstate.BlockPos) bool {
	_, below := w.GetBlockState(pos.Offset(worldstate.Down))
	return below.IsSideSolid(worldstate.Up.Index())
}

// Fire is plain fire: it needs solid support below, and otherwise burns
// indefinitely in this core (the full fuel/spread simulation is out of
// scope; this is the supplemented-but-reduced sibling of SoulFire named
// in SPEC_FULL.md §4.5, sharing fireBlockBase's placement rule).
type Fire struct {
	behavior.Base
	fireBlockBase
	air *catalog.Block
}

func NewFire(cat *catalog.Catalog) *Fire {
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	return &Fire{air: air}
}

func (f *Fire) Names() []string { return []string{"minecraft:fire"} }

func (f *Fire) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return f.canPlaceAt(w, pos)
}

func (f *Fire) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	if dir == worldstate.Down && !f.canPlaceAt(w, pos) {
		return f.air.DefaultStateID
	}
	return stateID
}

// SoulFire exists only over tagged "soul fire base" blocks; losing that
// support on any neighbor update reverts it to air
// (original_source/pumpkin/src/block/blocks/fire/soul_fire.rs).
type SoulFire struct {
	behavior.Base
	fireBlockBase
	tags *tag.Set
	air  *catalog.Block
}

func NewSoulFire(cat *catalog.Catalog, tags *tag.Set) *SoulFire {
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	return &SoulFire{tags: tags, air: air}
}

func (f *SoulFire) Names() []string { return []string{"minecraft:soul_fire"} }

func (f *SoulFire) isSoulBase(block *catalog.Block) bool {
	return block != nil && f.tags.IsTagged(block.Key, "minecraft:soul_fire_base_blocks")
}

func (f *SoulFire) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	below := w.GetBlock(pos.Offset(worldstate.Down))
	return f.canPlaceAt(w, pos) && f.isSoulBase(below)
}

func (f *SoulFire) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	below := w.GetBlock(pos.Offset(worldstate.Down))
	if !f.isSoulBase(below) {
		return f.air.DefaultStateID
	}
	return stateID
}
