// Package behavior implements the block behavior registry (component
// C3): a "minecraft:<name>" -> behavior lookup table with a fixed,
// Rust-trait-shaped hook set, and a default no-op behavior for anything
// the registry has no match for (spec.md §4.3).
package behavior

import (
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// ActionResult is returned by the use hooks to decide whether further
// handlers in the item -> block -> fluid chain should run.
type ActionResult int

const (
	Continue ActionResult = iota
	Consume
)

// World is the subset of worldstate.World's method set hooks are given.
// *worldstate.World satisfies it structurally; tests can substitute a
// fake without importing worldstate's concrete type.
type World interface {
	GetBlockStateID(pos worldstate.BlockPos) uint16
	GetBlockState(pos worldstate.BlockPos) (*catalog.Block, catalog.BlockState)
	GetBlock(pos worldstate.BlockPos) *catalog.Block
	SetBlockState(pos worldstate.BlockPos, stateID uint16, flags worldstate.BlockFlags)
	UpdateNeighbor(pos, sourcePos worldstate.BlockPos)
	UpdateNeighbors(pos worldstate.BlockPos, block *catalog.Block, flags worldstate.BlockFlags)
	ReplaceWithStateForNeighborUpdate(pos worldstate.BlockPos, fromDir worldstate.Direction, flags worldstate.BlockFlags)
	ScheduleBlockTick(pos worldstate.BlockPos, blockID uint16, delay uint64, priority worldstate.Priority)
	PlaySoundRaw(pos worldstate.BlockPos, soundID uint16, category uint8, volume, pitch float32)
	DropStack(pos worldstate.BlockPos, itemID int32, count int32)
	DropLoot(pos worldstate.BlockPos, lootTable string)
}

// Player is the minimal placement-time actor context a hook needs: which
// way they are facing (used to orient facing-sensitive placements like
// the tripwire hook) and where they are standing.
type Player struct {
	Pos    worldstate.BlockPos
	Facing worldstate.Direction
}

// PlacementContext carries the information on_place needs beyond the
// position and candidate block: the face clicked, whether this placement
// is replacing an existing non-air, replaceable state, and the player
// doing the placing.
type PlacementContext struct {
	Player    *Player
	Face      worldstate.Direction
	Replacing bool
}

// Behavior is the fixed capability set every block-specific behavior may
// implement (spec.md §4.3's hook table, renamed from the source's
// trait-method names to Go method names but otherwise 1:1). Embed Base to
// get no-op defaults for hooks a behavior doesn't care about.
type Behavior interface {
	// Names returns the "minecraft:<name>" registry keys this behavior
	// handles.
	Names() []string

	OnPlace(w World, pos worldstate.BlockPos, block *catalog.Block, ctx PlacementContext) uint16
	CanPlaceAt(w World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool
	CanUpdateAt(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction) bool
	Placed(w World, pos worldstate.BlockPos, block *catalog.Block, stateID, oldStateID uint16, notify bool)
	PlayerPlaced(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction, player *Player)
	Broken(w World, pos worldstate.BlockPos, block *catalog.Block, state catalog.BlockState, player *Player)
	NormalUse(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player) ActionResult
	UseWithItem(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player, itemID int32) ActionResult
	OnEntityCollision(w World, pos worldstate.BlockPos, block *catalog.Block, entityID int64)
	OnNeighborUpdate(w World, pos worldstate.BlockPos, block *catalog.Block, sourcePos worldstate.BlockPos, notify bool)
	GetStateForNeighborUpdate(w World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16
	OnScheduledTick(w World, pos worldstate.BlockPos, block *catalog.Block)
	RandomTick(w World, pos worldstate.BlockPos, block *catalog.Block)
	OnStateReplaced(w World, pos worldstate.BlockPos, block *catalog.Block, oldStateID uint16, moved bool)
	EmitsRedstonePower(block *catalog.Block, stateID uint16) bool
	GetWeakRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32
	GetStrongRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32
	GetComparatorOutput(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16) int32
	OnSyncedBlockEvent(w World, pos worldstate.BlockPos, block *catalog.Block, eventType, data uint8) bool
	Explode(w World, pos worldstate.BlockPos, block *catalog.Block)
	Prepare(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, flags worldstate.BlockFlags)
}

// Base implements every Behavior hook as the spec-mandated default
// no-op/identity. Concrete behaviors embed Base and override only the
// hooks their block cares about (spec.md §4.3: "Missing -> default
// no-op behavior").
type Base struct{}

func (Base) Names() []string { return nil }

func (Base) OnPlace(w World, pos worldstate.BlockPos, block *catalog.Block, ctx PlacementContext) uint16 {
	return block.DefaultStateID
}

func (Base) CanPlaceAt(w World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return true
}

func (Base) CanUpdateAt(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction) bool {
	return false
}

func (Base) Placed(w World, pos worldstate.BlockPos, block *catalog.Block, stateID, oldStateID uint16, notify bool) {
}

func (Base) PlayerPlaced(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction, player *Player) {
}

func (Base) Broken(w World, pos worldstate.BlockPos, block *catalog.Block, state catalog.BlockState, player *Player) {
}

func (Base) NormalUse(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player) ActionResult {
	return Continue
}

func (Base) UseWithItem(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player, itemID int32) ActionResult {
	return Continue
}

func (Base) OnEntityCollision(w World, pos worldstate.BlockPos, block *catalog.Block, entityID int64) {
}

func (Base) OnNeighborUpdate(w World, pos worldstate.BlockPos, block *catalog.Block, sourcePos worldstate.BlockPos, notify bool) {
}

func (Base) GetStateForNeighborUpdate(w World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	return stateID
}

func (Base) OnScheduledTick(w World, pos worldstate.BlockPos, block *catalog.Block) {}
func (Base) RandomTick(w World, pos worldstate.BlockPos, block *catalog.Block)      {}

func (Base) OnStateReplaced(w World, pos worldstate.BlockPos, block *catalog.Block, oldStateID uint16, moved bool) {
}

func (Base) EmitsRedstonePower(block *catalog.Block, stateID uint16) bool { return false }

func (Base) GetWeakRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	return 0
}

func (Base) GetStrongRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	return 0
}

func (Base) GetComparatorOutput(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16) int32 {
	return 0
}

func (Base) OnSyncedBlockEvent(w World, pos worldstate.BlockPos, block *catalog.Block, eventType, data uint8) bool {
	return false
}

func (Base) Explode(w World, pos worldstate.BlockPos, block *catalog.Block) {}

func (Base) Prepare(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, flags worldstate.BlockFlags) {
}
