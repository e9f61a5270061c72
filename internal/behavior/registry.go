package behavior

import (
	"sync"

	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// Registry maps "minecraft:<name>" registry keys to behaviors. It is
// built once at startup and is immutable thereafter (spec.md §5:
// "behavior registry is built once and thereafter immutable").
// *Registry satisfies worldstate.Dispatcher.
type Registry struct {
	mu  sync.RWMutex
	def Behavior
	by  map[string]Behavior
}

// NewRegistry returns an empty registry; lookups against it before any
// Register call behave as if every block used the default Base
// behavior.
func NewRegistry() *Registry {
	return &Registry{def: Base{}, by: make(map[string]Behavior)}
}

// Register binds behavior to every registry key it reports via Names.
// Registration is startup-only (spec.md §6): calling it after the
// registry is in use is not safe for concurrent readers and is not
// supported.
func (r *Registry) Register(b Behavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range b.Names() {
		r.by[name] = b
	}
}

func (r *Registry) lookup(block *catalog.Block) Behavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.by[block.Key]; ok {
		return b
	}
	return r.def
}

func (r *Registry) OnPlace(w World, pos worldstate.BlockPos, block *catalog.Block, ctx PlacementContext) uint16 {
	return r.lookup(block).OnPlace(w, pos, block, ctx)
}

func (r *Registry) CanPlaceAt(w World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return r.lookup(block).CanPlaceAt(w, pos, block, face)
}

func (r *Registry) CanUpdateAt(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction) bool {
	return r.lookup(block).CanUpdateAt(w, pos, block, stateID, face)
}

func (r *Registry) Placed(w *worldstate.World, pos worldstate.BlockPos, block *catalog.Block, stateID, oldStateID uint16) {
	r.lookup(block).Placed(w, pos, block, stateID, oldStateID, true)
}

func (r *Registry) PlayerPlaced(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction, player *Player) {
	r.lookup(block).PlayerPlaced(w, pos, block, stateID, face, player)
}

func (r *Registry) Broken(w World, pos worldstate.BlockPos, block *catalog.Block, state catalog.BlockState, player *Player) {
	r.lookup(block).Broken(w, pos, block, state, player)
}

func (r *Registry) NormalUse(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player) ActionResult {
	return r.lookup(block).NormalUse(w, pos, block, player)
}

func (r *Registry) UseWithItem(w World, pos worldstate.BlockPos, block *catalog.Block, player *Player, itemID int32) ActionResult {
	return r.lookup(block).UseWithItem(w, pos, block, player, itemID)
}

func (r *Registry) OnEntityCollision(w World, pos worldstate.BlockPos, block *catalog.Block, entityID int64) {
	r.lookup(block).OnEntityCollision(w, pos, block, entityID)
}

// OnNeighborUpdate satisfies worldstate.Dispatcher.
func (r *Registry) OnNeighborUpdate(w *worldstate.World, pos worldstate.BlockPos, block *catalog.Block, sourcePos worldstate.BlockPos, notify bool) {
	r.lookup(block).OnNeighborUpdate(w, pos, block, sourcePos, notify)
}

// GetStateForNeighborUpdate satisfies worldstate.Dispatcher. block is
// the block that owns pos (the position whose state may be revised);
// its own behavior is looked up and asked to recompute its state given
// a change observed from dir at neighborPos, matching
// original_source/pumpkin/src/block/registry.rs's
// get_state_for_neighbor_update (dispatches via the `block` it was
// given, not via the neighbor's block).
func (r *Registry) GetStateForNeighborUpdate(w *worldstate.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	return r.lookup(block).GetStateForNeighborUpdate(w, block, stateID, pos, dir, neighborPos, neighborStateID)
}

func (r *Registry) OnScheduledTick(w World, pos worldstate.BlockPos, block *catalog.Block) {
	r.lookup(block).OnScheduledTick(w, pos, block)
}

func (r *Registry) RandomTick(w World, pos worldstate.BlockPos, block *catalog.Block) {
	r.lookup(block).RandomTick(w, pos, block)
}

// OnStateReplaced satisfies worldstate.Dispatcher.
func (r *Registry) OnStateReplaced(w *worldstate.World, pos worldstate.BlockPos, block *catalog.Block, oldStateID uint16, moved bool) {
	r.lookup(block).OnStateReplaced(w, pos, block, oldStateID, moved)
}

func (r *Registry) EmitsRedstonePower(block *catalog.Block, stateID uint16) bool {
	return r.lookup(block).EmitsRedstonePower(block, stateID)
}

func (r *Registry) GetWeakRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	return r.lookup(block).GetWeakRedstonePower(w, pos, block, stateID, dir)
}

func (r *Registry) GetStrongRedstonePower(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	return r.lookup(block).GetStrongRedstonePower(w, pos, block, stateID, dir)
}

func (r *Registry) GetComparatorOutput(w World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16) int32 {
	return r.lookup(block).GetComparatorOutput(w, pos, block, stateID)
}

func (r *Registry) OnSyncedBlockEvent(w World, pos worldstate.BlockPos, block *catalog.Block, eventType, data uint8) bool {
	return r.lookup(block).OnSyncedBlockEvent(w, pos, block, eventType, data)
}

func (r *Registry) Explode(w World, pos worldstate.BlockPos, block *catalog.Block) {
	r.lookup(block).Explode(w, pos, block)
}

// Prepare satisfies worldstate.Dispatcher.
func (r *Registry) Prepare(w *worldstate.World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, flags worldstate.BlockFlags) {
	r.lookup(block).Prepare(w, pos, block, stateID, flags)
}
