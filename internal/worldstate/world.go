// Package worldstate implements the world accessor (component C2): the
// chunk-granularity block-state store, neighbor-update propagation, and
// the sound/drop side channels a handful of block behaviors need.
//
// The package never imports internal/behavior: it declares the narrow
// Dispatcher interface it needs itself and accepts any implementation
// satisfying it (internal/behavior's Registry does, structurally). This
// mirrors the teacher's accept-interfaces style and keeps the dependency
// pointing one way, world -> behavior is inverted into behavior
// satisfies worldstate.
package worldstate

import (
	"sync"

	"github.com/pumpkin-go/blockcore/internal/catalog"
)

// maxNeighborRecursion bounds how deeply replace_with_state_for_neighbor_update
// may re-enter itself. The counter rises on entry and falls on return, so
// it limits nesting depth, not the total number of calls made in a tick.
const maxNeighborRecursion = 64

// Dispatcher is the subset of the behavior registry's hook-dispatch
// surface the world accessor needs to drive placement/break/neighbor
// side effects. internal/behavior.Registry satisfies this interface.
type Dispatcher interface {
	OnStateReplaced(w *World, pos BlockPos, oldBlock *catalog.Block, oldStateID uint16, moved bool)
	Placed(w *World, pos BlockPos, block *catalog.Block, stateID, oldStateID uint16)
	GetStateForNeighborUpdate(w *World, block *catalog.Block, stateID uint16, pos BlockPos, dir Direction, neighborPos BlockPos, neighborStateID uint16) uint16
	OnNeighborUpdate(w *World, pos BlockPos, block *catalog.Block, sourcePos BlockPos, notify bool)
	Prepare(w *World, pos BlockPos, block *catalog.Block, stateID uint16, flags BlockFlags)
}

// SoundSink receives play_sound_raw events. Nil is a valid, silent sink.
type SoundSink interface {
	PlaySound(pos BlockPos, soundID uint16, category uint8, volume, pitch float32)
}

// DropSink receives drop_stack/drop_loot events. Nil is a valid, silent sink.
type DropSink interface {
	DropStack(pos BlockPos, itemID int32, count int32)
	DropLoot(pos BlockPos, lootTable string)
}

// BlockUpdateSink receives the wire-relevant shape of every committed
// SetBlockState write (spec.md §6's block-update packet payload). Nil is
// a valid, silent sink.
type BlockUpdateSink interface {
	BlockUpdated(pos BlockPos, stateID uint16)
}

type chunkData struct {
	mu    sync.RWMutex
	cells map[BlockPos]uint16
}

// World is the chunk-granularity block-state store. The zero value is
// not usable; use NewWorld.
type World struct {
	Catalog  *catalog.Catalog
	Dispatch Dispatcher
	Sounds   SoundSink
	Drops    DropSink
	Updates  BlockUpdateSink
	Scheduler TickScheduler

	airStateID uint16

	chunksMu sync.RWMutex
	chunks   map[ChunkPos]*chunkData

	recursionMu sync.Mutex
	recursion   int

	tickMu      sync.Mutex
	currentTick uint64
}

// TickScheduler is the subset of internal/tick.Scheduler's API the world
// accessor needs to implement schedule_block_tick (spec.md §4.2/§4.4).
// *tick.Scheduler satisfies this structurally; worldstate never imports
// internal/tick to avoid a dependency cycle (tick imports worldstate for
// BlockPos/Priority).
type TickScheduler interface {
	Schedule(pos BlockPos, blockID uint16, currentTick, delay uint64, priority Priority)
}

// NewWorld creates an empty world (every cell reads as air) backed by
// cat, dispatching placement/break/neighbor side effects through d and
// scheduled ticks through sched (nil is valid: schedule_block_tick
// becomes a no-op).
func NewWorld(cat *catalog.Catalog, d Dispatcher, sched TickScheduler) *World {
	air, ok := cat.BlockFromRegistryKey("minecraft:air")
	var airID uint16
	if ok {
		airID = air.DefaultStateID
	}
	return &World{
		Catalog:    cat,
		Dispatch:   d,
		Scheduler:  sched,
		airStateID: airID,
		chunks:     make(map[ChunkPos]*chunkData),
	}
}

// CurrentTick returns the world's current game tick, advanced by
// AdvanceTick (normally called once per tick by the game loop driver).
func (w *World) CurrentTick() uint64 {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()
	return w.currentTick
}

// AdvanceTick increments and returns the world's current game tick.
func (w *World) AdvanceTick() uint64 {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()
	w.currentTick++
	return w.currentTick
}

// ScheduleBlockTick queues blockID at pos to fire on_scheduled_tick
// after delay game ticks at the given priority (spec.md §4.2's
// schedule_block_tick). A nil Scheduler makes this a no-op, which keeps
// World usable in tests that don't care about tick scheduling.
func (w *World) ScheduleBlockTick(pos BlockPos, blockID uint16, delay uint64, priority Priority) {
	if w.Scheduler == nil {
		return
	}
	w.Scheduler.Schedule(pos, blockID, w.CurrentTick(), delay, priority)
}

func (w *World) chunkFor(pos BlockPos, create bool) *chunkData {
	cp := pos.Chunk()
	w.chunksMu.RLock()
	c, ok := w.chunks[cp]
	w.chunksMu.RUnlock()
	if ok || !create {
		return c
	}
	w.chunksMu.Lock()
	defer w.chunksMu.Unlock()
	if c, ok = w.chunks[cp]; ok {
		return c
	}
	c = &chunkData{cells: make(map[BlockPos]uint16)}
	w.chunks[cp] = c
	return c
}

// GetBlockStateID returns the raw state-id at pos, defaulting to air for
// any cell never written.
func (w *World) GetBlockStateID(pos BlockPos) uint16 {
	c := w.chunkFor(pos, false)
	if c == nil {
		return w.airStateID
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id, ok := c.cells[pos]; ok {
		return id
	}
	return w.airStateID
}

// GetBlockState resolves pos to its owning block and concrete state.
func (w *World) GetBlockState(pos BlockPos) (*catalog.Block, catalog.BlockState) {
	block, state := w.Catalog.MustStateFromStateID(w.GetBlockStateID(pos))
	return block, state
}

// GetBlock returns just the owning block at pos.
func (w *World) GetBlock(pos BlockPos) *catalog.Block {
	block, _ := w.GetBlockState(pos)
	return block
}

// SetBlockState writes stateID at pos and triggers the old block's
// on_state_replaced (skipped when the old cell held air), the new block's
// placed, and, when flags has NotifyNeighbors, neighbor notification
// (spec.md §4.2).
func (w *World) SetBlockState(pos BlockPos, stateID uint16, flags BlockFlags) {
	c := w.chunkFor(pos, true)

	c.mu.Lock()
	oldStateID, hadOld := c.cells[pos]
	if !hadOld {
		oldStateID = w.airStateID
	}
	if oldStateID == stateID {
		c.mu.Unlock()
		return
	}
	c.cells[pos] = stateID
	c.mu.Unlock()

	if w.Updates != nil {
		w.Updates.BlockUpdated(pos, stateID)
	}

	var oldBlock *catalog.Block
	if w.Catalog != nil {
		oldBlock, _, _ = w.Catalog.StateFromStateID(oldStateID)
	}
	newBlock, _, _ := w.Catalog.StateFromStateID(stateID)

	if w.Dispatch == nil {
		return
	}
	if oldBlock != nil && oldStateID != w.airStateID {
		w.Dispatch.OnStateReplaced(w, pos, oldBlock, oldStateID, flags.Has(Moved))
	}
	if newBlock != nil {
		w.Dispatch.Placed(w, pos, newBlock, stateID, oldStateID)
		w.Dispatch.Prepare(w, pos, newBlock, stateID, flags)
	}
	if flags.Has(NotifyNeighbors) {
		w.UpdateNeighbors(pos, newBlock, flags)
	}
}

// UpdateNeighbor invokes on_neighbor_update for the block currently at
// pos, reporting sourcePos as the origin of the change.
func (w *World) UpdateNeighbor(pos, sourcePos BlockPos) {
	if w.Dispatch == nil {
		return
	}
	block := w.GetBlock(pos)
	if block == nil {
		return
	}
	w.Dispatch.OnNeighborUpdate(w, pos, block, sourcePos, true)
}

// UpdateNeighbors visits the six neighbors of pos in the stable abstract
// block update order (spec.md §4.4/§9), invoking
// replace_with_state_for_neighbor_update at each.
func (w *World) UpdateNeighbors(pos BlockPos, block *catalog.Block, flags BlockFlags) {
	for _, dir := range AbstractBlockUpdateOrder() {
		neighborPos := pos.Offset(dir)
		w.ReplaceWithStateForNeighborUpdate(neighborPos, dir.Opposite(), flags)
	}
}

// PostProcessState visits the six neighbors of pos in plain cardinal
// order (spec.md §4.2's post_process_state), asking each neighbor's
// behavior to recompute its own state for the change at pos without
// recursing into further neighbor propagation.
func (w *World) PostProcessState(pos BlockPos, block *catalog.Block, flags BlockFlags) {
	if w.Dispatch == nil {
		return
	}
	stateID := w.GetBlockStateID(pos)
	for _, dir := range AllDirections() {
		neighborPos := pos.Offset(dir)
		neighborBlock := w.GetBlock(neighborPos)
		if neighborBlock == nil {
			continue
		}
		neighborStateID := w.GetBlockStateID(neighborPos)
		newState := w.Dispatch.GetStateForNeighborUpdate(w, neighborBlock, neighborStateID, neighborPos, dir.Opposite(), pos, stateID)
		if newState != neighborStateID {
			w.SetBlockState(neighborPos, newState, flags&^NotifyNeighbors)
		}
	}
}

// ReplaceWithStateForNeighborUpdate reads the current state at pos,
// asks its behavior for a possibly-revised state-id given a change from
// fromDir, and writes it if different — recursively propagating further
// if flags requests NotifyNeighbors. Depth is bounded by a per-world
// re-entrancy counter (spec.md §5): exceeding it silently aborts the
// current chain instead of panicking, matching spec.md §7's "transient
// runtime error: log once, drop" class.
func (w *World) ReplaceWithStateForNeighborUpdate(pos BlockPos, fromDir Direction, flags BlockFlags) {
	w.recursionMu.Lock()
	if w.recursion >= maxNeighborRecursion {
		w.recursionMu.Unlock()
		return
	}
	w.recursion++
	w.recursionMu.Unlock()

	defer func() {
		w.recursionMu.Lock()
		w.recursion--
		w.recursionMu.Unlock()
	}()

	if w.Dispatch == nil {
		w.UpdateNeighbor(pos, pos.Offset(fromDir))
		return
	}

	block := w.GetBlock(pos)
	if block == nil {
		return
	}
	stateID := w.GetBlockStateID(pos)
	// fromDir is the direction from pos to the neighbor that changed
	// (vanilla's getStateForNeighborUpdate convention, matched by every
	// behavior in internal/blocks, e.g. Farmland checking dir ==
	// worldstate.Up for "the block above changed").
	sourcePos := pos.Offset(fromDir)
	neighborStateID := w.GetBlockStateID(sourcePos)
	newState := w.Dispatch.GetStateForNeighborUpdate(w, block, stateID, pos, fromDir, sourcePos, neighborStateID)
	if newState != stateID {
		w.SetBlockState(pos, newState, flags)
	}
	w.Dispatch.OnNeighborUpdate(w, pos, block, sourcePos, true)
}

// PlaySoundRaw forwards to the world's SoundSink, if one is attached.
func (w *World) PlaySoundRaw(pos BlockPos, soundID uint16, category uint8, volume, pitch float32) {
	if w.Sounds != nil {
		w.Sounds.PlaySound(pos, soundID, category, volume, pitch)
	}
}

// DropStack forwards to the world's DropSink, if one is attached.
func (w *World) DropStack(pos BlockPos, itemID int32, count int32) {
	if w.Drops != nil && itemID >= 0 && count > 0 {
		w.Drops.DropStack(pos, itemID, count)
	}
}

// DropLoot forwards to the world's DropSink, if one is attached and the
// block declares a non-empty loot table.
func (w *World) DropLoot(pos BlockPos, lootTable string) {
	if w.Drops != nil && lootTable != "" {
		w.Drops.DropLoot(pos, lootTable)
	}
}

// LoadedChunks returns every chunk column that currently has at least one
// written cell, for driving a random-tick pass over "loaded" chunks
// (spec.md §4.4: random ticks only ever sample loaded sections).
func (w *World) LoadedChunks() []ChunkPos {
	w.chunksMu.RLock()
	defer w.chunksMu.RUnlock()
	out := make([]ChunkPos, 0, len(w.chunks))
	for cp := range w.chunks {
		out = append(out, cp)
	}
	return out
}
