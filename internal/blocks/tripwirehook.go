package blocks

import (
	"math/rand"
	"sync"

	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/sound"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// tripwireScanLimit mirrors the source's 1..42 scan range: a tripwire
// circuit longer than 41 blocks from its hook never finds its partner.
const tripwireScanLimit = 42

// detachPitchRNG picks the detach-click pitch wobble; detachPitchRNGMu
// guards it for the same reason sapling.go's growthRNGMu does (*rand.Rand
// shared across goroutines isn't safe on its own).
var (
	detachPitchRNG   = rand.New(rand.NewSource(2))
	detachPitchRNGMu sync.Mutex
)

func nextDetachPitch() float32 {
	detachPitchRNGMu.Lock()
	defer detachPitchRNGMu.Unlock()
	return detachPitchRNG.Float32()
}

// TripwireHook is the redstone line-circuit endpoint
// (original_source/pumpkin/src/block/blocks/redstone/tripwire_hook.rs).
// Placing, breaking, or scheduled-ticking either end of a tripwire
// circuit re-scans the whole line via update, which recomputes every
// intermediate wire's attached flag and both hooks' powered/attached
// state.
type TripwireHook struct {
	behavior.Base
	hookBlock *catalog.Block
	wireBlock *catalog.Block
	air       *catalog.Block
	hookGroup *catalog.PropertyGroup
	wireGroup *catalog.PropertyGroup
}

func NewTripwireHook(cat *catalog.Catalog) *TripwireHook {
	hook, _ := cat.BlockFromRegistryKey("minecraft:tripwire_hook")
	wire, _ := cat.BlockFromRegistryKey("minecraft:tripwire")
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	return &TripwireHook{
		hookBlock: hook,
		wireBlock: wire,
		air:       air,
		hookGroup: cat.GroupFor(hook),
		wireGroup: cat.GroupFor(wire),
	}
}

func (h *TripwireHook) Names() []string { return []string{"minecraft:tripwire_hook"} }

// canPlaceAt requires a horizontal face with a solid side, facing back
// toward the hook, on the block the hook is mounted against.
func (h *TripwireHook) canPlaceAt(w behavior.World, pos worldstate.BlockPos, face worldstate.Direction) bool {
	if !face.IsHorizontal() {
		return false
	}
	_, state := w.GetBlockState(pos.Offset(face))
	return state.IsSideSolid(face.Opposite().Index())
}

func (h *TripwireHook) CanPlaceAt(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, face worldstate.Direction) bool {
	return h.canPlaceAt(w, pos, face)
}

func (h *TripwireHook) OnPlace(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, ctx behavior.PlacementContext) uint16 {
	if h.canPlaceAt(w, pos, ctx.Face) {
		props := TripwireHookProps{Facing: ctx.Face.Opposite()}
		return props.toStateID(h.hookGroup, block)
	}
	return block.DefaultStateID
}

func (h *TripwireHook) PlayerPlaced(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, face worldstate.Direction, player *behavior.Player) {
	h.update(w, pos, stateID, false, false, -1, 0)
}

func (h *TripwireHook) GetStateForNeighborUpdate(w behavior.World, block *catalog.Block, stateID uint16, pos worldstate.BlockPos, dir worldstate.Direction, neighborPos worldstate.BlockPos, neighborStateID uint16) uint16 {
	if dir.IsHorizontal() {
		props := tripwireHookFromStateID(h.hookGroup, block, stateID)
		if dir.Opposite() == props.Facing && !h.canPlaceAt(w, pos, dir) {
			return h.air.DefaultStateID
		}
	}
	return stateID
}

func (h *TripwireHook) OnScheduledTick(w behavior.World, pos worldstate.BlockPos, block *catalog.Block) {
	stateID := w.GetBlockStateID(pos)
	h.update(w, pos, stateID, false, true, -1, 0)
}

// OnStateReplaced is dispatched with block set to the block that used to
// occupy pos (this core's OnStateReplaced convention, see
// worldstate.World.SetBlockState); by the time it runs the new state is
// already written, so reading pos back gives the replacement. When that
// replacement is still a tripwire_hook, this was just a flag update from
// update() itself, not a real removal, and there is nothing to tear down.
func (h *TripwireHook) OnStateReplaced(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, oldStateID uint16, moved bool) {
	if moved {
		return
	}
	if current := w.GetBlock(pos); current != nil && current.Key == block.Key {
		return
	}
	props := tripwireHookFromStateID(h.hookGroup, block, oldStateID)
	if props.Powered || props.Attached {
		h.update(w, pos, oldStateID, true, false, -1, 0)
	}
	if props.Powered {
		w.UpdateNeighbor(pos, pos)
		w.UpdateNeighbor(pos.Offset(props.Facing.Opposite()), pos)
	}
}

func (h *TripwireHook) EmitsRedstonePower(block *catalog.Block, stateID uint16) bool { return true }

func (h *TripwireHook) GetWeakRedstonePower(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	if tripwireHookFromStateID(h.hookGroup, block, stateID).Powered {
		return 15
	}
	return 0
}

func (h *TripwireHook) GetStrongRedstonePower(w behavior.World, pos worldstate.BlockPos, block *catalog.Block, stateID uint16, dir worldstate.Direction) int32 {
	props := tripwireHookFromStateID(h.hookGroup, block, stateID)
	if props.Powered && dir.IsHorizontal() && dir == props.Facing {
		return 15
	}
	return 0
}

// update rescans the circuit starting at startPos in the hook's facing
// direction, recomputing both hooks' powered/attached flags and every
// intermediate wire's attached flag, then emits the matching sound
// (original_source's TripwireHookBlock::update). rawWireIndex/rawWireState
// let a wire calling this mid-update (raw_wire_index >= 0) supply its
// own about-to-be-written state before it has actually been written to
// the world yet; pass -1/0 when not called from that path.
func (h *TripwireHook) update(w behavior.World, startPos worldstate.BlockPos, startStateID uint16, skipStateUpdate, notifyNeighbors bool, rawWireIndex int, rawWireState uint16) {
	startProps := tripwireHookFromStateID(h.hookGroup, h.hookBlock, startStateID)
	canAttach := !skipStateUpdate
	wireAttached := false
	j := 0
	wireProps := make([]*TripwireProps, tripwireScanLimit)

	for k := 1; k < tripwireScanLimit; k++ {
		currentPos := startPos.Add(
			startProps.Facing.Offset().X*int32(k),
			startProps.Facing.Offset().Y*int32(k),
			startProps.Facing.Offset().Z*int32(k),
		)
		currentBlock := w.GetBlock(currentPos)
		if currentBlock != nil && currentBlock.Key == h.hookBlock.Key {
			stateID := w.GetBlockStateID(currentPos)
			currentHookProps := tripwireHookFromStateID(h.hookGroup, h.hookBlock, stateID)
			if currentHookProps.Facing == startProps.Facing.Opposite() {
				j = k
			}
			break
		}
		isWire := currentBlock != nil && currentBlock.Key == h.wireBlock.Key
		if isWire || k == rawWireIndex {
			roStateID := w.GetBlockStateID(currentPos)
			stateID := roStateID
			if k == rawWireIndex {
				stateID = rawWireState
			}
			currentWireProps := tripwireFromStateID(h.wireGroup, h.wireBlock, stateID)
			wireAttached = wireAttached || (!currentWireProps.Disarmed && currentWireProps.Powered)
			props := currentWireProps
			wireProps[k] = &props
			if k == rawWireIndex {
				w.ScheduleBlockTick(startPos, h.hookBlock.ID, 10, worldstate.Normal)
				canAttach = canAttach && !currentWireProps.Disarmed
			}
		} else {
			wireProps[k] = nil
			canAttach = false
		}
	}

	futureAttached := canAttach && j > 1
	futurePowered := wireAttached && futureAttached

	if j > 0 {
		endPos := startPos.Add(
			startProps.Facing.Offset().X*int32(j),
			startProps.Facing.Offset().Y*int32(j),
			startProps.Facing.Offset().Z*int32(j),
		)
		endProps := TripwireHookProps{Facing: startProps.Facing.Opposite(), Attached: futureAttached, Powered: futurePowered}
		w.SetBlockState(endPos, endProps.toStateID(h.hookGroup, h.hookBlock), worldstate.DefaultFlags)
		updateNeighborsOnAxis(w, endPos, endProps.Facing)
		playTripwireSound(w, endPos, futureAttached, futurePowered, startProps.Attached, startProps.Powered)
	}

	playTripwireSound(w, startPos, futureAttached, futurePowered, startProps.Attached, startProps.Powered)

	if !skipStateUpdate {
		newStartProps := TripwireHookProps{Facing: startProps.Facing, Attached: futureAttached, Powered: futurePowered}
		w.SetBlockState(startPos, newStartProps.toStateID(h.hookGroup, h.hookBlock), worldstate.DefaultFlags)
		if notifyNeighbors {
			updateNeighborsOnAxis(w, startPos, startProps.Facing)
		}
	}

	if startProps.Attached != futureAttached {
		for l := 1; l < j; l++ {
			wirePos := startPos.Add(
				startProps.Facing.Offset().X*int32(l),
				startProps.Facing.Offset().Y*int32(l),
				startProps.Facing.Offset().Z*int32(l),
			)
			if props := wireProps[l]; props != nil {
				next := *props
				next.Attached = futureAttached
				w.SetBlockState(wirePos, next.toStateID(h.wireGroup, h.wireBlock), worldstate.DefaultFlags)
			}
		}
	}
}

// playTripwireSound picks one of the four tripwire sounds from the
// before/after attached+powered flags, matching the source's four
// mutually-exclusive branches exactly (note they are not simple
// edge-triggers: "on && !off" fires even if attached state is unchanged).
func playTripwireSound(w behavior.World, pos worldstate.BlockPos, attached, on, detached, off bool) {
	switch {
	case on && !off:
		w.PlaySoundRaw(pos, uint16(sound.BlockTripwireClickOn), uint8(sound.Blocks), 0.4, 0.6)
	case !on && off:
		w.PlaySoundRaw(pos, uint16(sound.BlockTripwireClickOff), uint8(sound.Blocks), 0.4, 0.5)
	case attached && !detached:
		w.PlaySoundRaw(pos, uint16(sound.BlockTripwireAttach), uint8(sound.Blocks), 0.4, 0.7)
	case !attached && detached:
		pitch := float32(1.2) / (nextDetachPitch()*0.2 + 0.9)
		w.PlaySoundRaw(pos, uint16(sound.BlockTripwireDetach), uint8(sound.Blocks), 0.4, pitch)
	}
}

// updateNeighborsOnAxis notifies pos itself, then every neighbor of the
// block behind pos (pos offset by dir's opposite: the block a hook facing
// dir is mounted on), following original_source's update_neighbors_on_axis.
func updateNeighborsOnAxis(w behavior.World, pos worldstate.BlockPos, dir worldstate.Direction) {
	w.UpdateNeighbor(pos, pos)
	behind := pos.Offset(dir.Opposite())
	block := w.GetBlock(behind)
	w.UpdateNeighbors(behind, block, worldstate.DefaultFlags)
}
