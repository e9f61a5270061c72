package behavior

import (
	"testing"

	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

type stubWorld struct {
	states map[worldstate.BlockPos]uint16
}

func newStubWorld() *stubWorld {
	return &stubWorld{states: make(map[worldstate.BlockPos]uint16)}
}

func (s *stubWorld) GetBlockStateID(pos worldstate.BlockPos) uint16 { return s.states[pos] }
func (s *stubWorld) GetBlockState(pos worldstate.BlockPos) (*catalog.Block, catalog.BlockState) {
	return nil, catalog.BlockState{}
}
func (s *stubWorld) GetBlock(pos worldstate.BlockPos) *catalog.Block { return nil }
func (s *stubWorld) SetBlockState(pos worldstate.BlockPos, stateID uint16, flags worldstate.BlockFlags) {
	s.states[pos] = stateID
}
func (s *stubWorld) UpdateNeighbor(pos, sourcePos worldstate.BlockPos) {}
func (s *stubWorld) UpdateNeighbors(pos worldstate.BlockPos, block *catalog.Block, flags worldstate.BlockFlags) {
}
func (s *stubWorld) ReplaceWithStateForNeighborUpdate(pos worldstate.BlockPos, fromDir worldstate.Direction, flags worldstate.BlockFlags) {
}
func (s *stubWorld) ScheduleBlockTick(pos worldstate.BlockPos, blockID uint16, delay uint64, priority worldstate.Priority) {
}
func (s *stubWorld) PlaySoundRaw(pos worldstate.BlockPos, soundID uint16, category uint8, volume, pitch float32) {
}
func (s *stubWorld) DropStack(pos worldstate.BlockPos, itemID int32, count int32)  {}
func (s *stubWorld) DropLoot(pos worldstate.BlockPos, lootTable string)            {}

// countingBehavior overrides only OnScheduledTick and EmitsRedstonePower
// to verify embedding Base supplies every other hook's default.
type countingBehavior struct {
	Base
	names     []string
	tickCalls int
}

func (b *countingBehavior) Names() []string { return b.names }

func (b *countingBehavior) OnScheduledTick(w World, pos worldstate.BlockPos, block *catalog.Block) {
	b.tickCalls++
}

func (b *countingBehavior) EmitsRedstonePower(block *catalog.Block, stateID uint16) bool {
	return true
}

func testBlock(key string) *catalog.Block {
	return &catalog.Block{Key: key, DefaultStateID: 7}
}

func TestUnregisteredBlockUsesDefaultBehavior(t *testing.T) {
	r := NewRegistry()
	w := newStubWorld()
	block := testBlock("minecraft:stone")

	stateID := r.OnPlace(w, worldstate.BlockPos{}, block, PlacementContext{})
	if stateID != block.DefaultStateID {
		t.Errorf("default OnPlace = %d, want %d (default state)", stateID, block.DefaultStateID)
	}
	if !r.CanPlaceAt(w, worldstate.BlockPos{}, block, worldstate.Up) {
		t.Error("default CanPlaceAt should be true")
	}
	if r.EmitsRedstonePower(block, 0) {
		t.Error("default EmitsRedstonePower should be false")
	}
}

func TestRegisteredBehaviorOverridesDefault(t *testing.T) {
	r := NewRegistry()
	w := newStubWorld()
	behavior := &countingBehavior{names: []string{"minecraft:farmland"}}
	r.Register(behavior)

	farmland := testBlock("minecraft:farmland")
	stone := testBlock("minecraft:stone")

	r.OnScheduledTick(w, worldstate.BlockPos{}, farmland)
	r.OnScheduledTick(w, worldstate.BlockPos{}, stone) // should hit default, not the registered behavior

	if behavior.tickCalls != 1 {
		t.Errorf("tickCalls = %d, want 1 (only farmland should dispatch to the registered behavior)", behavior.tickCalls)
	}
	if !r.EmitsRedstonePower(farmland, 0) {
		t.Error("registered behavior's EmitsRedstonePower override should be used")
	}
	if r.EmitsRedstonePower(stone, 0) {
		t.Error("stone should still use the default EmitsRedstonePower")
	}
}

func TestRegisterBindsEveryName(t *testing.T) {
	r := NewRegistry()
	behavior := &countingBehavior{names: []string{"minecraft:fire", "minecraft:soul_fire"}}
	r.Register(behavior)

	if r.lookup(testBlock("minecraft:fire")) != Behavior(behavior) {
		t.Error("minecraft:fire should resolve to the registered behavior")
	}
	if r.lookup(testBlock("minecraft:soul_fire")) != Behavior(behavior) {
		t.Error("minecraft:soul_fire should resolve to the registered behavior")
	}
}

func TestDefaultUseHookContinues(t *testing.T) {
	r := NewRegistry()
	w := newStubWorld()
	block := testBlock("minecraft:stone")
	if got := r.NormalUse(w, worldstate.BlockPos{}, block, nil); got != Continue {
		t.Errorf("default NormalUse = %v, want Continue", got)
	}
	if got := r.UseWithItem(w, worldstate.BlockPos{}, block, nil, 1); got != Continue {
		t.Errorf("default UseWithItem = %v, want Continue", got)
	}
}
