package worldstate

import (
	"sync"
	"testing"

	"github.com/pumpkin-go/blockcore/internal/catalog"
)

// recordingDispatcher is a minimal Dispatcher that records calls instead
// of running real block behavior, enough to assert on dispatch order and
// invariant 6 (six-neighbor visit exactly once, canonical order).
type recordingDispatcher struct {
	mu        sync.Mutex
	neighbors []BlockPos
	placed    []BlockPos
	replaced  []BlockPos
}

func (r *recordingDispatcher) OnStateReplaced(w *World, pos BlockPos, oldBlock *catalog.Block, oldStateID uint16, moved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaced = append(r.replaced, pos)
}

func (r *recordingDispatcher) Placed(w *World, pos BlockPos, block *catalog.Block, stateID, oldStateID uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed = append(r.placed, pos)
}

// GetStateForNeighborUpdate mirrors Base's no-op default (return the
// block's own current state) rather than adopting the neighbor's state:
// this recorder exists to assert on traversal order and visit count, not
// to exercise state-rewrite cascades.
func (r *recordingDispatcher) GetStateForNeighborUpdate(w *World, block *catalog.Block, stateID uint16, pos BlockPos, dir Direction, neighborPos BlockPos, neighborStateID uint16) uint16 {
	return stateID
}

func (r *recordingDispatcher) OnNeighborUpdate(w *World, pos BlockPos, block *catalog.Block, sourcePos BlockPos, notify bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.neighbors = append(r.neighbors, pos)
}

func (r *recordingDispatcher) Prepare(w *World, pos BlockPos, block *catalog.Block, stateID uint16, flags BlockFlags) {}

func newTestWorld(t *testing.T, d Dispatcher) (*World, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.Load(catalog.DefaultBlocksJSON, catalog.DefaultPropertiesJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewWorld(cat, d, nil), cat
}

func TestGetBlockStateDefaultsToAir(t *testing.T) {
	w, cat := newTestWorld(t, nil)
	air, _ := cat.BlockFromRegistryKey("minecraft:air")
	block := w.GetBlock(BlockPos{1, 2, 3})
	if block.Key != air.Key {
		t.Errorf("unwritten cell = %s, want %s", block.Key, air.Key)
	}
}

func TestSetBlockStateDispatchesPlacedAndReplaced(t *testing.T) {
	rec := &recordingDispatcher{}
	w, cat := newTestWorld(t, rec)
	stone, _ := cat.BlockFromRegistryKey("minecraft:stone")
	dirt, _ := cat.BlockFromRegistryKey("minecraft:dirt")
	pos := BlockPos{0, 0, 0}

	w.SetBlockState(pos, stone.DefaultStateID, DefaultFlags)
	if len(rec.placed) != 1 || rec.placed[0] != pos {
		t.Fatalf("expected one placed call at %v, got %v", pos, rec.placed)
	}

	w.SetBlockState(pos, dirt.DefaultStateID, DefaultFlags)
	if len(rec.replaced) != 1 || rec.replaced[0] != pos {
		t.Fatalf("expected one on_state_replaced call at %v, got %v", pos, rec.replaced)
	}
	if len(rec.placed) != 2 {
		t.Fatalf("expected placed called again for dirt, got %d calls", len(rec.placed))
	}
}

func TestSetBlockStateNoOpWhenUnchanged(t *testing.T) {
	rec := &recordingDispatcher{}
	w, cat := newTestWorld(t, rec)
	stone, _ := cat.BlockFromRegistryKey("minecraft:stone")
	pos := BlockPos{5, 5, 5}

	w.SetBlockState(pos, stone.DefaultStateID, DefaultFlags)
	w.SetBlockState(pos, stone.DefaultStateID, DefaultFlags)

	if len(rec.placed) != 1 {
		t.Errorf("expected exactly one placed call for an unchanged write, got %d", len(rec.placed))
	}
}

// Invariant 6: a single set_block_state with NotifyNeighbors visits each
// of the six neighbors exactly once, in the canonical order.
func TestUpdateNeighborsVisitsEachNeighborOnceInCanonicalOrder(t *testing.T) {
	rec := &recordingDispatcher{}
	w, cat := newTestWorld(t, rec)
	stone, _ := cat.BlockFromRegistryKey("minecraft:stone")
	origin := BlockPos{10, 10, 10}

	w.SetBlockState(origin, stone.DefaultStateID, NotifyNeighbors)

	want := make([]BlockPos, 0, 6)
	for _, dir := range AbstractBlockUpdateOrder() {
		want = append(want, origin.Offset(dir))
	}

	if len(rec.neighbors) != 6 {
		t.Fatalf("expected 6 neighbor visits, got %d: %v", len(rec.neighbors), rec.neighbors)
	}
	for i, pos := range want {
		if rec.neighbors[i] != pos {
			t.Errorf("neighbor visit %d = %v, want %v (canonical order mismatch)", i, rec.neighbors[i], pos)
		}
	}

	seen := make(map[BlockPos]int)
	for _, pos := range rec.neighbors {
		seen[pos]++
	}
	for pos, n := range seen {
		if n != 1 {
			t.Errorf("neighbor %v visited %d times, want exactly 1", pos, n)
		}
	}
}

func TestDirectionOffsetAndOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: opposite of opposite should be identity", d)
		}
		off := d.Offset()
		backOff := d.Opposite().Offset()
		if off.X != -backOff.X || off.Y != -backOff.Y || off.Z != -backOff.Z {
			t.Errorf("%s: offset %+v and opposite offset %+v should cancel", d, off, backOff)
		}
	}
}

type countingDropSink struct {
	mu     sync.Mutex
	stacks int
	loots  int
}

func (c *countingDropSink) DropStack(pos BlockPos, itemID int32, count int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stacks++
}

func (c *countingDropSink) DropLoot(pos BlockPos, lootTable string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loots++
}

func TestDropLootSkipsEmptyLootTable(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	sink := &countingDropSink{}
	w.Drops = sink

	w.DropLoot(BlockPos{}, "")
	w.DropLoot(BlockPos{}, "minecraft:blocks/dirt")
	w.DropStack(BlockPos{}, -1, 1)
	w.DropStack(BlockPos{}, 3, 1)

	if sink.loots != 1 {
		t.Errorf("loots = %d, want 1 (empty loot table should be skipped)", sink.loots)
	}
	if sink.stacks != 1 {
		t.Errorf("stacks = %d, want 1 (negative item id should be skipped)", sink.stacks)
	}
}
