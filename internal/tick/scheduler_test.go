package tick

import (
	"math/rand"
	"testing"

	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

func alwaysCurrent(blockID uint16) CurrentBlockID {
	return func(worldstate.BlockPos) uint16 { return blockID }
}

// S6: two scheduled ticks at the same due tick, Normal then High — High
// must fire first. They sit at two positions because Schedule dedupes
// per (position, block).
func TestDrainOrdersByPriorityAtSameDueTick(t *testing.T) {
	s := NewScheduler()
	posA := worldstate.BlockPos{X: 1}
	posB := worldstate.BlockPos{X: 2}

	s.Schedule(posA, 7, 0, 5, Normal)
	s.Schedule(posB, 7, 0, 5, High)

	var order []worldstate.BlockPos
	s.Drain(5, alwaysCurrent(7), func(pos worldstate.BlockPos, blockID uint16) {
		order = append(order, pos)
	})

	if len(order) != 2 || order[0] != posB || order[1] != posA {
		t.Fatalf("drain order = %v, want [High(posB), Normal(posA)]", order)
	}
}

// Invariant 5: draining at tick T yields entries sorted by
// (due_tick, priority, insertion_seq).
func TestDrainOrdersByDueTickThenPriorityThenInsertion(t *testing.T) {
	s := NewScheduler()
	type expect struct {
		pos worldstate.BlockPos
	}
	p1 := worldstate.BlockPos{X: 1}
	p2 := worldstate.BlockPos{X: 2}
	p3 := worldstate.BlockPos{X: 3}
	p4 := worldstate.BlockPos{X: 4}

	s.Schedule(p1, 1, 0, 2, Normal)       // due=2
	s.Schedule(p2, 1, 0, 1, Normal)       // due=1, inserted 2nd
	s.Schedule(p3, 1, 0, 1, High)         // due=1, High, inserted 3rd
	s.Schedule(p4, 1, 0, 1, High)         // due=1, High, inserted 4th (after p3)

	var order []worldstate.BlockPos
	s.Drain(2, alwaysCurrent(1), func(pos worldstate.BlockPos, blockID uint16) {
		order = append(order, pos)
	})

	want := []worldstate.BlockPos{p3, p4, p2, p1}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestDrainDropsStaleEntriesSilently(t *testing.T) {
	s := NewScheduler()
	pos := worldstate.BlockPos{X: 9}
	s.Schedule(pos, 5, 0, 1, Normal)

	called := false
	// block at pos is no longer id 5 by the time the tick fires.
	s.Drain(1, alwaysCurrent(99), func(worldstate.BlockPos, uint16) {
		called = true
	})

	if called {
		t.Error("stale scheduled tick should be dropped without invoking fn")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after drain", s.Len())
	}
}

func TestScheduleIsIdempotentPerPositionAndBlock(t *testing.T) {
	s := NewScheduler()
	pos := worldstate.BlockPos{X: 1}

	s.Schedule(pos, 5, 0, 10, Normal)
	s.Schedule(pos, 5, 0, 1, High) // reschedule: should replace, not add

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (idempotent reschedule)", s.Len())
	}

	calls := 0
	s.Drain(1, alwaysCurrent(5), func(worldstate.BlockPos, uint16) { calls++ })
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (rescheduled entry should fire at the new due tick)", calls)
	}
}

func TestDrainDoesNotFireEntriesDueLater(t *testing.T) {
	s := NewScheduler()
	s.Schedule(worldstate.BlockPos{X: 1}, 5, 0, 10, Normal)

	calls := 0
	s.Drain(5, alwaysCurrent(5), func(worldstate.BlockPos, uint16) { calls++ })
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 (due_tick=10 should not fire at current=5)", calls)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (entry should remain pending)", s.Len())
	}
}

func TestDriveRandomTicksStaysWithinSectionBounds(t *testing.T) {
	sections := []LoadedSection{{Chunk: worldstate.ChunkPos{X: 2, Z: -3}, BaseY: 32}}
	rng := rand.New(rand.NewSource(1))
	count := 0
	DriveRandomTicks(sections, rng, alwaysCurrent(0), func(pos worldstate.BlockPos, blockID uint16) {
		count++
		if pos.X < 32 || pos.X >= 48 {
			t.Errorf("x=%d out of chunk bounds", pos.X)
		}
		if pos.Z < -48 || pos.Z >= -32 {
			t.Errorf("z=%d out of chunk bounds", pos.Z)
		}
		if pos.Y < 32 || pos.Y >= 48 {
			t.Errorf("y=%d out of section bounds", pos.Y)
		}
	})
	if count != RandomTicksPerSection {
		t.Errorf("count = %d, want %d", count, RandomTicksPerSection)
	}
}
