// Package tick implements the scheduled-tick and random-tick machinery
// (component C4): a priority queue ordered by (due_tick, priority,
// insertion_seq), deduped per (position, block), plus a random-tick
// driver over loaded chunk sections.
package tick

import (
	"container/heap"
	"sync"

	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// ScheduledTick is one pending (position, block) callback.
type ScheduledTick struct {
	Pos          worldstate.BlockPos
	BlockID      uint16
	DueTick      uint64
	Priority     Priority
	InsertionSeq uint64
}

type dedupKey struct {
	pos     worldstate.BlockPos
	blockID uint16
}

type tickItem struct {
	tick  ScheduledTick
	index int
}

// tickHeap orders by (due_tick, priority, insertion_seq), matching
// spec.md §8 invariant 5.
type tickHeap []*tickItem

func (h tickHeap) Len() int { return len(h) }

func (h tickHeap) Less(i, j int) bool {
	a, b := h[i].tick, h[j].tick
	if a.DueTick != b.DueTick {
		return a.DueTick < b.DueTick
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.InsertionSeq < b.InsertionSeq
}

func (h tickHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *tickHeap) Push(x any) {
	item := x.(*tickItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *tickHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Scheduler is a per-world priority queue of scheduled ticks. The zero
// value is not usable; use NewScheduler.
type Scheduler struct {
	mu    sync.Mutex
	heap  tickHeap
	seq   uint64
	byKey map[dedupKey]*tickItem
}

func NewScheduler() *Scheduler {
	return &Scheduler{byKey: make(map[dedupKey]*tickItem)}
}

// Schedule queues blockID at pos to fire at currentTick+delay with the
// given priority. Re-scheduling the same (pos, blockID) pair before it
// fires is idempotent: it replaces the pending entry's due tick and
// priority in place rather than creating a second entry (spec.md §4.4:
// "scheduled ticks deduped per (position, block)").
func (s *Scheduler) Schedule(pos worldstate.BlockPos, blockID uint16, currentTick, delay uint64, priority Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dedupKey{pos: pos, blockID: blockID}
	due := currentTick + delay
	if existing, ok := s.byKey[key]; ok {
		existing.tick.DueTick = due
		existing.tick.Priority = priority
		heap.Fix(&s.heap, existing.index)
		return
	}

	s.seq++
	item := &tickItem{tick: ScheduledTick{
		Pos:          pos,
		BlockID:      blockID,
		DueTick:      due,
		Priority:     priority,
		InsertionSeq: s.seq,
	}}
	s.byKey[key] = item
	heap.Push(&s.heap, item)
}

// CurrentBlockID answers "what block id currently occupies pos", used
// by Drain to detect stale entries.
type CurrentBlockID func(pos worldstate.BlockPos) uint16

// TickFunc is invoked for each non-stale entry drained.
type TickFunc func(pos worldstate.BlockPos, blockID uint16)

// Drain pops every entry with due_tick <= currentTick, in
// (due_tick, priority, insertion_seq) order, re-checking the block
// currently at pos via currentBlockID and invoking fn only if it still
// matches the scheduled block id; stale entries are dropped silently
// (spec.md §4.4: "scheduled ticks do not retry; a tick whose block has
// changed is considered obsolete").
func (s *Scheduler) Drain(currentTick uint64, currentBlockID CurrentBlockID, fn TickFunc) {
	for {
		s.mu.Lock()
		if s.heap.Len() == 0 || s.heap[0].tick.DueTick > currentTick {
			s.mu.Unlock()
			return
		}
		item := heap.Pop(&s.heap).(*tickItem)
		delete(s.byKey, dedupKey{pos: item.tick.Pos, blockID: item.tick.BlockID})
		s.mu.Unlock()

		if currentBlockID(item.tick.Pos) != item.tick.BlockID {
			continue
		}
		fn(item.tick.Pos, item.tick.BlockID)
	}
}

// Len reports the number of pending scheduled ticks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Len()
}
