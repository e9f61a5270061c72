package tick

import (
	"math/rand"

	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// RandomTicksPerSection is the fixed number of uniformly random
// positions sampled per loaded chunk section per tick (spec.md §4.4).
const RandomTicksPerSection = 3

const sectionHeight = 16

// RandomTickFunc is invoked for each sampled position with the block id
// currently occupying it; callers opt in per-behavior by checking their
// own registry before doing any work.
type RandomTickFunc func(pos worldstate.BlockPos, blockID uint16)

// DriveRandomTicks samples RandomTicksPerSection positions uniformly at
// random within each of the given loaded chunk sections (a section is a
// 16x16x16 cell identified by its chunk column and base Y), resolves the
// block id currently occupying each via currentBlockID, and invokes fn.
//
// rng is accepted explicitly rather than using the package-level
// math/rand source so callers can seed deterministically in tests.
func DriveRandomTicks(sections []LoadedSection, rng *rand.Rand, currentBlockID CurrentBlockID, fn RandomTickFunc) {
	for _, sec := range sections {
		for i := 0; i < RandomTicksPerSection; i++ {
			pos := worldstate.BlockPos{
				X: sec.Chunk.X*16 + int32(rng.Intn(16)),
				Y: sec.BaseY + int32(rng.Intn(sectionHeight)),
				Z: sec.Chunk.Z*16 + int32(rng.Intn(16)),
			}
			fn(pos, currentBlockID(pos))
		}
	}
}

// LoadedSection identifies one loaded 16x16x16 chunk section.
type LoadedSection struct {
	Chunk worldstate.ChunkPos
	BaseY int32
}
