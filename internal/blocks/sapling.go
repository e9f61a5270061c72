package blocks

import (
	"math/rand"
	"sync"

	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

// growthRNG is used only to pick whether a random_tick grows the
// sapling; nothing here depends on exact reproducibility across runs.
// growthRNGMu guards it since *rand.Rand isn't safe for concurrent use
// and cmd/blockserver's random-tick pass can call RandomTick from more
// than one goroutine once a driver runs multiple worlds concurrently.
var (
	growthRNG   = rand.New(rand.NewSource(1))
	growthRNGMu sync.Mutex
)

func nextGrowthRoll(n int) int {
	growthRNGMu.Lock()
	defer growthRNGMu.Unlock()
	return growthRNG.Intn(n)
}

// saplingGrowthChance is 1-in-7, vanilla's oak sapling random_tick growth
// odds.
const saplingGrowthChance = 7

// Sapling is a supplemented feature (original_source's generic growth
// stage progression, not itself kept verbatim in original_source/ but
// implied by oak_sapling's sapling_stage property in blocks.json):
// random_tick has a 1-in-7 chance to advance sapling_stage, using the
// shared PropertyGroup codec instead of a bespoke bit twiddle.
type Sapling struct {
	behavior.Base
	cat   *catalog.Catalog
	block *catalog.Block
}

func NewSapling(cat *catalog.Catalog) *Sapling {
	block, _ := cat.BlockFromRegistryKey("minecraft:oak_sapling")
	return &Sapling{cat: cat, block: block}
}

func (s *Sapling) Names() []string { return []string{"minecraft:oak_sapling"} }

func (s *Sapling) RandomTick(w behavior.World, pos worldstate.BlockPos, block *catalog.Block) {
	if nextGrowthRoll(saplingGrowthChance) != 0 {
		return
	}
	group := s.cat.GroupFor(block)
	stateID := w.GetBlockStateID(pos)
	values := group.FromStateID(stateID, block)
	if values[0] >= block.Properties[0].VariantCount()-1 {
		return
	}
	values[0]++
	w.SetBlockState(pos, group.ToStateID(block, values), worldstate.DefaultFlags)
}
