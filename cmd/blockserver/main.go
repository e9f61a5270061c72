// Command blockserver is the headless driver for this core: it builds a
// catalog, a behavior registry, and a worldstate.World, then runs a
// fixed-interval tick loop the way pkg/server's teacher loop drove a
// ticker with time.NewTicker + select (pkg/server/server.go's keep-alive
// and entity-pickup loops), rebuilt as a cobra command tree the way
// orbas1-Synnergy/synnergy-network/cmd/cli packages build one subcommand
// per concern.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pumpkin-go/blockcore/internal/behavior"
	"github.com/pumpkin-go/blockcore/internal/blocks"
	"github.com/pumpkin-go/blockcore/internal/catalog"
	"github.com/pumpkin-go/blockcore/internal/config"
	"github.com/pumpkin-go/blockcore/internal/logging"
	"github.com/pumpkin-go/blockcore/internal/tag"
	"github.com/pumpkin-go/blockcore/internal/tick"
	"github.com/pumpkin-go/blockcore/internal/worldstate"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "blockserver",
		Short: "Headless block-behavior dispatch core",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to server.yaml (defaults to ./server.yaml)")
	root.AddCommand(runCmd(), tickCmd(), inspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// coreSet bundles the pieces every subcommand needs, built the same way
// regardless of which one runs.
type coreSet struct {
	cfg   config.Config
	cat   *catalog.Catalog
	tags  *tag.Set
	reg   *behavior.Registry
	world *worldstate.World
	sched *tick.Scheduler
}

func buildCore() (*coreSet, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	tags := tag.Default()

	reg := behavior.NewRegistry()
	reg.Register(blocks.NewFarmland(cat))
	reg.Register(blocks.NewFire(cat))
	reg.Register(blocks.NewSoulFire(cat, tags))
	reg.Register(blocks.NewBush(cat, tags))
	reg.Register(blocks.NewSapling(cat))
	reg.Register(blocks.NewTripwireHook(cat))
	reg.Register(blocks.NewTripwire(cat))

	sched := tick.NewScheduler()
	world := worldstate.NewWorld(cat, reg, sched)
	sink := &packetLogSink{log: logging.New(cfg.Logging.Level)}
	world.Sounds = sink
	world.Updates = sink

	return &coreSet{cfg: cfg, cat: cat, tags: tags, reg: reg, world: world, sched: sched}, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the tick driver until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := buildCore()
			if err != nil {
				return err
			}
			log := logging.New(cs.cfg.Logging.Level)
			log.Infof("blockserver starting, tick interval %dms", cs.cfg.Server.TickIntervalMS)

			rng := rand.New(rand.NewSource(1))
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			ticker := time.NewTicker(time.Duration(cs.cfg.Server.TickIntervalMS) * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case sig := <-stop:
					log.Infof("shutting down (received signal: %v)", sig)
					return nil
				case <-ticker.C:
					driveTick(cs, rng)
				}
			}
		},
	}
}

func tickCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Advance the world by N ticks and exit (N defaults to 1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := buildCore()
			if err != nil {
				return err
			}
			log := logging.New(cs.cfg.Logging.Level)
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < count; i++ {
				driveTick(cs, rng)
			}
			log.Infof("advanced %d tick(s), current tick %d", count, cs.world.CurrentTick())
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of ticks to advance")
	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List every registered block's registry key and state-id range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := buildCore()
			if err != nil {
				return err
			}
			blocksList := append([]*catalog.Block(nil), cs.cat.Blocks()...)
			sort.Slice(blocksList, func(i, j int) bool { return blocksList[i].ID < blocksList[j].ID })
			for _, b := range blocksList {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5d %-32s states [%d,%d] default %d\n",
					b.ID, b.Key, b.FirstStateID, b.LastStateID, b.DefaultStateID)
			}
			return nil
		},
	}
}

// driveTick advances the world clock, drains any scheduled ticks due this
// tick, and runs the random-tick pass — the three per-tick phases spec.md
// §4.4/§9 requires run without interleaving.
func driveTick(cs *coreSet, rng *rand.Rand) {
	current := cs.world.AdvanceTick()

	cs.sched.Drain(current, func(pos worldstate.BlockPos) uint16 {
		return cs.world.GetBlockStateID(pos)
	}, func(pos worldstate.BlockPos, blockID uint16) {
		block, ok := cs.cat.BlockFromID(blockID)
		if !ok {
			return
		}
		cs.reg.OnScheduledTick(cs.world, pos, block)
	})

	tick.DriveRandomTicks(loadedSections(cs.world), rng, func(pos worldstate.BlockPos) uint16 {
		return cs.world.GetBlockStateID(pos)
	}, func(pos worldstate.BlockPos, blockID uint16) {
		block, ok := cs.cat.BlockFromID(blockID)
		if !ok {
			return
		}
		cs.reg.RandomTick(cs.world, pos, block)
	})
}

// loadedSections treats every loaded chunk column as a single section at
// BaseY 0: this headless core has no vertical chunk subdivisions, so one
// 16x16x16 sample volume per column is the closest equivalent to spec.md
// §4.4's per-section random-tick sampling.
func loadedSections(w *worldstate.World) []tick.LoadedSection {
	chunks := w.LoadedChunks()
	sections := make([]tick.LoadedSection, len(chunks))
	for i, cp := range chunks {
		sections[i] = tick.LoadedSection{Chunk: cp, BaseY: 0}
	}
	return sections
}
