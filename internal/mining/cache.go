// Package mining implements the mining planner (C5): ore-location
// scanning backed by C1, vein clustering, goal construction, blacklist
// management, and the block-break cost cache the move catalogue prices
// mine-through edges against.
package mining

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// defaultCacheSize bounds the number of distinct BlockStates whose break
// cost is cached; far larger than any real registry's block-state count
// ever needs inspecting in one session, so eviction is effectively never
// hit in practice, but the bound keeps memory use predictable.
const defaultCacheSize = 4096

// MiningCache prices breaking a BlockState given the currently equipped
// inventory, and memoises the result per state. This is the Go
// equivalent of the reference implementation's interior-mutable
// single-threaded cache: a dedicated mutable object
// passed around explicitly instead of relying on unsafe aliasing.
// It implements move.MiningCoster's CostFor method so the move catalogue
// can price mine-through edges without depending on this package.
type MiningCache struct {
	inv   botapi.Inventory
	costs *lru.Cache[world.BlockState, float64]
}

// NewMiningCache returns a cache that looks up tools via inv.
func NewMiningCache(inv botapi.Inventory) *MiningCache {
	c, err := lru.New[world.BlockState, float64](defaultCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// defaultCacheSize never is.
		panic(err)
	}
	return &MiningCache{inv: inv, costs: c}
}

// CostFor returns the tick cost of breaking a block in state, or
// +Inf if no tool in the hotbar can break it.
func (c *MiningCache) CostFor(state world.BlockState) float64 {
	if cached, ok := c.costs.Get(state); ok {
		return cached
	}
	tool := c.inv.BestTool(state)
	var cost float64
	if tool.PercentagePerTick <= 0 {
		cost = math.Inf(1)
	} else {
		cost = 1/tool.PercentagePerTick + costs.BlockBreakAdditionalPenalty
	}
	c.costs.Add(state, cost)
	return cost
}

// SequenceCost prices breaking states in order, adding a tool-switch
// penalty whenever the best tool changes between consecutive blocks.
func (c *MiningCache) SequenceCost(states []world.BlockState) float64 {
	total := 0.0
	haveLast := false
	lastIdx := 0
	for _, s := range states {
		total += c.CostFor(s)
		tool := c.inv.BestTool(s)
		if haveLast && tool.Index != lastIdx {
			total += 1.0
		}
		lastIdx = tool.Index
		haveLast = true
	}
	return total
}

// Invalidate clears the cache, needed after the equipped tool set
// changes (a new pickaxe picked up, a tool broken) since cached costs
// are only valid for the inventory state they were computed against.
func (c *MiningCache) Invalidate() {
	c.costs.Purge()
}
