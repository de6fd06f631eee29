package move

import (
	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// MiningCoster prices breaking a block, given the currently equipped
// inventory. Implemented by the mining package's MiningCache; declared
// here (rather than imported from there) so the move catalogue depends
// on the capability it needs, not on the mining package itself.
type MiningCoster interface {
	CostFor(block world.BlockState) float64
}

// Config controls which generators the catalogue runs.
type Config struct {
	AllowMining bool
}

// Generate returns every legal outgoing edge from pos given state, in the
// fixed generator order the spec requires for reproducibility: walk,
// sprint, walk-off, fall, jump, parkour, mine-through, water.
func Generate(w *world.CachedWorld, pos world.BlockPos, state NodeState, inv botapi.Inventory, coster MiningCoster, cfg Config) []Edge {
	var edges []Edge
	edges = append(edges, WalkAndSprintEdges(w, pos, state)...)
	edges = append(edges, WalkOffEdges(w, pos, state)...)
	edges = append(edges, FallEdges(w, pos, state)...)
	edges = append(edges, JumpEdges(w, pos, state)...)
	edges = append(edges, ParkourEdges(w, pos, state)...)
	if cfg.AllowMining {
		edges = append(edges, MineThroughEdges(w, pos, state, inv, coster)...)
		edges = append(edges, MineDownEdges(w, pos, state, inv, coster)...)
	}
	edges = append(edges, WaterEdges(w, pos, state)...)
	return edges
}
