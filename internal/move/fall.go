package move

import (
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// FallEdges generates falls of 2..MaxSafeFallBlocks blocks in each
// horizontal direction (a 1-block drop is handled by WalkOffEdges). Falls
// beyond MaxSafeFallBlocks deal damage and are rejected here; a straight-down
// fall onto a deep water landing is produced separately by WaterEdges'
// deepWaterFallEdges, since water landings take no fall damage regardless
// of distance.
func FallEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	for _, d := range horizontalDirections {
		for n := int32(2); n <= costs.MaxSafeFallBlocks; n++ {
			target := pos.Add(d[0], -n, d[1])
			if !clearFallColumn(w, pos, d[0], d[1], n) {
				break
			}
			if !w.IsPassable(target.Up(1)) || !w.IsStandable(target.Down(1)) {
				continue
			}
			next := state
			next.Sprinting = false
			edges = append(edges, Edge{
				Kind:      KindFall,
				Target:    target,
				Cost:      costs.WalkOffBlockCost + costs.FallNBlocksCost[n],
				Execute:   walkExecute(target),
				IsReached: exactReach(target),
				NextState: next,
			})
		}
	}
	return edges
}

// clearFallColumn reports whether every block between pos and the
// n-block-lower target (exclusive of the landing block itself) is
// passable, i.e. nothing blocks the fall.
func clearFallColumn(w *world.CachedWorld, pos world.BlockPos, dx, dz, n int32) bool {
	for i := int32(1); i < n; i++ {
		p := pos.Add(dx, -i, dz)
		if !w.IsPassable(p) {
			return false
		}
	}
	return true
}
