package move

import (
	"math"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// MineThroughEdges generates edges that break whichever of the target's
// body/head blocks are currently non-passable and non-liquid, then step
// into the cleared space. Infinite per-block cost (no tool in the hotbar
// can break it) rejects the edge outright.
func MineThroughEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState, inv botapi.Inventory, coster MiningCoster) []Edge {
	var edges []Edge
	if inv == nil || coster == nil {
		return edges
	}
	for _, d := range horizontalDirections {
		target := pos.Add(d[0], 0, d[1])
		if !w.IsStandable(target.Down(1)) {
			continue
		}
		toBreak := blocksToBreak(w, target)
		if len(toBreak) == 0 {
			continue
		}
		total, ok := totalBreakCost(w, inv, coster, toBreak)
		if !ok {
			continue
		}
		next := state
		next.Sprinting = false
		edges = append(edges, Edge{
			Kind:      KindMineThrough,
			Target:    target,
			Cost:      total,
			Execute:   mineExecute(target, toBreak),
			IsReached: exactReach(target),
			NextState: next,
		})
	}
	return edges
}

// MineDownEdges generates the "mine straight down" edge: break the
// block directly below pos and drop into it, provided the block below
// that is solid enough to stand on. This is the vertical counterpart to
// MineThroughEdges, needed for shafts and descending through a floor.
func MineDownEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState, inv botapi.Inventory, coster MiningCoster) []Edge {
	if inv == nil || coster == nil {
		return nil
	}
	target := pos.Down(1)
	if w.IsPassable(target) || w.IsLiquid(target) || w.IsProtected(target) {
		return nil
	}
	if !w.IsStandable(target.Down(1)) {
		return nil
	}
	total, ok := totalBreakCost(w, inv, coster, []world.BlockPos{target})
	if !ok {
		return nil
	}
	next := state
	next.Sprinting = false
	return []Edge{{
		Kind:      KindMineThrough,
		Target:    target,
		Cost:      total + costs.FallNBlocksCost[1],
		Execute:   mineExecute(target, []world.BlockPos{target}),
		IsReached: exactReach(target),
		NextState: next,
	}}
}

// blocksToBreak returns the body/head blocks at target that must be
// broken to pass through, or nil if the edge is impossible: either
// already clear, or blocked by a protected block that must never be
// mined regardless of allow_mining.
func blocksToBreak(w *world.CachedWorld, target world.BlockPos) []world.BlockPos {
	var out []world.BlockPos
	for _, p := range [...]world.BlockPos{target, target.Up(1)} {
		if w.IsPassable(p) {
			continue
		}
		if w.IsLiquid(p) {
			continue
		}
		if w.IsProtected(p) {
			return nil
		}
		out = append(out, p)
	}
	return out
}

func totalBreakCost(w *world.CachedWorld, inv botapi.Inventory, coster MiningCoster, blocks []world.BlockPos) (float64, bool) {
	total := 0.0
	for _, p := range blocks {
		state := w.BlockStateAt(p)
		tool := inv.BestTool(state)
		if tool.PercentagePerTick <= 0 {
			return 0, false
		}
		cost := coster.CostFor(state)
		if math.IsInf(cost, 1) {
			return 0, false
		}
		total += cost
		if w.IsFallingBlock(p.Up(1)) {
			total += costs.BlockBreakAdditionalPenalty
		}
	}
	return total, true
}

func mineExecute(target world.BlockPos, toBreak []world.BlockPos) func(ExecuteCtx) {
	return func(ctx ExecuteCtx) {
		for _, p := range toBreak {
			ctx.Executor.LookAt(botapi.Vec3{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5, Z: float64(p.Z) + 0.5})
			ctx.Executor.StartBreak(p)
			ctx.Executor.ContinueBreak()
			ctx.Executor.StopBreak()
		}
		ctx.Executor.LookAt(botapi.Vec3{X: float64(target.X) + 0.5, Y: float64(target.Y), Z: float64(target.Z) + 0.5})
		ctx.Executor.Walk(botapi.DirectionForward)
	}
}
