package move

import (
	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/water"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// surfaceBonusDistance and surfaceGuardDistance are the lookup radii the
// spec names for the ascend bonus (3 blocks) and descent guard (4
// blocks) respectively.
const (
	surfaceBonusDistance = 3
	surfaceGuardDistance = 4
)

// maxDeepWaterFallScan bounds how far straight down a deep fall onto
// water is allowed to scan for the water surface.
const maxDeepWaterFallScan = 32

func inWater(w *world.CachedWorld, pos world.BlockPos) bool {
	return w.IsWater(pos) || w.IsWaterlogged(pos)
}

// WaterEdges generates water entry, exit, horizontal traverse, ascend,
// and descend edges for pos, delegating classification and safety
// checks to the water package.
func WaterEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	if inWater(w, pos) {
		return submergedEdges(w, pos, state)
	}
	edges := waterEntryEdges(w, pos, state)
	edges = append(edges, deepWaterFallEdges(w, pos, state)...)
	return edges
}

// deepWaterFallEdges generates a straight-down fall landing in water from
// further than MaxSafeFallBlocks: a water landing takes no fall damage
// regardless of distance, so unlike FallEdges this doesn't reject the
// move once it passes the safe-fall cap. The column above the water
// surface must be clear and the water itself navigable.
func deepWaterFallEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	for i := int32(1); i <= costs.MaxSafeFallBlocks; i++ {
		if !w.IsPassable(pos.Down(i)) {
			return nil
		}
	}
	for n := costs.MaxSafeFallBlocks + 1; n <= maxDeepWaterFallScan; n++ {
		target := pos.Add(0, -int32(n), 0)
		if !w.IsPassable(target) {
			return nil
		}
		if !inWater(w, target) {
			continue
		}
		if !water.IsNavigable(w, target) {
			return nil
		}
		fresh := water.NewSwimmingState()
		next, penalty := fresh.Advance()
		ns := state
		ns.Sprinting = false
		ns.Swim = next
		return []Edge{{
			Kind:      KindWaterEntry,
			Target:    target,
			Cost:      costs.WaterEntryCost + costs.FallNBlocksCost[n] + penalty,
			Execute:   walkExecute(target),
			IsReached: exactReach(target),
			NextState: ns,
		}}
	}
	return nil
}

func waterEntryEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	candidates := make([]world.BlockPos, 0, len(horizontalDirections)+1)
	for _, d := range horizontalDirections {
		candidates = append(candidates, pos.Add(d[0], 0, d[1]))
	}
	candidates = append(candidates, pos.Down(1))

	for _, target := range candidates {
		if !water.IsNavigable(w, target) {
			continue
		}
		fresh := water.NewSwimmingState()
		next, penalty := fresh.Advance()
		ns := state
		ns.Sprinting = false
		ns.Swim = next
		edges = append(edges, Edge{
			Kind:      KindWaterEntry,
			Target:    target,
			Cost:      costs.WaterEntryCost + penalty,
			Execute:   walkExecute(target),
			IsReached: exactReach(target),
			NextState: ns,
		})
	}
	return edges
}

func submergedEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge

	for _, d := range horizontalDirections {
		target := pos.Add(d[0], 0, d[1])
		if inWater(w, target) {
			if !water.IsNavigable(w, target) {
				continue
			}
			flowing := w.WaterLevel(target) != 0
			_, hasAir := water.DistanceToAirColumn(w, target, surfaceBonusDistance)
			cost, next := state.Swim.TraverseCost(flowing, hasAir)
			ns := state
			ns.Sprinting = false
			ns.Swim = next
			edges = append(edges, Edge{
				Kind:      KindWaterTraverse,
				Target:    target,
				Cost:      cost,
				Execute:   walkExecute(target),
				IsReached: exactReach(target),
				NextState: ns,
			})
			continue
		}
		if canStandAt(w, target) {
			ns := state
			ns.Sprinting = false
			ns.Swim = state.Swim.Surface()
			edges = append(edges, Edge{
				Kind:      KindWaterExit,
				Target:    target,
				Cost:      costs.WaterExitCost,
				Execute:   walkExecute(target),
				IsReached: exactReach(target),
				NextState: ns,
			})
		}
	}

	if up := pos.Up(1); water.IsNavigable(w, up) {
		_, hasAir := water.DistanceToAirColumn(w, up, surfaceBonusDistance)
		cost, next := state.Swim.AscendCost(hasAir)
		ns := state
		ns.Sprinting = false
		ns.Swim = next
		edges = append(edges, Edge{
			Kind:      KindWaterAscend,
			Target:    up,
			Cost:      cost,
			Execute:   ascendExecute(up),
			IsReached: exactReach(up),
			NextState: ns,
		})
	} else if canStandAt(w, pos.Up(1)) {
		ns := state
		ns.Sprinting = false
		ns.Swim = state.Swim.Surface()
		edges = append(edges, Edge{
			Kind:      KindWaterExit,
			Target:    pos.Up(1),
			Cost:      costs.WaterExitCost,
			Execute:   ascendExecute(pos.Up(1)),
			IsReached: exactReach(pos.Up(1)),
			NextState: ns,
		})
	}

	if down := pos.Down(1); (w.IsWater(down) || w.IsWaterlogged(down)) && water.IsSafe(w, down) {
		lowAir := state.Swim.EstimatedAirTicks < int(0.33*float64(costs.MaxAirTicks))
		_, hasAirAbove := water.DistanceToAirColumn(w, pos, surfaceGuardDistance)
		cost, next := state.Swim.DescendCost(lowAir, !hasAirAbove)
		ns := state
		ns.Sprinting = false
		ns.Swim = next
		edges = append(edges, Edge{
			Kind:      KindWaterDescend,
			Target:    down,
			Cost:      cost,
			Execute:   walkExecute(down),
			IsReached: exactReach(down),
			NextState: ns,
		})
	}

	return edges
}

func ascendExecute(target world.BlockPos) func(ExecuteCtx) {
	return func(ctx ExecuteCtx) {
		ctx.Executor.LookAt(botapi.Vec3{X: float64(target.X) + 0.5, Y: float64(target.Y) + 0.5, Z: float64(target.Z) + 0.5})
		ctx.Executor.Jump()
	}
}
