package move

import (
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// parkourGaps are the horizontal jump distances the catalogue tries: the
// landing is gap blocks from the launch position, with gap-1 blocks of
// open air between them. Gaps of 1 to 3 open blocks are covered; a gap of
// 4 open blocks is not jumped.
var parkourGaps = [...]int32{2, 3, 4}

// ParkourEdges generates equal-height and descending jumps landing 2, 3,
// and 4 blocks away in the 4 cardinal directions. Cost grows with gap length;
// the exact coefficient is an implementation choice the spec leaves
// open, documented alongside the rest of the cost model.
func ParkourEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	if !w.IsStandable(pos.Down(1)) {
		return edges
	}
	for _, d := range horizontalDirections {
		if isDiagonal(d[0], d[1]) {
			continue
		}
		for _, gap := range parkourGaps {
			if e, ok := flatParkourEdge(w, pos, d, gap, state); ok {
				edges = append(edges, e)
			}
			if e, ok := descendingParkourEdge(w, pos, d, gap, state); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

func arcClear(w *world.CachedWorld, pos world.BlockPos, dx, dz, gap int32) bool {
	for i := int32(1); i < gap; i++ {
		p := pos.Add(dx*i, 0, dz*i)
		if !w.IsPassable(p) || !w.IsPassable(p.Up(1)) {
			return false
		}
	}
	return true
}

func flatParkourEdge(w *world.CachedWorld, pos world.BlockPos, d [2]int32, gap int32, state NodeState) (Edge, bool) {
	target := pos.Add(d[0]*gap, 0, d[1]*gap)
	if !canStandAt(w, target) || !arcClear(w, pos, d[0], d[1], gap) {
		return Edge{}, false
	}
	next := state
	next.Sprinting = false
	cost := costs.JumpOneBlockCost + costs.JumpPenalty + float64(gap-2)*costs.WalkOneBlockCost
	return Edge{
		Kind:      KindParkour,
		Target:    target,
		Cost:      cost,
		Execute:   jumpExecute(target),
		IsReached: exactReach(target),
		NextState: next,
	}, true
}

func descendingParkourEdge(w *world.CachedWorld, pos world.BlockPos, d [2]int32, gap int32, state NodeState) (Edge, bool) {
	target := pos.Add(d[0]*gap, -1, d[1]*gap)
	if !canStandAt(w, target) || !arcClear(w, pos, d[0], d[1], gap) {
		return Edge{}, false
	}
	next := state
	next.Sprinting = false
	cost := costs.JumpOneBlockCost + float64(gap-2)*costs.WalkOneBlockCost
	return Edge{
		Kind:      KindParkour,
		Target:    target,
		Cost:      cost,
		Execute:   jumpExecute(target),
		IsReached: exactReach(target),
		NextState: next,
	}, true
}
