package move

import (
	"math"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// horizontalDirections are the 4 cardinal and 4 diagonal neighbour
// offsets at equal y, in a fixed order for reproducible expansion.
var horizontalDirections = [...][2]int32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func isDiagonal(dx, dz int32) bool { return dx != 0 && dz != 0 }

// canStandAt reports whether an avatar can occupy pos: pos and pos+1 are
// passable (body and head clearance), and pos-1 is standable (footing).
func canStandAt(w *world.CachedWorld, pos world.BlockPos) bool {
	return w.IsPassable(pos) && w.IsPassable(pos.Up(1)) && w.IsStandable(pos.Down(1))
}

// WalkAndSprintEdges generates the 8 horizontal walk edges and their
// sprint counterparts for pos.
func WalkAndSprintEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	for _, d := range horizontalDirections {
		target := pos.Add(d[0], 0, d[1])
		if !canStandAt(w, target) {
			continue
		}
		mult := 1.0
		if isDiagonal(d[0], d[1]) {
			mult = math.Sqrt2
		}

		walkState := state
		walkState.Sprinting = false
		edges = append(edges, Edge{
			Kind:      KindWalk,
			Target:    target,
			Cost:      costs.WalkOneBlockCost * mult,
			Execute:   walkExecute(target),
			IsReached: exactReach(target),
			NextState: walkState,
		})

		sprintCost := costs.SprintOneBlockCost * mult
		if !state.Sprinting {
			sprintCost += costs.SprintStartupPenalty
		}
		sprintState := state
		sprintState.Sprinting = true
		edges = append(edges, Edge{
			Kind:      KindSprint,
			Target:    target,
			Cost:      sprintCost,
			Execute:   walkExecute(target),
			IsReached: exactReach(target),
			NextState: sprintState,
		})
	}
	return edges
}

// WalkOffEdges generates the "step down one block" edges, one per
// horizontal direction, each priced as a walk step plus a one-block fall.
func WalkOffEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	for _, d := range horizontalDirections {
		target := pos.Add(d[0], -1, d[1])
		if !w.IsPassable(target) || !w.IsPassable(target.Up(1)) || !w.IsStandable(target.Down(1)) {
			continue
		}
		// Skips a zero offset at the source column; horizontalDirections
		// holds no zero offset, so this check never skips an edge.
		if w.IsStandable(pos.Down(1)) && d[0] == 0 && d[1] == 0 {
			continue
		}
		next := state
		next.Sprinting = false
		edges = append(edges, Edge{
			Kind:      KindWalkOff,
			Target:    target,
			Cost:      costs.WalkOffBlockCost + costs.FallNBlocksCost[1],
			Execute:   walkExecute(target),
			IsReached: exactReach(target),
			NextState: next,
		})
	}
	return edges
}

func walkExecute(target world.BlockPos) func(ExecuteCtx) {
	return func(ctx ExecuteCtx) {
		ctx.Executor.LookAt(botapi.Vec3{X: float64(target.X) + 0.5, Y: float64(target.Y), Z: float64(target.Z) + 0.5})
		ctx.Executor.Walk(botapi.DirectionForward)
	}
}
