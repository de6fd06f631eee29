package move

import (
	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// JumpEdges generates the "ascend one block" edges: a forward step that
// also rises one block, requiring head clearance at the source.
func JumpEdges(w *world.CachedWorld, pos world.BlockPos, state NodeState) []Edge {
	var edges []Edge
	if !w.IsPassable(pos.Up(2)) {
		return edges
	}
	for _, d := range horizontalDirections {
		if isDiagonal(d[0], d[1]) {
			continue
		}
		target := pos.Add(d[0], 1, d[1])
		if !w.IsPassable(target) || !w.IsPassable(target.Up(1)) || !w.IsStandable(target.Down(1)) {
			continue
		}
		next := state
		next.Sprinting = false
		edges = append(edges, Edge{
			Kind:      KindJump,
			Target:    target,
			Cost:      costs.JumpOneBlockCost + costs.JumpPenalty,
			Execute:   jumpExecute(target),
			IsReached: exactReach(target),
			NextState: next,
		})
	}
	return edges
}

func jumpExecute(target world.BlockPos) func(ExecuteCtx) {
	return func(ctx ExecuteCtx) {
		ctx.Executor.LookAt(botapi.Vec3{X: float64(target.X) + 0.5, Y: float64(target.Y), Z: float64(target.Z) + 0.5})
		ctx.Executor.Jump()
		ctx.Executor.Walk(botapi.DirectionForward)
	}
}
