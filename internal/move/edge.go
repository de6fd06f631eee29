// Package move is the move catalogue: for a given position it enumerates
// the legal outgoing graph edges the planner can expand, following the
// generator-per-move-kind structure used by the reference navigator's
// neighbours/groundNeighbours/flyingNeighbours split, but with each
// generator returning priced, executable Edge values instead of bare
// neighbour positions.
package move

import (
	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/water"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// NodeState is the small piece of path-dependent state that travels
// alongside a node's position through the search: whether the previous
// edge was a sprint (for the sprint start-up penalty) and the swimming
// state (for air-supply accounting). The A* package folds a quantised
// form of Swim into its node key so a bounded number of distinct
// air-supply states can be explored per position, rather than either
// ignoring air history entirely or letting the state space blow up.
type NodeState struct {
	Sprinting bool
	Swim      water.SwimmingState
}

// ExecuteCtx bundles what an edge's Execute closure needs to drive the
// avatar for one edge: the action sink and the edge's own target so
// Execute doesn't need to close over plan-local state.
type ExecuteCtx struct {
	Executor botapi.Executor
	Target   world.BlockPos
}

// Kind tags the move that produced an edge. Each Edge also carries its own
// Execute closure, so executing an edge does not dispatch on Kind.
type Kind int

const (
	KindWalk Kind = iota
	KindSprint
	KindWalkOff
	KindFall
	KindJump
	KindParkour
	KindMineThrough
	KindWaterEntry
	KindWaterExit
	KindWaterTraverse
	KindWaterAscend
	KindWaterDescend
)

// Edge is one outgoing graph edge: a target position, its tick cost, and
// enough information to both drive and verify its own execution.
type Edge struct {
	Kind   Kind
	Target world.BlockPos
	Cost   float64
	// Execute drives the avatar toward Target using ctx.Executor. It is
	// called repeatedly by the executor loop until IsReached is true or
	// the edge's tick budget (plus slack) is exceeded.
	Execute func(ctx ExecuteCtx)
	// IsReached reports whether pos satisfies this edge's target,
	// following the spec's is_reached(current_position, target) contract.
	IsReached func(pos world.BlockPos) bool
	// NextState is the NodeState a search node reaches by taking this
	// edge, derived from the state it left with.
	NextState NodeState
}

// exactReach is the IsReached used by every ground move: the avatar's
// feet position must equal the target exactly.
func exactReach(target world.BlockPos) func(world.BlockPos) bool {
	return func(pos world.BlockPos) bool { return pos == target }
}
