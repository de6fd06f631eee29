// Package goal implements the Goal polymorphism the A* planner searches
// against: a tagged set of concrete goal kinds sharing a common interface,
// per spec.md §3's "Goal. Polymorphic over the capability set".
package goal

import "github.com/kestrelbot/pathkeeper/internal/world"

// Goal is satisfied by every concrete goal kind the planner can search
// for: a simple "go to this position" goal, and the mining goal family in
// mining_goal.go.
type Goal interface {
	// Heuristic estimates how far pos is from the goal as a block distance
	// (squared, for several mining goals), not in ticks. It need not be
	// admissible; the planner multiplies it by HeuristicMult.
	Heuristic(pos world.BlockPos) float64
	// Success reports whether pos satisfies the goal.
	Success(pos world.BlockPos) bool
}

// ReachDistance is the avatar's interaction radius: a block within this
// many blocks of the avatar's feet position can be broken or placed.
// spec.md §9 open question (c) leaves this ambiguous between sqrt(20) and
// 4.5; this module settles on 4.5 and applies it everywhere reach is
// checked.
const ReachDistance = 4.5

// BlockPosGoal is satisfied by standing exactly on target.
type BlockPosGoal struct {
	Target world.BlockPos
}

func (g BlockPosGoal) Heuristic(pos world.BlockPos) float64 {
	return pos.Distance(g.Target)
}

func (g BlockPosGoal) Success(pos world.BlockPos) bool {
	return pos == g.Target
}
