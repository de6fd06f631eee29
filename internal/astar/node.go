// Package astar is the A* planner (C4): heuristic search over the move
// catalogue's edges, producing a path with a best-effort partial-path
// policy when the goal cannot be reached within budget. The open-set
// priority queue follows the same container/heap pattern as the
// reference navigator's blockQueue.
package astar

import (
	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/move"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// node is one A* search node. g is in ticks; h is the goal's
// distance-based heuristic. f is computed on the fly as
// g + h*HeuristicMult so the heap ordering never drifts out of sync with
// a stored, possibly-stale value.
type node struct {
	pos   world.BlockPos
	state move.NodeState
	g     float64
	h     float64

	parent *node
	edge   *move.Edge

	seq   int
	index int
}

func (n *node) f() float64 {
	return n.g + n.h*costs.HeuristicMult
}

// nodeKey identifies a node for closed-set membership. Position alone
// would be the strict reading of the spec, but an avatar mid-swim with
// low air must be allowed to revisit a position it already passed
// through with more air, so the key folds in a coarse, 4-bucket air
// quantisation. Non-submerged states all collapse to bucket -1, matching
// the spec's "closed-set keyed by pos" for every dry node.
type nodeKey struct {
	pos       world.BlockPos
	airBucket int8
}

func keyOf(n *node) nodeKey {
	bucket := int8(-1)
	if n.state.Swim.EstimatedAirTicks < costs.MaxAirTicks {
		bucket = int8(n.state.Swim.EstimatedAirTicks / (costs.MaxAirTicks/4 + 1))
	}
	return nodeKey{pos: n.pos, airBucket: bucket}
}

// openSet is a binary-heap priority queue ordered by f, tie-broken by
// smaller h, then earlier discovery (seq).
type openSet []*node

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	fi, fj := s[i].f(), s[j].f()
	if fi != fj {
		return fi < fj
	}
	if s[i].h != s[j].h {
		return s[i].h < s[j].h
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*s = old[:n-1]
	return item
}
