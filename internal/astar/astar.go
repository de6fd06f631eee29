package astar

import (
	"container/heap"
	"context"
	"time"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/botlog"
	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/metrics"
	"github.com/kestrelbot/pathkeeper/internal/move"
	"github.com/kestrelbot/pathkeeper/internal/water"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// Config bundles the planner's per-call inputs that aren't the world,
// start, or goal: the search budget, mining permission, and the
// collaborators the move catalogue needs.
type Config struct {
	AllowMining  bool
	MinTimeout   time.Duration
	MaxTimeout   time.Duration
	MaxNodes     int
	Inventory    botapi.Inventory
	MiningCoster move.MiningCoster
}

// Result is a completed or best-effort plan.
type Result struct {
	Path    []world.BlockPos
	Edges   []move.Edge
	Partial bool
}

// Plan runs A* from start toward g over w, honouring cfg's timeouts and
// node budget. It returns ErrNoPathFound if the open set empties before
// MinTimeout without ever improving on the start's heuristic, and
// ErrInterrupted if ctx is cancelled first.
func Plan(ctx context.Context, w *world.CachedWorld, start world.BlockPos, g goal.Goal, cfg Config) (*Result, error) {
	startTime := time.Now()
	startH := g.Heuristic(start)

	open := &openSet{}
	heap.Init(open)

	startNode := &node{pos: start, state: move.NodeState{Swim: water.NewSwimmingState()}, g: 0, h: startH}
	heap.Push(open, startNode)

	closed := make(map[nodeKey]*node)
	best := startNode
	bestImprovedAt := startTime
	seq := 1
	expanded := 0

	mcfg := move.Config{AllowMining: cfg.AllowMining}

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ErrInterrupted
		default:
		}

		n := heap.Pop(open).(*node)
		key := keyOf(n)
		if _, ok := closed[key]; ok {
			continue
		}
		closed[key] = n
		expanded++
		metrics.PlannerNodesExpandedMeter.Mark(1)

		if g.Success(n.pos) {
			metrics.TimePlan(startTime)
			return buildResult(n, false), nil
		}

		if n.h < best.h {
			best = n
			bestImprovedAt = time.Now()
		}

		elapsed := time.Since(startTime)
		if elapsed >= cfg.MinTimeout {
			stalled := time.Since(bestImprovedAt) >= cfg.MinTimeout
			if elapsed >= cfg.MaxTimeout || stalled {
				break
			}
		}
		if cfg.MaxNodes > 0 && expanded >= cfg.MaxNodes {
			break
		}

		for _, e := range move.Generate(w, n.pos, n.state, cfg.Inventory, cfg.MiningCoster, mcfg) {
			if e.Cost <= 0 {
				continue
			}
			edge := e
			child := &node{
				pos:    edge.Target,
				state:  edge.NextState,
				g:      n.g + edge.Cost,
				h:      g.Heuristic(edge.Target),
				parent: n,
				edge:   &edge,
				seq:    seq,
			}
			seq++
			if _, ok := closed[keyOf(child)]; ok {
				continue
			}
			heap.Push(open, child)
		}
	}

	metrics.TimePlan(startTime)
	if best.h < startH {
		metrics.PlannerPartialPathMeter.Mark(1)
		botlog.Planner.Debug("astar: returning partial path", "expanded", expanded, "bestH", best.h, "startH", startH)
		return buildResult(best, true), nil
	}

	metrics.PlannerNoPathMeter.Mark(1)
	botlog.Planner.Debug("astar: no path found", "expanded", expanded)
	return nil, ErrNoPathFound
}

func buildResult(n *node, partial bool) *Result {
	var path []world.BlockPos
	var edges []move.Edge
	for cur := n; cur != nil; cur = cur.parent {
		path = append([]world.BlockPos{cur.pos}, path...)
		if cur.edge != nil {
			edges = append([]move.Edge{*cur.edge}, edges...)
		}
	}
	return &Result{Path: path, Edges: edges, Partial: partial}
}
