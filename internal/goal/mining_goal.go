package goal

import "github.com/kestrelbot/pathkeeper/internal/world"

// SingleBlock is satisfied by being within reach of a single target block,
// optionally biased toward a preferred Y level.
type SingleBlock struct {
	Target world.BlockPos
	// PreferY, if non-nil, adds a vertical bias to the heuristic so the
	// planner favours approaching from a specific level.
	PreferY *int32
}

func (g SingleBlock) Heuristic(pos world.BlockPos) float64 {
	h := pos.DistanceSquared(g.Target)
	if g.PreferY != nil {
		dy := pos.Y - *g.PreferY
		if dy < 0 {
			dy = -dy
		}
		h += 2 * float64(dy)
	}
	return h
}

func (g SingleBlock) Success(pos world.BlockPos) bool {
	return pos.Distance(g.Target) <= ReachDistance
}

// MultipleBlocks is satisfied by being within reach of any of Targets.
// When AllowInternal is false, standing on one of the targets itself does
// not count as success (the avatar must approach from outside the set).
type MultipleBlocks struct {
	Targets       []world.BlockPos
	AllowInternal bool
}

func (g MultipleBlocks) Heuristic(pos world.BlockPos) float64 {
	best := -1.0
	for _, t := range g.Targets {
		d := pos.DistanceSquared(t)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func (g MultipleBlocks) Success(pos world.BlockPos) bool {
	if !g.AllowInternal {
		for _, t := range g.Targets {
			if pos == t {
				return false
			}
		}
	}
	for _, t := range g.Targets {
		if pos.Distance(t) <= ReachDistance {
			return true
		}
	}
	return false
}

// OreVein is satisfied once at least three of Blocks lie within MaxReach
// of pos, reflecting that a clustered vein can often be mined from a
// single standing position without a full re-path per block.
type OreVein struct {
	Blocks   []world.BlockPos
	Center   world.BlockPos
	MaxReach float64
}

// NewOreVein computes the centroid of blocks and returns an OreVein goal.
func NewOreVein(blocks []world.BlockPos, maxReach float64) OreVein {
	return OreVein{Blocks: blocks, Center: centroid(blocks), MaxReach: maxReach}
}

func centroid(blocks []world.BlockPos) world.BlockPos {
	if len(blocks) == 0 {
		return world.BlockPos{}
	}
	var sx, sy, sz int64
	for _, b := range blocks {
		sx += int64(b.X)
		sy += int64(b.Y)
		sz += int64(b.Z)
	}
	n := int64(len(blocks))
	return world.BlockPos{X: int32(sx / n), Y: int32(sy / n), Z: int32(sz / n)}
}

func (g OreVein) Heuristic(pos world.BlockPos) float64 {
	return pos.DistanceSquared(g.Center)
}

func (g OreVein) Success(pos world.BlockPos) bool {
	count := 0
	for _, b := range g.Blocks {
		if pos.Distance(b) <= g.MaxReach {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// Direction3 is a unit axis direction used by StripMine to lay out its
// shaft.
type Direction3 struct {
	DX, DY, DZ int32
}

// StripMine expands into a deterministic list of positions forming a
// mining shaft along Direction, Length blocks long, with a centered
// Width x Height cross-section. Success is reaching the entry position;
// the expanded position list is what the mining planner feeds to the
// scanner/executor as a deterministic dig plan rather than a reactive
// search target.
type StripMine struct {
	Start     world.BlockPos
	Direction Direction3
	Length    int32
	Height    int32
	Width     int32
}

// Positions returns the full deterministic list of block positions the
// strip mine occupies, entry position first.
func (g StripMine) Positions() []world.BlockPos {
	perp := perpendicular(g.Direction)
	var out []world.BlockPos
	halfW := g.Width / 2
	for step := int32(0); step < g.Length; step++ {
		base := g.Start.Add(g.Direction.DX*step, g.Direction.DY*step, g.Direction.DZ*step)
		for h := int32(0); h < g.Height; h++ {
			for w := -halfW; w < g.Width-halfW; w++ {
				out = append(out, base.Add(perp.DX*w, h, perp.DZ*w))
			}
		}
	}
	return out
}

func perpendicular(d Direction3) Direction3 {
	// Rotate the horizontal component 90 degrees; strip mines run
	// horizontally so DY is ignored for the perpendicular axis.
	return Direction3{DX: -d.DZ, DY: 0, DZ: d.DX}
}

func (g StripMine) Heuristic(pos world.BlockPos) float64 {
	return pos.Distance(g.Start)
}

func (g StripMine) Success(pos world.BlockPos) bool {
	return pos == g.Start
}

// WeightedGoal pairs a mining sub-goal with its priority weight.
type WeightedGoal struct {
	Goal   Goal
	Weight float64
}

// PrioritisedMining is a weighted disjunction of mining goals: it succeeds
// when any sub-goal succeeds, and its heuristic favours whichever
// sub-goal currently offers the lowest weighted cost.
type PrioritisedMining struct {
	Goals []WeightedGoal
}

func (g PrioritisedMining) Heuristic(pos world.BlockPos) float64 {
	best := -1.0
	for _, wg := range g.Goals {
		h := wg.Weight * wg.Goal.Heuristic(pos)
		if best < 0 || h < best {
			best = h
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func (g PrioritisedMining) Success(pos world.BlockPos) bool {
	for _, wg := range g.Goals {
		if wg.Goal.Success(pos) {
			return true
		}
	}
	return false
}
