// Package water implements the air-aware water traversal model: water
// classification, lava-adjacency safety checks, and the swimming state
// that tracks air supply across a sequence of submerged moves. This is
// the canonical model (azalea's pathfinder/moves/water.rs); the simpler
// legacy model in the reference implementation's pathfinder/water.rs was
// not ported — see DESIGN.md's open-question log.
package water

import "github.com/kestrelbot/pathkeeper/internal/world"

// Classification is the kind of water occupying a position, used to pick
// the correct traversal cost and safety rule.
type Classification int

const (
	NotWater Classification = iota
	StillWater
	FlowingWater
	Waterlogged
	// Dangerous marks water adjacent to lava: flowing obsidian/cobblestone
	// generators and similar hazards where the planner should avoid
	// entering at all rather than merely pricing it higher.
	Dangerous
)

// Classify inspects pos and reports its water classification.
func Classify(w *world.CachedWorld, pos world.BlockPos) Classification {
	switch {
	case w.IsWaterlogged(pos):
		return Waterlogged
	case w.IsWater(pos):
		if !IsSafe(w, pos) {
			return Dangerous
		}
		if w.WaterLevel(pos) == 0 {
			return StillWater
		}
		return FlowingWater
	default:
		return NotWater
	}
}

// IsNavigable reports whether pos can be entered as a swimming move
// target: it must be water (or waterlogged) and not lava-adjacent.
func IsNavigable(w *world.CachedWorld, pos world.BlockPos) bool {
	if !w.IsWater(pos) && !w.IsWaterlogged(pos) {
		return false
	}
	return IsSafe(w, pos)
}

// IsSafe reports whether pos is not lava-adjacent: lava touching any of
// the six face neighbours (including directly above and below) can ignite or instantly
// kill, so the planner treats such water as impassable rather than
// merely costly.
func IsSafe(w *world.CachedWorld, pos world.BlockPos) bool {
	neighbours := [...]world.BlockPos{
		pos.Add(1, 0, 0), pos.Add(-1, 0, 0),
		pos.Add(0, 0, 1), pos.Add(0, 0, -1),
		pos.Add(0, 1, 0), pos.Add(0, -1, 0),
	}
	for _, n := range neighbours {
		if w.IsLava(n) {
			return false
		}
	}
	return true
}
