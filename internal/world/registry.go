package world

import "sort"

// BlockState is an opaque, dense small-integer identifier for a block's
// full state (block type plus any state properties such as orientation or
// waterlogging). The host's block registry is the only component that
// knows what a given id actually means; the core only ever asks the
// Registry a handful of yes/no questions about it.
type BlockState uint32

// Registry answers classification questions about a BlockState. It is
// supplied by the host (the real Minecraft block registry) and consumed
// here as an opaque lookup, per spec's "block/registry data" boundary.
type Registry interface {
	// MinStateID and MaxStateID bound the full id space, used once to
	// precompute the water/lava contiguous ranges and the falling-block
	// sorted list.
	MinStateID() BlockState
	MaxStateID() BlockState

	IsAir(BlockState) bool
	IsPassable(BlockState) bool
	IsStandable(BlockState) bool
	IsWater(BlockState) bool
	IsLava(BlockState) bool
	IsFallingBlock(BlockState) bool
	IsWaterlogged(BlockState) bool
	// WaterLevel returns 0 for a source block and >0 for flowing water.
	// Only meaningful when IsWater(s) is true.
	WaterLevel(BlockState) int
	// IsProtected marks a block the mine-through generator must never
	// break regardless of allow_mining (TNT and similar hazards), so a
	// path that would require breaking it is never offered at all.
	IsProtected(BlockState) bool
}

// Provider resolves the block state at an absolute position. It is the
// thin seam to the host's chunk store (spec §6's BlockStateProvider).
type Provider interface {
	BlockStateAt(pos BlockPos) BlockState
}

// liquidRange precomputes a contiguous [low, high] id span for a liquid
// family so membership testing is a single comparison, per spec §4.1.
type liquidRange struct {
	low, high BlockState
	valid     bool
}

func (r liquidRange) contains(s BlockState) bool {
	return r.valid && s >= r.low && s <= r.high
}

// buildLiquidRange scans [min, max] once and returns the contiguous id span
// of states for which classify returns true. Registry state spaces pack a
// block's variants contiguously, so a single min/max pair suffices.
func buildLiquidRange(reg Registry, classify func(BlockState) bool) liquidRange {
	min, max := reg.MinStateID(), reg.MaxStateID()
	r := liquidRange{}
	for id := min; id <= max; id++ {
		if !classify(id) {
			if id == max {
				break
			}
			continue
		}
		if !r.valid {
			r.low, r.high, r.valid = id, id, true
		} else {
			r.high = id
		}
		if id == max {
			break
		}
	}
	return r
}

// buildFallingBlockTable scans the registry once for falling-block states
// (sand/gravel family) and returns them sorted for binary search, per
// spec §4.1's "is_falling_block uses a sorted id list".
func buildFallingBlockTable(reg Registry) []BlockState {
	min, max := reg.MinStateID(), reg.MaxStateID()
	var out []BlockState
	for id := min; id <= max; id++ {
		if reg.IsFallingBlock(id) {
			out = append(out, id)
		}
		if id == max {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func fallingBlockContains(table []BlockState, s BlockState) bool {
	i := sort.Search(len(table), func(i int) bool { return table[i] >= s })
	return i < len(table) && table[i] == s
}
