package world

// CachedWorld is a read-mostly, per-plan snapshot of block state. Within a
// single plan, repeated queries of the same position return the same
// state: the plan takes a consistent read view of the world, and any
// writes the game makes are only reconciled on the next re-plan. Block
// states are memoised per position the first time they are read; the
// predicates ask the registry about the cached state on each call and are
// not memoised separately.
//
// CachedWorld is built once per plan and is never shared across goroutines;
// its cache is a plain map, not protected by a mutex, mirroring the
// teacher's single-threaded-per-plan assumption.
type CachedWorld struct {
	provider Provider
	registry Registry

	stateCache map[BlockPos]BlockState

	water liquidRange
	lava  liquidRange
	falling []BlockState
}

// New builds a CachedWorld over provider using registry for classification.
// The liquid ranges and falling-block table are computed once here.
func New(provider Provider, registry Registry) *CachedWorld {
	return &CachedWorld{
		provider:   provider,
		registry:   registry,
		stateCache: make(map[BlockPos]BlockState),
		water:      buildLiquidRange(registry, registry.IsWater),
		lava:       buildLiquidRange(registry, registry.IsLava),
		falling:    buildFallingBlockTable(registry),
	}
}

// BlockStateAt returns the (cached) block state at pos.
func (w *CachedWorld) BlockStateAt(pos BlockPos) BlockState {
	if s, ok := w.stateCache[pos]; ok {
		return s
	}
	s := w.provider.BlockStateAt(pos)
	w.stateCache[pos] = s
	return s
}

// IsAir reports whether pos holds air.
func (w *CachedWorld) IsAir(pos BlockPos) bool {
	return w.registry.IsAir(w.BlockStateAt(pos))
}

// IsPassable reports whether an entity's bounding box can occupy pos
// (no collision).
func (w *CachedWorld) IsPassable(pos BlockPos) bool {
	return w.registry.IsPassable(w.BlockStateAt(pos))
}

// IsStandable reports whether pos's top face supports a standing entity.
func (w *CachedWorld) IsStandable(pos BlockPos) bool {
	return w.registry.IsStandable(w.BlockStateAt(pos))
}

// IsLiquid reports whether pos is water or lava, via a single contiguous
// range test against the precomputed water/lava id spans.
func (w *CachedWorld) IsLiquid(pos BlockPos) bool {
	s := w.BlockStateAt(pos)
	return w.water.contains(s) || w.lava.contains(s)
}

// IsWater reports whether pos is a water block (any level).
func (w *CachedWorld) IsWater(pos BlockPos) bool {
	return w.water.contains(w.BlockStateAt(pos))
}

// IsLava reports whether pos is a lava block.
func (w *CachedWorld) IsLava(pos BlockPos) bool {
	return w.lava.contains(w.BlockStateAt(pos))
}

// IsWaterlogged reports whether pos is a non-water block holding water
// (e.g. a waterlogged fence), which traversal treats as still water.
func (w *CachedWorld) IsWaterlogged(pos BlockPos) bool {
	return w.registry.IsWaterlogged(w.BlockStateAt(pos))
}

// WaterLevel returns the water level at pos (0 = source, >0 = flowing);
// only meaningful when IsWater(pos) is true.
func (w *CachedWorld) WaterLevel(pos BlockPos) int {
	return w.registry.WaterLevel(w.BlockStateAt(pos))
}

// IsProtected reports whether pos holds a block the mine-through
// generator must never break.
func (w *CachedWorld) IsProtected(pos BlockPos) bool {
	return w.registry.IsProtected(w.BlockStateAt(pos))
}

// IsFallingBlock reports whether pos holds a gravity-affected block
// (sand/gravel family), via binary search over the precomputed sorted
// id table.
func (w *CachedWorld) IsFallingBlock(pos BlockPos) bool {
	return fallingBlockContains(w.falling, w.BlockStateAt(pos))
}

// Registry exposes the underlying registry for components (e.g. the
// mining cost cache) that need raw classification without going through
// a position.
func (w *CachedWorld) Registry() Registry { return w.registry }
