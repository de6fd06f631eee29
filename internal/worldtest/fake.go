// Package worldtest provides a small in-memory world.Registry and
// world.Provider for exercising the move catalogue, A* planner, and
// mining planner in tests without a real Minecraft chunk store.
package worldtest

import "github.com/kestrelbot/pathkeeper/internal/world"

// Block states. 0 is always air; the rest are assigned by FakeRegistry
// as blocks are declared, so state ids stay dense and contiguous per
// family (needed for the production range-based liquid/falling checks
// to behave the same way against this fake as against a real registry).
const (
	Air world.BlockState = iota
)

type blockProps struct {
	passable    bool
	standable   bool
	water       bool
	waterLevel  int
	waterlogged bool
	lava        bool
	falling     bool
	protected   bool
}

// FakeRegistry is a hand-built Registry whose block states are declared
// via Declare, in the order the test wants them to receive contiguous
// ids (mirroring how a real registry packs a block family's variants
// next to each other).
type FakeRegistry struct {
	props map[world.BlockState]blockProps
	next  world.BlockState
}

// NewFakeRegistry returns a registry pre-seeded with id 0 = air.
func NewFakeRegistry() *FakeRegistry {
	r := &FakeRegistry{props: make(map[world.BlockState]blockProps), next: 1}
	r.props[Air] = blockProps{passable: true}
	return r
}

// Declare allocates a new BlockState with the given properties.
func (r *FakeRegistry) Declare(p blockProps) world.BlockState {
	id := r.next
	r.next++
	r.props[id] = p
	return id
}

// Solid declares an ordinary solid, standable, non-passable block
// (stone, grass, and similar terrain blocks).
func (r *FakeRegistry) Solid() world.BlockState {
	return r.Declare(blockProps{passable: false, standable: true})
}

// Passable declares a non-solid, non-standable block (a thin
// decoration like a sculk vein, or an open doorway).
func (r *FakeRegistry) Passable() world.BlockState {
	return r.Declare(blockProps{passable: true, standable: false})
}

// Protected declares a solid, standable block that must never be mined
// (TNT and similar hazards).
func (r *FakeRegistry) Protected() world.BlockState {
	return r.Declare(blockProps{passable: false, standable: true, protected: true})
}

// Falling declares a solid, standable, gravity-affected block (sand,
// gravel).
func (r *FakeRegistry) Falling() world.BlockState {
	return r.Declare(blockProps{passable: false, standable: true, falling: true})
}

// Water declares a water block; level 0 is a still source, >0 flowing.
func (r *FakeRegistry) Water(level int) world.BlockState {
	return r.Declare(blockProps{passable: true, water: true, waterLevel: level})
}

// Waterlogged declares a solid-ish block that also holds water (treated
// as still water for traversal, per the spec glossary).
func (r *FakeRegistry) Waterlogged() world.BlockState {
	return r.Declare(blockProps{passable: true, water: true, waterlogged: true})
}

// Lava declares a lava block.
func (r *FakeRegistry) Lava() world.BlockState {
	return r.Declare(blockProps{passable: true, lava: true})
}

func (r *FakeRegistry) MinStateID() world.BlockState { return 0 }
func (r *FakeRegistry) MaxStateID() world.BlockState { return r.next - 1 }

func (r *FakeRegistry) IsAir(s world.BlockState) bool   { return s == Air }
func (r *FakeRegistry) IsPassable(s world.BlockState) bool  { return r.props[s].passable }
func (r *FakeRegistry) IsStandable(s world.BlockState) bool { return r.props[s].standable }
func (r *FakeRegistry) IsWater(s world.BlockState) bool     { return r.props[s].water }
func (r *FakeRegistry) IsLava(s world.BlockState) bool      { return r.props[s].lava }
func (r *FakeRegistry) IsFallingBlock(s world.BlockState) bool { return r.props[s].falling }
func (r *FakeRegistry) IsWaterlogged(s world.BlockState) bool  { return r.props[s].waterlogged }
func (r *FakeRegistry) WaterLevel(s world.BlockState) int      { return r.props[s].waterLevel }
func (r *FakeRegistry) IsProtected(s world.BlockState) bool    { return r.props[s].protected }

// FakeProvider is a sparse block-state map; unset positions read as air.
type FakeProvider struct {
	blocks map[world.BlockPos]world.BlockState
}

// NewFakeProvider returns an empty (all-air) provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{blocks: make(map[world.BlockPos]world.BlockState)}
}

// Set places state at pos.
func (p *FakeProvider) Set(pos world.BlockPos, state world.BlockState) {
	p.blocks[pos] = state
}

// BlockStateAt implements world.Provider.
func (p *FakeProvider) BlockStateAt(pos world.BlockPos) world.BlockState {
	return p.blocks[pos]
}
