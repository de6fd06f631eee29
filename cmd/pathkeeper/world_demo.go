package main

import (
	"github.com/kestrelbot/pathkeeper/internal/mining"
	"github.com/kestrelbot/pathkeeper/internal/world"
	"github.com/kestrelbot/pathkeeper/internal/worldtest"
)

// demoWorld is a small, self-contained stand-in for a live game
// connection: a handful of ore blocks scattered around the origin so
// `!mine <name>` has something to find. A real bot framework host wires
// world.Provider and botapi.Inventory/Executor against its own ECS
// instead of this fixture.
type demoWorld struct {
	reg      *worldtest.FakeRegistry
	provider *worldtest.FakeProvider
	names    map[string]world.BlockState
	chunk    world.ChunkPos
	ySection int32
}

func newDemoWorld() *demoWorld {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()

	for y := int32(0); y < 2; y++ {
		prov.Set(world.BlockPos{X: 0, Y: 62 - y, Z: 0}, reg.Solid())
	}

	diamond := reg.Solid()
	iron := reg.Solid()
	coal := reg.Solid()

	prov.Set(world.BlockPos{X: 10, Y: 62, Z: 10}, diamond)
	prov.Set(world.BlockPos{X: 11, Y: 62, Z: 10}, diamond)
	prov.Set(world.BlockPos{X: 8, Y: 62, Z: 4}, iron)
	prov.Set(world.BlockPos{X: 6, Y: 62, Z: 14}, coal)

	return &demoWorld{
		reg:      reg,
		provider: prov,
		names: map[string]world.BlockState{
			"diamond": diamond,
			"iron":    iron,
			"coal":    coal,
		},
		chunk:    world.ChunkOf(world.BlockPos{X: 0, Y: 62, Z: 0}),
		ySection: 62 / 16,
	}
}

func (d *demoWorld) lookup(name string) (world.BlockState, bool) {
	s, ok := d.names[name]
	return s, ok
}

// sections implements mining.SectionSource over the demo fixture: every
// declared block lives in one loaded chunk and one section, so the
// scanner's spiral/palette logic runs for real without a live chunk store.
type demoSections struct{ world *demoWorld }

func (s demoSections) LoadedChunks() []world.ChunkPos {
	return []world.ChunkPos{{X: 0, Z: 0}, s.world.chunk}
}

func (s demoSections) SectionYRange(chunk world.ChunkPos) (int32, int32) {
	if chunk == s.world.chunk {
		return s.world.ySection, s.world.ySection
	}
	return 1, 0
}

func (s demoSections) PaletteAt(chunk world.ChunkPos, sectionY int32) mining.Palette {
	if chunk != s.world.chunk || sectionY != s.world.ySection {
		return mining.Palette{Kind: mining.PaletteSingleValue}
	}
	values := make([]world.BlockState, 0, len(s.world.names))
	for _, v := range s.world.names {
		values = append(values, v)
	}
	return mining.Palette{Kind: mining.PaletteHashmap, Values: values}
}
