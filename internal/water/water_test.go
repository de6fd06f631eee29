package water_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbot/pathkeeper/internal/costs"
	"github.com/kestrelbot/pathkeeper/internal/water"
	"github.com/kestrelbot/pathkeeper/internal/world"
	"github.com/kestrelbot/pathkeeper/internal/worldtest"
)

func TestClassifyStillAndFlowing(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	still := reg.Water(0)
	flowing := reg.Water(3)
	prov.Set(world.BlockPos{X: 0, Y: 64, Z: 0}, still)
	prov.Set(world.BlockPos{X: 1, Y: 64, Z: 0}, flowing)
	w := world.New(prov, reg)

	assert.Equal(t, water.StillWater, water.Classify(w, world.BlockPos{X: 0, Y: 64, Z: 0}))
	assert.Equal(t, water.FlowingWater, water.Classify(w, world.BlockPos{X: 1, Y: 64, Z: 0}))
}

func TestClassifyDangerousNearLava(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	still := reg.Water(0)
	lava := reg.Lava()
	prov.Set(world.BlockPos{X: 0, Y: 64, Z: 0}, still)
	prov.Set(world.BlockPos{X: 1, Y: 64, Z: 0}, lava)
	w := world.New(prov, reg)

	assert.Equal(t, water.Dangerous, water.Classify(w, world.BlockPos{X: 0, Y: 64, Z: 0}))
	assert.False(t, water.IsNavigable(w, world.BlockPos{X: 0, Y: 64, Z: 0}))
}

func TestClassifyWaterlogged(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	logged := reg.Waterlogged()
	prov.Set(world.BlockPos{X: 0, Y: 64, Z: 0}, logged)
	w := world.New(prov, reg)

	assert.Equal(t, water.Waterlogged, water.Classify(w, world.BlockPos{X: 0, Y: 64, Z: 0}))
}

func TestSwimmingStateAirDepletesAndRecovers(t *testing.T) {
	s := water.NewSwimmingState()
	require.Equal(t, costs.MaxAirTicks, s.EstimatedAirTicks)

	next, _ := s.Advance()
	assert.Equal(t, costs.MaxAirTicks-1, next.EstimatedAirTicks)
	assert.Equal(t, 1, next.ConsecutiveSwimMoves)

	surfaced := next.Surface()
	assert.Equal(t, costs.MaxAirTicks, surfaced.EstimatedAirTicks)
	assert.Equal(t, 0, surfaced.ConsecutiveSwimMoves)
}

func TestSwimmingStateSprintSwimUnlocksAfterThreeMoves(t *testing.T) {
	s := water.NewSwimmingState()
	for i := 0; i < costs.SprintSwimMinConsecutive-1; i++ {
		s, _ = s.Advance()
		assert.False(t, s.SprintSwimming)
	}
	s, _ = s.Advance()
	assert.True(t, s.SprintSwimming)
}

func TestSwimmingStateLowAirCostsMore(t *testing.T) {
	full := water.NewSwimmingState()
	lowAir := water.SwimmingState{EstimatedAirTicks: 10}

	_, fullPenalty := full.Advance()
	_, lowPenalty := lowAir.Advance()
	assert.Less(t, fullPenalty, lowPenalty)
}

func TestDistanceToAirColumnFindsOpening(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	waterState := reg.Water(0)
	for y := int32(60); y < 63; y++ {
		prov.Set(world.BlockPos{X: 0, Y: y, Z: 0}, waterState)
	}
	// y=63 defaults to air: the first non-water passable block.
	w := world.New(prov, reg)

	dist, ok := water.DistanceToAirColumn(w, world.BlockPos{X: 0, Y: 60, Z: 0}, 4)
	require.True(t, ok)
	assert.Equal(t, 3, dist)
}

func TestDistanceToAirColumnGivesUpPastMax(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	waterState := reg.Water(0)
	for y := int32(50); y < 60; y++ {
		prov.Set(world.BlockPos{X: 0, Y: y, Z: 0}, waterState)
	}
	w := world.New(prov, reg)

	_, ok := water.DistanceToAirColumn(w, world.BlockPos{X: 0, Y: 50, Z: 0}, 2)
	assert.False(t, ok)
}
