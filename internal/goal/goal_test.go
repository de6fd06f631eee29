package goal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

func TestBlockPosGoal(t *testing.T) {
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 5, Y: 64, Z: 5}}
	assert.True(t, g.Success(world.BlockPos{X: 5, Y: 64, Z: 5}))
	assert.False(t, g.Success(world.BlockPos{X: 4, Y: 64, Z: 5}))
	assert.Greater(t, g.Heuristic(world.BlockPos{X: 0, Y: 64, Z: 0}), 0.0)
}

func TestSingleBlockSuccessWithinReach(t *testing.T) {
	g := goal.SingleBlock{Target: world.BlockPos{X: 10, Y: 64, Z: 10}}
	assert.True(t, g.Success(world.BlockPos{X: 8, Y: 64, Z: 10}))
	assert.False(t, g.Success(world.BlockPos{X: 0, Y: 64, Z: 0}))
}

func TestSingleBlockPreferYBiasesHeuristic(t *testing.T) {
	preferY := int32(64)
	g := goal.SingleBlock{Target: world.BlockPos{X: 10, Y: 64, Z: 10}, PreferY: &preferY}
	near := g.Heuristic(world.BlockPos{X: 0, Y: 64, Z: 0})
	far := g.Heuristic(world.BlockPos{X: 0, Y: 74, Z: 0})
	assert.Greater(t, far, near)
}

func TestMultipleBlocksExcludesInternalByDefault(t *testing.T) {
	targets := []world.BlockPos{{X: 0, Y: 64, Z: 0}, {X: 1, Y: 64, Z: 0}}
	g := goal.MultipleBlocks{Targets: targets}
	assert.False(t, g.Success(targets[0]))

	gInternal := goal.MultipleBlocks{Targets: targets, AllowInternal: true}
	assert.True(t, gInternal.Success(targets[0]))
}

func TestOreVeinSucceedsWithThreeBlocksInReach(t *testing.T) {
	blocks := []world.BlockPos{
		{X: 0, Y: 64, Z: 0}, {X: 1, Y: 64, Z: 0}, {X: 0, Y: 64, Z: 1},
	}
	vein := goal.NewOreVein(blocks, 4.5)
	assert.True(t, vein.Success(world.BlockPos{X: 0, Y: 64, Z: 0}))

	far := goal.NewOreVein([]world.BlockPos{{X: 0, Y: 64, Z: 0}, {X: 50, Y: 64, Z: 50}}, 4.5)
	assert.False(t, far.Success(world.BlockPos{X: 0, Y: 64, Z: 0}))
}

func TestStripMinePositionsExpandShaft(t *testing.T) {
	sm := goal.StripMine{
		Start:     world.BlockPos{X: 0, Y: 64, Z: 0},
		Direction: goal.Direction3{DX: 1, DY: 0, DZ: 0},
		Length:    3,
		Height:    2,
		Width:     1,
	}
	positions := sm.Positions()
	require.Len(t, positions, 3*2*1)
	assert.Equal(t, world.BlockPos{X: 0, Y: 64, Z: 0}, positions[0])
	assert.True(t, sm.Success(sm.Start))
}

func TestPrioritisedMiningPicksLowestWeightedHeuristic(t *testing.T) {
	near := goal.SingleBlock{Target: world.BlockPos{X: 1, Y: 64, Z: 0}}
	far := goal.SingleBlock{Target: world.BlockPos{X: 100, Y: 64, Z: 0}}
	g := goal.PrioritisedMining{Goals: []goal.WeightedGoal{
		{Goal: near, Weight: 1},
		{Goal: far, Weight: 1},
	}}
	pos := world.BlockPos{X: 0, Y: 64, Z: 0}
	assert.Equal(t, near.Heuristic(pos), g.Heuristic(pos))
}

func TestPrioritisedMiningSucceedsIfAnySubGoalSucceeds(t *testing.T) {
	a := goal.SingleBlock{Target: world.BlockPos{X: 0, Y: 64, Z: 0}}
	b := goal.SingleBlock{Target: world.BlockPos{X: 100, Y: 64, Z: 0}}
	g := goal.PrioritisedMining{Goals: []goal.WeightedGoal{
		{Goal: a, Weight: 1},
		{Goal: b, Weight: 5},
	}}
	assert.True(t, g.Success(world.BlockPos{X: 0, Y: 64, Z: 0}))
}
