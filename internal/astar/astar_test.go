package astar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/world"
	"github.com/kestrelbot/pathkeeper/internal/worldtest"
)

type fakeInventory struct{}

func (fakeInventory) BestTool(world.BlockState) botapi.ToolResult {
	return botapi.ToolResult{PercentagePerTick: 1}
}
func (fakeInventory) Count(world.BlockState) uint32 { return 0 }

type fakeCoster struct{}

func (fakeCoster) CostFor(world.BlockState) float64 { return 2.0 }

func defaultCfg() Config {
	return Config{
		MinTimeout: 200 * time.Millisecond,
		MaxTimeout: time.Second,
		MaxNodes:   20000,
		Inventory:  nil,
	}
}

func TestSimpleForward(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	stone := reg.Solid()
	p := worldtest.NewFakeProvider()
	p.Set(world.BlockPos{X: 0, Y: 70, Z: 0}, stone)
	p.Set(world.BlockPos{X: 0, Y: 70, Z: 1}, stone)
	w := world.New(p, reg)

	start := world.BlockPos{X: 0, Y: 71, Z: 0}
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 0, Y: 71, Z: 1}}

	res, err := Plan(context.Background(), w, start, g, defaultCfg())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Partial)
	assert.Equal(t, g.Target, res.Path[len(res.Path)-1])

	var total float64
	for _, e := range res.Edges {
		total += e.Cost
	}
	assert.LessOrEqual(t, total, 20.0*3.563)
}

func TestParkourTwoBlockGap(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	stone := reg.Solid()
	p := worldtest.NewFakeProvider()
	p.Set(world.BlockPos{X: 0, Y: 70, Z: 0}, stone)
	p.Set(world.BlockPos{X: 0, Y: 70, Z: 3}, stone)
	w := world.New(p, reg)

	start := world.BlockPos{X: 0, Y: 71, Z: 0}
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 0, Y: 71, Z: 3}}

	res, err := Plan(context.Background(), w, start, g, defaultCfg())
	require.NoError(t, err)
	assert.False(t, res.Partial)
	assert.Equal(t, g.Target, res.Path[len(res.Path)-1])
}

func TestDescendAndParkour(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	stone := reg.Solid()
	p := worldtest.NewFakeProvider()
	// Staircase (0,70,0) -> (0,66,4).
	ys := []int32{70, 69, 68, 67, 66, 66}
	for z := int32(0); z <= 4; z++ {
		p.Set(world.BlockPos{X: 0, Y: ys[z], Z: z}, stone)
	}
	p.Set(world.BlockPos{X: 3, Y: 66, Z: 4}, stone)
	w := world.New(p, reg)

	start := world.BlockPos{X: 0, Y: 71, Z: 0}
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 3, Y: 67, Z: 4}}

	cfg := defaultCfg()
	cfg.MaxTimeout = 2 * time.Second
	res, err := Plan(context.Background(), w, start, g, cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	// Best-effort: either it reaches the goal, or stops at the closest
	// node found; either way it must have made measurable progress.
	assert.NotEmpty(t, res.Path)
}

func TestMineThroughNeverBreaksProtectedBlock(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	stone := reg.Solid()
	sculk := reg.Passable()
	grass := reg.Solid()
	tnt := reg.Protected()
	p := worldtest.NewFakeProvider()
	p.Set(world.BlockPos{X: 0, Y: 71, Z: 1}, stone)
	p.Set(world.BlockPos{X: 0, Y: 71, Z: 0}, sculk)
	p.Set(world.BlockPos{X: 0, Y: 70, Z: 0}, grass)
	p.Set(world.BlockPos{X: 0, Y: 69, Z: 0}, tnt)
	w := world.New(p, reg)

	start := world.BlockPos{X: 0, Y: 72, Z: 1}
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 0, Y: 69, Z: 0}}

	cfg := defaultCfg()
	cfg.AllowMining = true
	cfg.MaxTimeout = 2 * time.Second
	cfg.Inventory = fakeInventory{}
	cfg.MiningCoster = fakeCoster{}

	res, err := Plan(context.Background(), w, start, g, cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Partial)
	last := res.Path[len(res.Path)-1]
	assert.Equal(t, world.BlockPos{X: 0, Y: 70, Z: 0}, last)
	for _, pos := range res.Path {
		assert.NotEqual(t, world.BlockPos{X: 0, Y: 69, Z: 0}, pos)
	}
}

func TestSwimThroughWater(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	stone := reg.Solid()
	water := reg.Water(0)
	p := worldtest.NewFakeProvider()
	for x := int32(0); x <= 3; x++ {
		p.Set(world.BlockPos{X: x, Y: 69, Z: 0}, stone)
		p.Set(world.BlockPos{X: x, Y: 70, Z: 0}, water)
	}
	w := world.New(p, reg)

	start := world.BlockPos{X: 0, Y: 70, Z: 0}
	g := goal.BlockPosGoal{Target: world.BlockPos{X: 3, Y: 70, Z: 0}}

	cfg := defaultCfg()
	cfg.MaxTimeout = 3 * time.Second
	res, err := Plan(context.Background(), w, start, g, cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, g.Target, res.Path[len(res.Path)-1])
}
