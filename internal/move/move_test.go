package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/move"
	"github.com/kestrelbot/pathkeeper/internal/world"
	"github.com/kestrelbot/pathkeeper/internal/worldtest"
)

func floorAt(reg *worldtest.FakeRegistry, prov *worldtest.FakeProvider, pos world.BlockPos) {
	prov.Set(pos, reg.Solid())
}

func TestWalkAndSprintEdgesFlatGround(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 63, Z: 0})
	w := world.New(prov, reg)

	edges := move.WalkAndSprintEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	var sawWalk, sawSprint bool
	for _, e := range edges {
		if e.Target == (world.BlockPos{X: 1, Y: 64, Z: 0}) {
			switch e.Kind {
			case move.KindWalk:
				sawWalk = true
			case move.KindSprint:
				sawSprint = true
				assert.True(t, e.NextState.Sprinting)
			}
		}
	}
	assert.True(t, sawWalk)
	assert.True(t, sawSprint)
}

func TestWalkOffEdgeRequiresTargetPassable(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	// Block the cell the avatar would step into at the lower level.
	prov.Set(world.BlockPos{X: 1, Y: 63, Z: 0}, reg.Solid())
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 62, Z: 0})
	w := world.New(prov, reg)

	edges := move.WalkOffEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	for _, e := range edges {
		assert.NotEqual(t, world.BlockPos{X: 1, Y: 63, Z: 0}, e.Target)
	}
}

func TestWalkOffEdgeStepsDownOneBlock(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 62, Z: 0})
	w := world.New(prov, reg)

	edges := move.WalkOffEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	require.NotEmpty(t, edges)
	var found bool
	for _, e := range edges {
		if e.Target == (world.BlockPos{X: 1, Y: 63, Z: 0}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestJumpEdgesRequireHeadClearance(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 64, Z: 0})
	// Ceiling directly above the start blocks the jump.
	prov.Set(world.BlockPos{X: 0, Y: 66, Z: 0}, reg.Solid())
	w := world.New(prov, reg)

	edges := move.JumpEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	assert.Empty(t, edges)
}

func TestJumpEdgesAscendOneBlock(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 64, Z: 0})
	w := world.New(prov, reg)

	edges := move.JumpEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	require.Len(t, edges, 1)
	assert.Equal(t, world.BlockPos{X: 1, Y: 65, Z: 0}, edges[0].Target)
}

func TestParkourEdgesSkipUnclearedArc(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 3, Y: 63, Z: 0})
	// An obstruction in the jump arc blocks every gap crossing it.
	prov.Set(world.BlockPos{X: 1, Y: 64, Z: 0}, reg.Solid())
	w := world.New(prov, reg)

	edges := move.ParkourEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	for _, e := range edges {
		assert.NotEqual(t, world.BlockPos{X: 3, Y: 64, Z: 0}, e.Target)
	}
}

func TestParkourEdgesCostGrowsWithGap(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 2, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 3, Y: 63, Z: 0})
	w := world.New(prov, reg)

	edges := move.ParkourEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	costs := map[world.BlockPos]float64{}
	for _, e := range edges {
		if e.Kind == move.KindParkour {
			costs[e.Target] = e.Cost
		}
	}
	gap2, ok2 := costs[world.BlockPos{X: 2, Y: 64, Z: 0}]
	gap3, ok3 := costs[world.BlockPos{X: 3, Y: 64, Z: 0}]
	require.True(t, ok2)
	require.True(t, ok3)
	assert.Less(t, gap2, gap3)
}

type perfectInventory struct{}

func (perfectInventory) BestTool(world.BlockState) botapi.ToolResult {
	return botapi.ToolResult{PercentagePerTick: 1}
}
func (perfectInventory) Count(world.BlockState) uint32 { return 0 }

type constCoster struct{ cost float64 }

func (c constCoster) CostFor(world.BlockState) float64 { return c.cost }

func TestMineThroughNeverBreaksProtected(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	floorAt(reg, prov, world.BlockPos{X: 1, Y: 63, Z: 0})
	prov.Set(world.BlockPos{X: 1, Y: 64, Z: 0}, reg.Protected())
	w := world.New(prov, reg)

	edges := move.MineThroughEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{}, perfectInventory{}, constCoster{cost: 1})
	assert.Empty(t, edges)
}

func TestMineDownEdgeDigsFloor(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	prov.Set(world.BlockPos{X: 0, Y: 63, Z: 0}, reg.Solid())
	prov.Set(world.BlockPos{X: 0, Y: 62, Z: 0}, reg.Solid())
	w := world.New(prov, reg)

	edges := move.MineDownEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{}, perfectInventory{}, constCoster{cost: 1})
	require.Len(t, edges, 1)
	assert.Equal(t, world.BlockPos{X: 0, Y: 63, Z: 0}, edges[0].Target)
}

func TestMineDownEdgeRefusesProtectedFloor(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	prov.Set(world.BlockPos{X: 0, Y: 63, Z: 0}, reg.Protected())
	prov.Set(world.BlockPos{X: 0, Y: 62, Z: 0}, reg.Solid())
	w := world.New(prov, reg)

	edges := move.MineDownEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{}, perfectInventory{}, constCoster{cost: 1})
	assert.Empty(t, edges)
}

func TestWaterEntryEdgesClassifyNavigableWater(t *testing.T) {
	reg := worldtest.NewFakeRegistry()
	prov := worldtest.NewFakeProvider()
	floorAt(reg, prov, world.BlockPos{X: 0, Y: 63, Z: 0})
	prov.Set(world.BlockPos{X: 1, Y: 64, Z: 0}, reg.Water(0))
	prov.Set(world.BlockPos{X: 1, Y: 63, Z: 0}, reg.Water(0))
	w := world.New(prov, reg)

	edges := move.WaterEdges(w, world.BlockPos{X: 0, Y: 64, Z: 0}, move.NodeState{})
	var found bool
	for _, e := range edges {
		if e.Kind == move.KindWaterEntry && e.Target == (world.BlockPos{X: 1, Y: 64, Z: 0}) {
			found = true
			assert.Greater(t, e.NextState.Swim.EstimatedAirTicks, 0)
		}
	}
	assert.True(t, found)
}
