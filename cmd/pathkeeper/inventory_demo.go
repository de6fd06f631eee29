package main

import (
	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// demoInventory always reports a perfect tool and tracks counts the demo
// session can bump after a simulated mine, so a later `!mine` of the same
// block can report QuantityReached without a real inventory connection.
type demoInventory struct {
	counts map[world.BlockState]uint32
}

func newDemoInventory() *demoInventory {
	return &demoInventory{counts: make(map[world.BlockState]uint32)}
}

func (i *demoInventory) BestTool(world.BlockState) botapi.ToolResult {
	return botapi.ToolResult{Index: 0, PercentagePerTick: 1}
}

func (i *demoInventory) Count(state world.BlockState) uint32 {
	return i.counts[state]
}

func (i *demoInventory) simulateMine(state world.BlockState) {
	i.counts[state]++
}
