package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/kestrelbot/pathkeeper/internal/astar"
	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/mining"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// session holds the one long-lived mining.Process a chat-driven demo
// session drives across !mine/!status/!stop commands.
type session struct {
	demo      *demoWorld
	world     *world.CachedWorld
	inv       *demoInventory
	playerPos world.BlockPos

	proc   *mining.Process
	target string
}

func newSession() *session {
	demo := newDemoWorld()
	return &session{
		demo:      demo,
		world:     world.New(demo.provider, demo.reg),
		inv:       newDemoInventory(),
		playerPos: world.BlockPos{X: 0, Y: 63, Z: 0},
	}
}

// mine starts (or restarts) a mining process for the named block, case
// insensitively, acking with the known names if name isn't recognised.
func (s *session) mine(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	state, ok := s.demo.lookup(key)
	if !ok {
		return fmt.Sprintf("I don't know how to mine %q. Try: diamond, iron, coal.", name)
	}

	qty := uint32(1)
	cfg := mining.DefaultConfig()
	cfg.MaxMiningDistance = 64
	s.proc = mining.NewProcess([]world.BlockState{state}, &qty, s.inv, cfg)
	s.target = key

	result, g := s.proc.Tick(time.Now(), s.playerPos, s.demo.provider, demoSections{world: s.demo})
	switch result {
	case mining.ResultNoTargetsFound:
		return fmt.Sprintf("Scanned the area but found no %s within reach yet.", key)
	case mining.ResultQuantityReached:
		return fmt.Sprintf("Already holding enough %s.", key)
	case mining.ResultGoalReady:
		return s.planAndDescribe(g, key)
	default:
		return "unexpected mining result"
	}
}

func (s *session) planAndDescribe(g goal.Goal, key string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := astar.Config{
		AllowMining:  true,
		MinTimeout:   200 * time.Millisecond,
		MaxTimeout:   2 * time.Second,
		MaxNodes:     20000,
		Inventory:    s.inv,
		MiningCoster: mining.NewMiningCache(s.inv),
	}
	res, err := astar.Plan(ctx, s.world, s.playerPos, g, cfg)
	if err != nil {
		log.Warn("pathkeeper: plan failed", "target", key, "err", err)
		return fmt.Sprintf("Found %s but couldn't find a path to it yet.", key)
	}

	// No real block-break packet round-trip exists in this demo, so a
	// found, non-partial path to the goal stands in for the avatar
	// having reached and mined the block.
	status := "a path"
	if res.Partial {
		status = "a partial path"
	} else if state, ok := s.demo.lookup(key); ok {
		s.inv.simulateMine(state)
	}
	return fmt.Sprintf("Heading toward %s: found %s with %d steps.", key, status, len(res.Path))
}

// status reports how many known locations the current process tracks,
// or that nothing is in progress.
func (s *session) status() string {
	if s.proc == nil {
		return "Not mining anything right now."
	}
	locations := s.proc.KnownLocations()
	return fmt.Sprintf("Mining %s: %d known location(s) tracked.", s.target, len(locations))
}

// stop halts the active mining process, if any.
func (s *session) stop() string {
	if s.proc == nil {
		return "Nothing to stop."
	}
	s.proc.Stop()
	target := s.target
	s.proc = nil
	s.target = ""
	return fmt.Sprintf("Stopped mining %s.", target)
}
