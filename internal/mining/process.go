package mining

import (
	"time"

	"github.com/ethereum/go-ethereum/event"

	"github.com/kestrelbot/pathkeeper/internal/botapi"
	"github.com/kestrelbot/pathkeeper/internal/botlog"
	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/metrics"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// Config mirrors the reference implementation's MiningConfig defaults.
type Config struct {
	MaxMiningDistance    int32
	MaxOreLocations      int
	ScanIntervalSeconds  int
	VeinDetectionEnabled bool
	VeinMaxDistance      float64
}

// DefaultConfig returns the reference defaults: 256-block mining
// distance, 1000 cached ore locations, a 10s scan interval, vein
// detection on, and a 3.0-block vein clustering radius.
func DefaultConfig() Config {
	return Config{
		MaxMiningDistance:    256,
		MaxOreLocations:      1000,
		ScanIntervalSeconds:  10,
		VeinDetectionEnabled: true,
		VeinMaxDistance:      3.0,
	}
}

// Result is the outcome of one Process.Tick call.
type Result int

const (
	// ResultGoalReady means Tick returned a usable Goal.
	ResultGoalReady Result = iota
	// ResultQuantityReached means the inventory already holds enough of
	// a target block's drop; mining is complete.
	ResultQuantityReached
	// ResultNoTargetsFound means a scan ran and found nothing; the
	// caller may widen the search radius or give up.
	ResultNoTargetsFound
)

// CachedOreLocation is a previously scanned candidate position.
type CachedOreLocation struct {
	Pos        world.BlockPos
	ChunkPos   world.ChunkPos
	LastSeen   time.Time
	Accessible *bool
}

// Process owns the long-running mining loop: scan scheduling, known
// ore locations, blacklisting, and quantity tracking across many plans.
type Process struct {
	targetBlocks    map[world.BlockState]struct{}
	desiredQuantity *uint32

	knownLocations []CachedOreLocation
	blacklist      *Blacklist
	// inaccessible holds positions ReportFailure has confirmed as
	// unreachable, independent of the TTL-bound blacklist: once a
	// position lands here, rescans stop proposing it even after its
	// blacklist entry expires.
	inaccessible map[world.BlockPos]bool
	lastScan     time.Time

	config  Config
	inv     botapi.Inventory
	scanner *Scanner

	scanFeed      event.Feed
	blacklistFeed event.Feed
}

// NewProcess starts a mining process for targets, optionally stopping
// once the inventory holds desiredQuantity of any target's drop.
func NewProcess(targets []world.BlockState, desiredQuantity *uint32, inv botapi.Inventory, cfg Config) *Process {
	set := make(map[world.BlockState]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}
	return &Process{
		targetBlocks:    set,
		desiredQuantity: desiredQuantity,
		blacklist:       NewBlacklist(),
		inaccessible:    make(map[world.BlockPos]bool),
		config:          cfg,
		inv:             inv,
		scanner:         NewScanner(),
	}
}

// Tick advances the process by one planning round, per spec §4.5's
// five-step sequence.
func (p *Process) Tick(now time.Time, player world.BlockPos, provider world.Provider, sections SectionSource) (Result, goal.Goal) {
	if p.desiredQuantity != nil {
		for target := range p.targetBlocks {
			if p.inv.Count(target) >= *p.desiredQuantity {
				metrics.MiningQuantityReachedMeter.Mark(1)
				return ResultQuantityReached, nil
			}
		}
	}

	p.blacklist.Cleanup(now)
	metrics.MiningBlacklistGauge.Update(int64(p.blacklist.Size()))

	if p.lastScan.IsZero() || now.Sub(p.lastScan) >= time.Duration(p.config.ScanIntervalSeconds)*time.Second {
		p.runScan(now, player, provider, sections)
	}

	p.knownLocations = p.filterBlacklisted(p.knownLocations, now)
	metrics.MiningKnownLocationsGauge.Update(int64(len(p.knownLocations)))

	if len(p.knownLocations) == 0 {
		return ResultNoTargetsFound, nil
	}

	positions := make([]world.BlockPos, len(p.knownLocations))
	for i, loc := range p.knownLocations {
		positions[i] = loc.Pos
	}

	var clusters [][]world.BlockPos
	if p.config.VeinDetectionEnabled {
		clusters = DetectVeins(positions, p.config.VeinMaxDistance)
	} else {
		for _, pos := range positions {
			clusters = append(clusters, []world.BlockPos{pos})
		}
	}
	metrics.MiningVeinsFoundMeter.Mark(int64(countVeins(clusters)))

	g := BuildGoal(clusters, player, goal.ReachDistance)
	return ResultGoalReady, g
}

func countVeins(clusters [][]world.BlockPos) int {
	n := 0
	for _, c := range clusters {
		if len(c) >= 2 {
			n++
		}
	}
	return n
}

func (p *Process) runScan(now time.Time, player world.BlockPos, provider world.Provider, sections SectionSource) {
	defer metrics.TimeScan(time.Now())
	req := ScanRequest{
		Player:       player,
		Targets:      p.targetBlocks,
		MaxDistance:  p.config.MaxMiningDistance,
		MaxLocations: p.config.MaxOreLocations,
	}
	positions := p.scanner.Scan(req, provider, sections)

	locations := make([]CachedOreLocation, 0, len(positions))
	for _, pos := range positions {
		if p.blacklist.IsBlacklisted(pos, now) {
			continue
		}
		if inaccessible := p.inaccessible[pos]; inaccessible {
			continue
		}
		locations = append(locations, CachedOreLocation{
			Pos:      pos,
			ChunkPos: world.ChunkOf(pos),
			LastSeen: now,
		})
	}
	if len(locations) > p.config.MaxOreLocations {
		locations = locations[:p.config.MaxOreLocations]
	}
	p.knownLocations = locations
	p.lastScan = now
	botlog.Mining.Debug("mining: scan complete", "found", len(locations))
	p.scanFeed.Send(ScanCompleteEvent{At: now, Found: len(locations)})
}

func (p *Process) filterBlacklisted(locations []CachedOreLocation, now time.Time) []CachedOreLocation {
	out := locations[:0:0]
	for _, loc := range locations {
		if p.blacklist.IsBlacklisted(loc.Pos, now) {
			continue
		}
		out = append(out, loc)
	}
	return out
}

// ReportFailure blacklists pos for the given reason and drops it from
// known_locations, forcing the next Tick to treat it as absent. A
// ReasonUnreachable failure also marks pos permanently inaccessible, so
// future scans stop proposing it once the TTL-bound blacklist expires.
func (p *Process) ReportFailure(pos world.BlockPos, reason Reason, now time.Time) {
	p.blacklist.Add(pos, reason, now)
	if reason == ReasonUnreachable {
		p.markInaccessible(pos)
	}
	p.knownLocations = p.filterBlacklisted(p.knownLocations, now)
	p.blacklistFeed.Send(BlacklistEvent{Pos: pos, Reason: reason, Until: now.Add(reason.ttl())})
}

// markInaccessible records pos as confirmed unreachable and tags any
// currently known location at pos accordingly.
func (p *Process) markInaccessible(pos world.BlockPos) {
	p.inaccessible[pos] = true
	for i := range p.knownLocations {
		if p.knownLocations[i].Pos == pos {
			inaccessible := false
			p.knownLocations[i].Accessible = &inaccessible
			return
		}
	}
}

// KnownLocations returns the current known ore locations (post-filter).
func (p *Process) KnownLocations() []CachedOreLocation {
	return p.knownLocations
}

// Stop clears targets and known locations; any in-flight scan result
// arriving after Stop should be dropped by the caller.
func (p *Process) Stop() {
	p.targetBlocks = nil
	p.knownLocations = nil
}
