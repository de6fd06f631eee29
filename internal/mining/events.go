package mining

import (
	"time"

	"github.com/ethereum/go-ethereum/event"

	"github.com/kestrelbot/pathkeeper/internal/world"
)

// ScanCompleteEvent is published after every world scan, successful or
// not, so a host (chat glue, dashboard) can report progress without
// polling Process.KnownLocations on a timer.
type ScanCompleteEvent struct {
	At    time.Time
	Found int
}

// BlacklistEvent is published whenever a position is blacklisted, e.g.
// after ReportFailure, so a host can surface why a previously known ore
// location disappeared from the plan.
type BlacklistEvent struct {
	Pos    world.BlockPos
	Reason Reason
	Until  time.Time
}

// SubscribeScanComplete subscribes ch to this process's scan-completion
// feed, mirroring the teacher's SubscribeNewPreconfTxEvent pattern.
func (p *Process) SubscribeScanComplete(ch chan<- ScanCompleteEvent) event.Subscription {
	return p.scanFeed.Subscribe(ch)
}

// SubscribeBlacklist subscribes ch to this process's blacklist feed.
func (p *Process) SubscribeBlacklist(ch chan<- BlacklistEvent) event.Subscription {
	return p.blacklistFeed.Subscribe(ch)
}
