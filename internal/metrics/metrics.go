// Package metrics centralizes the registered gauges, meters, and timers
// for the planner and mining process, following the same
// one-file-per-concern registration convention the teacher uses for its
// own preconfirmation metrics.
package metrics

import (
	"time"

	"github.com/ethereum/go-ethereum/metrics"
)

var (
	// PlannerNodesExpandedMeter counts A* node expansions across all plans.
	PlannerNodesExpandedMeter = metrics.NewRegisteredMeter("pathkeeper/planner/nodes_expanded", nil)
	// PlannerPlanTimer measures wall-clock time spent inside a single Plan call.
	PlannerPlanTimer = metrics.NewRegisteredTimer("pathkeeper/planner/plan", nil)
	// PlannerPartialPathMeter counts plans that returned a partial path.
	PlannerPartialPathMeter = metrics.NewRegisteredMeter("pathkeeper/planner/partial_path", nil)
	// PlannerNoPathMeter counts plans that failed with NoPathFound.
	PlannerNoPathMeter = metrics.NewRegisteredMeter("pathkeeper/planner/no_path", nil)

	// MiningScanTimer measures wall-clock time spent in a single world scan.
	MiningScanTimer = metrics.NewRegisteredTimer("pathkeeper/mining/scan", nil)
	// MiningKnownLocationsGauge tracks the size of MiningProcess.KnownLocations.
	MiningKnownLocationsGauge = metrics.NewRegisteredGauge("pathkeeper/mining/known_locations", nil)
	// MiningBlacklistGauge tracks the size of the active blacklist.
	MiningBlacklistGauge = metrics.NewRegisteredGauge("pathkeeper/mining/blacklist_size", nil)
	// MiningQuantityReachedMeter counts QuantityReached terminations.
	MiningQuantityReachedMeter = metrics.NewRegisteredMeter("pathkeeper/mining/quantity_reached", nil)
	// MiningVeinsFoundMeter counts ore veins detected per scan cycle.
	MiningVeinsFoundMeter = metrics.NewRegisteredMeter("pathkeeper/mining/veins_found", nil)
)

// TimePlan reports the duration since start to PlannerPlanTimer. Call via
// defer metrics.TimePlan(time.Now()).
func TimePlan(start time.Time) {
	PlannerPlanTimer.Update(time.Since(start))
}

// TimeScan reports the duration since start to MiningScanTimer.
func TimeScan(start time.Time) {
	MiningScanTimer.Update(time.Since(start))
}
