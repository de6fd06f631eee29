// Package botlog provides a package-scoped logger for the planning core,
// wrapping go-ethereum/log the way the teacher scopes loggers per
// subsystem (see miner.Miner's embedded log.Logger) instead of calling
// the package-level log functions directly everywhere.
package botlog

import "github.com/ethereum/go-ethereum/log"

// Planner is the logger used by internal/astar, tagged so its output is
// filterable independently of the mining planner's.
var Planner = log.Root().With("component", "planner")

// Mining is the logger used by internal/mining.
var Mining = log.Root().With("component", "mining")
