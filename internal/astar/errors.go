package astar

import "errors"

// ErrNoPathFound is returned when the open set empties before
// min_timeout with no node ever improving on the start's heuristic.
var ErrNoPathFound = errors.New("astar: no path found")

// ErrInterrupted is returned when ctx is cancelled mid-search, per the
// spec's "a new Goto event supersedes any in-flight plan" rule.
var ErrInterrupted = errors.New("astar: plan interrupted")
