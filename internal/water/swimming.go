package water

import "github.com/kestrelbot/pathkeeper/internal/costs"

// SwimmingState tracks the avatar's submerged-move history along a
// candidate path: consecutive submerged moves (needed to unlock
// sprint-swimming) and estimated remaining air, which feeds an
// increasingly steep penalty as air runs low.
type SwimmingState struct {
	ConsecutiveSwimMoves int
	EstimatedAirTicks    int
	SprintSwimming       bool
}

// NewSwimmingState returns a state for an avatar that just surfaced with
// full air.
func NewSwimmingState() SwimmingState {
	return SwimmingState{EstimatedAirTicks: costs.MaxAirTicks}
}

// Advance returns the state after one more submerged move, and the air
// depletion cost penalty that move incurs.
func (s SwimmingState) Advance() (next SwimmingState, penalty float64) {
	next = s
	next.ConsecutiveSwimMoves++
	if next.EstimatedAirTicks > 0 {
		next.EstimatedAirTicks--
	}
	next.SprintSwimming = next.ConsecutiveSwimMoves >= costs.SprintSwimMinConsecutive

	airRatio := float64(next.EstimatedAirTicks) / float64(costs.MaxAirTicks)
	if airRatio < 0.3 {
		penalty = costs.AirDepletionPenalty * (1 - airRatio) * (1 - airRatio)
	}
	if next.EstimatedAirTicks <= 20 {
		penalty += costs.DrowningAvoidanceCost
	}
	return next, penalty
}

// Surface returns the state after breaking the surface: air resets to
// full and the sprint-swim streak resets, since the move catalogue
// charges a fresh WaterEntryCost the next time the avatar submerges.
func (s SwimmingState) Surface() SwimmingState {
	return SwimmingState{EstimatedAirTicks: costs.MaxAirTicks}
}

// TraverseCost is the cost of one horizontal swimming move from within
// this state, combining the base swim speed with flow resistance and air
// depletion penalties, and returns the resulting next state. bonus should
// be true when the target has a clear air column within 3 blocks, applying
// the spec's 0.9 surfacing discount.
func (s SwimmingState) TraverseCost(flowing, bonus bool) (cost float64, next SwimmingState) {
	base := costs.SwimCost
	if s.SprintSwimming {
		base = costs.SprintSwimCost
	}
	if flowing {
		base += costs.FlowResistanceCost
	}
	if bonus {
		base *= 0.9
	}
	next, penalty := s.Advance()
	return base + penalty, next
}

// AscendCost is the cost of swimming up one block. bonus should be true
// when the target has a clear air column within 3 blocks, applying the
// spec's 0.7 surfacing discount.
func (s SwimmingState) AscendCost(bonus bool) (cost float64, next SwimmingState) {
	next, penalty := s.Advance()
	base := costs.WaterAscendCost
	if bonus {
		base *= 0.7
	}
	return base + penalty, next
}

// DescendCost is the cost of swimming down one block, with the spec's
// descent guard: 1.5x when air is low, 1.2x when no air access exists
// within 4 blocks above the source.
func (s SwimmingState) DescendCost(lowAir, noAirAccess bool) (cost float64, next SwimmingState) {
	next, penalty := s.Advance()
	base := costs.WaterDescendCost
	if lowAir {
		base *= 1.5
	}
	if noAirAccess {
		base *= 1.2
	}
	return base + penalty, next
}
