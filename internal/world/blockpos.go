// Package world provides the per-plan, read-mostly view of voxel block
// state that the planner and mining process query during a single plan.
package world

import "math"

// BlockPos is an absolute integer voxel coordinate.
type BlockPos struct {
	X, Y, Z int32
}

// Add returns pos offset by the given deltas.
func (p BlockPos) Add(dx, dy, dz int32) BlockPos {
	return BlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Up returns pos shifted up by n blocks.
func (p BlockPos) Up(n int32) BlockPos { return p.Add(0, n, 0) }

// Down returns pos shifted down by n blocks.
func (p BlockPos) Down(n int32) BlockPos { return p.Add(0, -n, 0) }

// DistanceSquared returns the squared Euclidean distance to other.
func (p BlockPos) DistanceSquared(other BlockPos) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance to other.
func (p BlockPos) Distance(other BlockPos) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// ManhattanDistance returns the L1 distance to other.
func (p BlockPos) ManhattanDistance(other BlockPos) int64 {
	return int64(abs32(p.X-other.X)) + int64(abs32(p.Y-other.Y)) + int64(abs32(p.Z-other.Z))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// ChunkPos identifies a 16x16 column of chunk sections.
type ChunkPos struct {
	X, Z int32
}

// ChunkOf returns the chunk column containing pos.
func ChunkOf(pos BlockPos) ChunkPos {
	return ChunkPos{X: floorDiv16(pos.X), Z: floorDiv16(pos.Z)}
}

func floorDiv16(v int32) int32 {
	if v >= 0 {
		return v / 16
	}
	return -((-v + 15) / 16)
}

// RelBlockPos is a BlockPos expressed relative to a plan-local origin, used
// as a compact A* node key so plans far from the world origin still hash
// cheaply.
type RelBlockPos struct {
	X, Y, Z int32
}

// NewRelBlockPos expresses abs relative to origin.
func NewRelBlockPos(origin, abs BlockPos) RelBlockPos {
	return RelBlockPos{X: abs.X - origin.X, Y: abs.Y - origin.Y, Z: abs.Z - origin.Z}
}

// Abs converts a relative position back to an absolute one given origin.
func (p RelBlockPos) Abs(origin BlockPos) BlockPos {
	return BlockPos{X: origin.X + p.X, Y: origin.Y + p.Y, Z: origin.Z + p.Z}
}

// Add returns p offset by the given deltas.
func (p RelBlockPos) Add(dx, dy, dz int32) RelBlockPos {
	return RelBlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}
