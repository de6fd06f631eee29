package water

import "github.com/kestrelbot/pathkeeper/internal/world"

// DistanceToAirColumn scans upward from pos and reports the number of
// blocks to the first non-water passable block, up to max. ok is false
// if no such block is found within max blocks.
func DistanceToAirColumn(w *world.CachedWorld, pos world.BlockPos, max int) (distance int, ok bool) {
	for i := 0; i <= max; i++ {
		p := pos.Up(int32(i))
		if w.IsPassable(p) && !w.IsWater(p) {
			return i, true
		}
	}
	return 0, false
}
