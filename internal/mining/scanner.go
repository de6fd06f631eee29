package mining

import (
	"sort"

	"github.com/kestrelbot/pathkeeper/internal/world"
)

// PaletteKind is the storage strategy a chunk section uses for its block
// states, per spec §4.5's palette prefilter.
type PaletteKind int

const (
	// PaletteSingleValue means the whole section is one block state.
	PaletteSingleValue PaletteKind = iota
	// PaletteLinear is a small (<=16, typically) list of distinct states.
	PaletteLinear
	// PaletteHashmap is a larger list, still enumerable.
	PaletteHashmap
	// PaletteGlobal means the section indexes directly into the global
	// registry id space and carries no compact local list: a prefilter
	// cannot reject it, so the section must be scanned block-by-block.
	PaletteGlobal
)

// Palette describes one chunk section's block-state dictionary, cheap
// enough to consult without walking all 4096 blocks in the section.
type Palette struct {
	Kind   PaletteKind
	Values []world.BlockState // unused (nil) for PaletteGlobal
}

// MayContain reports whether the section could hold any of targets,
// without a full block-by-block scan. PaletteGlobal always returns
// true, forcing the caller to fall back to scanning the section.
func (p Palette) MayContain(targets map[world.BlockState]struct{}) bool {
	if p.Kind == PaletteGlobal {
		return true
	}
	for _, v := range p.Values {
		if _, ok := targets[v]; ok {
			return true
		}
	}
	return false
}

// SectionSource is the host's chunk store, consulted by the scanner for
// which chunks are currently loaded and each section's palette. Actual
// block state reads still go through world.Provider.
type SectionSource interface {
	LoadedChunks() []world.ChunkPos
	// SectionYRange returns the inclusive [minY, maxY] section indices
	// present in a loaded chunk (each section spanning 16 vertical
	// blocks starting at sectionY*16).
	SectionYRange(chunk world.ChunkPos) (minY, maxY int32)
	PaletteAt(chunk world.ChunkPos, sectionY int32) Palette
}

// ScanRequest parameterises one world scan.
type ScanRequest struct {
	Player       world.BlockPos
	Targets      map[world.BlockState]struct{}
	MaxDistance  int32 // blocks; converted to a chunk radius internally
	PreferYLow   int32
	PreferYHigh  int32
	HasPreferY   bool
	MaxLocations int
}

// Scanner enumerates candidate ore positions via a square-spiral chunk
// walk with Y-priority section ordering and a palette prefilter, per
// spec §4.5.
type Scanner struct{}

// NewScanner returns a stateless Scanner; ore-location caching lives in
// Process.KnownLocations, not here.
func NewScanner() *Scanner { return &Scanner{} }

// Scan runs one bounded world scan and returns matching positions sorted
// by Manhattan distance to req.Player, capped at req.MaxLocations.
func (s *Scanner) Scan(req ScanRequest, provider world.Provider, sections SectionSource) []world.BlockPos {
	playerChunk := world.ChunkOf(req.Player)
	chunkRadius := req.MaxDistance/16 + 1

	loaded := make(map[world.ChunkPos]struct{})
	for _, c := range sections.LoadedChunks() {
		loaded[c] = struct{}{}
	}

	var found []world.BlockPos
	for _, chunk := range spiralChunks(playerChunk, chunkRadius) {
		if _, ok := loaded[chunk]; !ok {
			continue
		}
		minY, maxY := sections.SectionYRange(chunk)
		for _, sectionY := range prioritisedYSections(minY, maxY, req.Player.Y, req.HasPreferY, req.PreferYLow, req.PreferYHigh) {
			palette := sections.PaletteAt(chunk, sectionY)
			if !palette.MayContain(req.Targets) {
				continue
			}
			found = append(found, scanSection(provider, chunk, sectionY, req.Targets)...)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].ManhattanDistance(req.Player) < found[j].ManhattanDistance(req.Player)
	})
	if req.MaxLocations > 0 && len(found) > req.MaxLocations {
		found = found[:req.MaxLocations]
	}
	return found
}

// scanSection walks every block in one 16x16x16 section and collects
// positions whose state is in targets.
func scanSection(provider world.Provider, chunk world.ChunkPos, sectionY int32, targets map[world.BlockState]struct{}) []world.BlockPos {
	var out []world.BlockPos
	baseX, baseZ := chunk.X*16, chunk.Z*16
	baseY := sectionY * 16
	for dx := int32(0); dx < 16; dx++ {
		for dy := int32(0); dy < 16; dy++ {
			for dz := int32(0); dz < 16; dz++ {
				pos := world.BlockPos{X: baseX + dx, Y: baseY + dy, Z: baseZ + dz}
				if _, ok := targets[provider.BlockStateAt(pos)]; ok {
					out = append(out, pos)
				}
			}
		}
	}
	return out
}

// spiralChunks enumerates chunk columns outward from center in a square
// spiral out to radius chunks, matching the reference scanner's
// nearest-first traversal order.
func spiralChunks(center world.ChunkPos, radius int32) []world.ChunkPos {
	chunks := []world.ChunkPos{center}
	x, z := int32(0), int32(0)
	dx, dz := int32(1), int32(0)
	segmentLength, segmentPassed := int32(1), int32(0)
	for r := int32(1); r <= (2*radius+1)*(2*radius+1); r++ {
		x += dx
		z += dz
		if x >= -radius && x <= radius && z >= -radius && z <= radius {
			chunks = append(chunks, world.ChunkPos{X: center.X + x, Z: center.Z + z})
		}
		segmentPassed++
		if segmentPassed == segmentLength {
			segmentPassed = 0
			dx, dz = -dz, dx
			if dz == 0 {
				segmentLength++
			}
		}
		if x < -radius-1 || x > radius+1 || z < -radius-1 || z > radius+1 {
			break
		}
	}
	return chunks
}

// prioritisedYSections orders a chunk's section indices so the band
// overlapping [preferYLow, preferYHigh] (if set) comes first, ordered by
// distance from the player's Y within each group.
func prioritisedYSections(minY, maxY, playerY int32, hasPreferY bool, preferYLow, preferYHigh int32) []int32 {
	all := make([]int32, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		all = append(all, y)
	}
	inBand := func(sectionY int32) bool {
		if !hasPreferY {
			return false
		}
		lowSection, highSection := preferYLow/16, preferYHigh/16
		return sectionY >= lowSection && sectionY <= highSection
	}
	sort.SliceStable(all, func(i, j int) bool {
		bi, bj := inBand(all[i]), inBand(all[j])
		if bi != bj {
			return bi
		}
		di := absInt32(all[i]*16 - playerY)
		dj := absInt32(all[j]*16 - playerY)
		return di < dj
	})
	return all
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
