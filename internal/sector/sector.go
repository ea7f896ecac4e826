// Package sector generates the systems inside a single galactic sector
// cube: how many stars it holds (from the spatial density model) and
// where each one sits.
package sector

import (
	"fmt"

	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/spatial"
	"github.com/deepfield/genesis/internal/system"
)

// SideLengthLY is the edge length of a sector cube in light-years.
const SideLengthLY = 100.0

// Coord identifies a sector by its integer grid index.
type Coord struct {
	X, Y, Z int32
}

// corner returns the galactic coordinate at the sector cube's lower corner.
func (c Coord) corner() spatial.Vec3 {
	return spatial.Vec3{
		X: float64(c.X) * SideLengthLY,
		Y: float64(c.Y) * SideLengthLY,
		Z: float64(c.Z) * SideLengthLY,
	}
}

// Sector is a populated cube of the galaxy.
type Sector struct {
	Coord   Coord
	Systems []system.System
}

// Generate derives a sector's contents purely from seed and coord: one RNG
// stream is derived from (seed, coord) and consumed sequentially for the
// whole sector — first for the star count, then once per axis for each
// system's position within the cube, in index order. The density-derived
// count is capped at maxSystems before the placement loop runs, so a
// caller-supplied ceiling never costs placement work it won't use. Two
// calls with the same seed, coord, and maxSystems always produce an
// identical sector.
func Generate(seed uint64, coord Coord, maxSystems int) Sector {
	rng := prng.Derive(seed, coord.X, coord.Y, coord.Z)
	corner := coord.corner()
	count := spatial.SectorStarCount(&rng, corner.X, corner.Y, corner.Z)
	if count > maxSystems {
		count = maxSystems
	}

	systems := make([]system.System, 0, count)
	for i := 0; i < count; i++ {
		position := spatial.Vec3{
			X: corner.X + rng.Double()*SideLengthLY,
			Y: corner.Y + rng.Double()*SideLengthLY,
			Z: corner.Z + rng.Double()*SideLengthLY,
		}

		salt := fmt.Sprintf("sector_%d_%d_%d_sys%d", coord.X, coord.Y, coord.Z, i)
		sys := system.Generate(&rng, position, seed, salt)
		systems = append(systems, sys)
	}

	return Sector{Coord: coord, Systems: systems}
}
