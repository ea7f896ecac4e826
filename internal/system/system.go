// Package system assembles a star system: its star (or stars, for the
// rarer multi-star cases) and the planets orbiting the primary.
package system

import (
	"fmt"

	"github.com/deepfield/genesis/internal/planet"
	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/spatial"
	"github.com/deepfield/genesis/internal/stellar"
	"github.com/deepfield/genesis/internal/uidkit"
)

// Multiplicity is the number of gravitationally bound stars in a system.
type Multiplicity int

const (
	Single  Multiplicity = 1
	Binary  Multiplicity = 2
	Trinary Multiplicity = 3
)

// Companion is a non-primary star, offset slightly from the primary's
// position rather than placed by orbital mechanics.
type Companion struct {
	Star     stellar.Star
	Position spatial.Vec3
}

// System is a fully generated star system.
type System struct {
	ID         uidkit.UID
	Name       string
	Position   spatial.Vec3
	Primary    stellar.Star
	Companions []Companion
	Planets    []planet.Planet
}

// Generate produces a complete system at position, rooted at idSeed/idSalt.
// RNG consumption order: multiplicity roll, primary star, each companion
// star in turn, planet count, then each planet in index order. This order is the determinism contract for the package.
func Generate(rng *prng.Rng, position spatial.Vec3, idSeed uint64, idSalt string) System {
	mult := sampleMultiplicity(rng)

	primary := stellar.Generate(rng, position, idSeed, idSalt+"_star0")

	var companions []Companion
	for i := 1; i < int(mult); i++ {
		companionPos := spatial.Vec3{
			X: position.X + 0.0005,
			Y: position.Y + 0.0005,
			Z: position.Z,
		}
		star := stellar.Generate(rng, companionPos, idSeed, fmt.Sprintf("%s_star%d", idSalt, i))
		companions = append(companions, Companion{Star: star, Position: companionPos})
	}

	planetCount := samplePlanetCount(rng, primary.Class, primary.Metallicity, mult)

	planets := make([]planet.Planet, 0, planetCount)
	for i := 0; i < planetCount; i++ {
		p := planet.Generate(rng, i, primary.MassSolar, primary.LuminositySolar, idSeed, fmt.Sprintf("%s_planet%d", idSalt, i))
		p.Name = fmt.Sprintf("%s %s", primary.Name, romanNumeral(i+1))
		planets = append(planets, p)
	}

	return System{
		ID:         uidkit.FromSeed(idSeed, idSalt+"_system"),
		Name:       primary.Name,
		Position:   position,
		Primary:    primary,
		Companions: companions,
		Planets:    planets,
	}
}

func sampleMultiplicity(rng *prng.Rng) Multiplicity {
	r := rng.Double()
	switch {
	case r < 0.70:
		return Single
	case r < 0.95:
		return Binary
	default:
		return Trinary
	}
}

// samplePlanetCount picks a baseline planet count biased by the primary's
// class: compact, high-energy remnants (neutron stars, black holes) tend
// to host far fewer planets than main-sequence stars. Metal-rich primaries
// get a bonus, and multi-star systems are thinned out.
func samplePlanetCount(rng *prng.Rng, class stellar.Class, metallicity float64, mult Multiplicity) int {
	var n int
	switch class {
	case stellar.ClassBlackHole, stellar.ClassNeutron:
		n = int(rng.Range(3))
	case stellar.ClassO, stellar.ClassB:
		n = 1 + int(rng.Range(4))
	default:
		n = 2 + int(rng.Range(10))
	}

	if metallicity > 0.1 {
		n += 1 + int(rng.Range(2))
	}
	if mult != Single {
		n = n * 2 / 3
	}

	if n < 0 {
		n = 0
	}
	if n > planet.MaxPlanets {
		n = planet.MaxPlanets
	}
	return n
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanNumeral(n int) string {
	s := ""
	for _, d := range romanDigits {
		for n >= d.value {
			s += d.symbol
			n -= d.value
		}
	}
	return s
}
