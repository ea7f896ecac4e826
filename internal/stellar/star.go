// Package stellar samples star classes from an HR-table-derived
// distribution and assigns the physical properties and procedural name
// that follow from the chosen class.
package stellar

import (
	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/spatial"
	"github.com/deepfield/genesis/internal/uidkit"
)

// Class is the closed set of stellar classifications this generator can
// produce. Represented as a sum type (not an interface hierarchy) so the
// compiler catches missing cases whenever the set grows.
type Class int

const (
	ClassM Class = iota
	ClassK
	ClassG
	ClassF
	ClassA
	ClassB
	ClassO
	ClassWhiteDwarf
	ClassNeutron
	ClassBlackHole
)

func (c Class) String() string {
	switch c {
	case ClassM:
		return "M"
	case ClassK:
		return "K"
	case ClassG:
		return "G"
	case ClassF:
		return "F"
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassO:
		return "O"
	case ClassWhiteDwarf:
		return "WhiteDwarf"
	case ClassNeutron:
		return "Neutron"
	case ClassBlackHole:
		return "BlackHole"
	default:
		return "Unknown"
	}
}

type classRow struct {
	class              Class
	cumulative         float64
	tempLo, tempHi     float64
	massLo, massHi     float64
	lumLo, lumHi       float64
}

// classTable is walked in this exact order; the first row whose cumulative
// value is >= the roll wins. The rows are listed in the spec's own order —
// see DESIGN.md for the Open Question about WhiteDwarf's effective
// reachability, preserved verbatim rather than "fixed".
var classTable = []classRow{
	{ClassM, 0.7650, 2400, 3700, 0.08, 0.45, 0.0001, 0.08},
	{ClassK, 0.8860, 3700, 5200, 0.45, 0.80, 0.08, 0.60},
	{ClassG, 0.9620, 5200, 6000, 0.80, 1.04, 0.60, 1.50},
	{ClassF, 0.9920, 6000, 7500, 1.04, 1.40, 1.50, 5.0},
	{ClassA, 0.9980, 7500, 10000, 1.40, 2.10, 5.0, 25},
	{ClassB, 0.9993, 10000, 30000, 2.10, 16.0, 25, 30000},
	{ClassO, 0.99933, 30000, 50000, 16, 90, 30000, 1e6},
	{ClassWhiteDwarf, 0.9998, 4000, 40000, 0.17, 1.33, 1e-4, 0.10},
	{ClassNeutron, 0.99998, 0, 0, 1.10, 2.16, 0, 0},
	{ClassBlackHole, 1.0000, 0, 0, 3.0, 100, 0, 0},
}

// Star is a generated star.
type Star struct {
	ID             uidkit.UID
	Name           string
	Position       spatial.Vec3
	Class          Class
	TemperatureK   float64
	MassSolar      float64
	LuminositySolar float64
	AgeGyr         float64
	Metallicity    float64
}

// Generate samples a single star at position from rng, deriving its ID
// from seed and salt (ID derivation never consumes rng — see uidkit).
func Generate(rng *prng.Rng, position spatial.Vec3, idSeed uint64, idSalt string) Star {
	class := sampleClass(rng)
	row := rowFor(class)

	t := rng.Double()
	temp := lerp(row.tempLo, row.tempHi, t)
	mass := lerp(row.massLo, row.massHi, t)
	lum := lerp(row.lumLo, row.lumHi, t)

	age := lerp(0.1, 13.0, rng.Double())
	metallicity := rng.Gaussian() * 0.3

	name := generateName(rng)

	return Star{
		ID:              uidkit.FromSeed(idSeed, idSalt),
		Name:            name,
		Position:        position,
		Class:           class,
		TemperatureK:    temp,
		MassSolar:       mass,
		LuminositySolar: lum,
		AgeGyr:          age,
		Metallicity:     metallicity,
	}
}

func sampleClass(rng *prng.Rng) Class {
	r := rng.Double()
	for _, row := range classTable {
		if r <= row.cumulative {
			return row.class
		}
	}
	return classTable[len(classTable)-1].class
}

func rowFor(class Class) classRow {
	for _, row := range classTable {
		if row.class == class {
			return row
		}
	}
	return classTable[0]
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

var namePrefixes = []string{
	"Xan", "Vel", "Kor", "Tera", "Ash", "Lyr", "Cen", "Drav", "Ery", "Fen",
	"Gor", "Hesk", "Ith", "Jov", "Kael", "Lun", "Myr", "Nox", "Orin", "Pyx",
}

var nameMiddles = []string{
	"an", "or", "eth", "ia", "ul", "os", "ara", "ek", "um", "ix",
}

var nameSuffixes = []string{
	"tar", "ius", "on", "is", "ara", "eth", "um", "or", "ax", "ell",
}

// generateName assembles a procedural star name from three syllable
// tables. RNG consumption order is fixed and must not change: prefix
// index, middle index, suffix index, include-middle flag — in that
// order, every time, whether or not the middle syllable ends up used.
func generateName(rng *prng.Rng) string {
	prefix := namePrefixes[rng.IntRange(len(namePrefixes))]
	middle := nameMiddles[rng.IntRange(len(nameMiddles))]
	suffix := nameSuffixes[rng.IntRange(len(nameSuffixes))]
	includeMiddle := rng.Double() < 0.6

	if includeMiddle {
		return prefix + middle + suffix
	}
	return prefix + suffix
}
