// Package planet generates the planets orbiting a system's primary star:
// orbit spacing, type, mass, radius, period, rotation, tilt, atmosphere,
// temperature, water coverage, magnetism, habitability, rings, moons, and
// resources.
//
// The RNG consumption order inside Generate is the determinism contract
// for this package — reordering any draw changes every output downstream
// of it for every seed. The order implemented here is documented inline
// and must never change without a version bump of the generator.
package planet

import (
	"math"

	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/uidkit"
)

// Type is the closed set of planet kinds.
type Type int

const (
	TypeRocky Type = iota
	TypeSuperEarth
	TypeOcean
	TypeDesert
	TypeLava
	TypeIron
	TypeCarbon
	TypeIce
	TypeGasGiant
	TypeIceGiant
	TypeRogue
)

func (t Type) String() string {
	switch t {
	case TypeRocky:
		return "Rocky"
	case TypeSuperEarth:
		return "SuperEarth"
	case TypeOcean:
		return "Ocean"
	case TypeDesert:
		return "Desert"
	case TypeLava:
		return "Lava"
	case TypeIron:
		return "Iron"
	case TypeCarbon:
		return "Carbon"
	case TypeIce:
		return "Ice"
	case TypeGasGiant:
		return "GasGiant"
	case TypeIceGiant:
		return "IceGiant"
	case TypeRogue:
		return "Rogue"
	default:
		return "Unknown"
	}
}

func (t Type) isGiant() bool {
	return t == TypeGasGiant || t == TypeIceGiant
}

// Resource indices. RES_EXOTIC is last and, uniquely, can appear on any
// planet type regardless of its other gating.
const (
	ResWater = iota
	ResMetals
	ResRareMetals
	ResSilicates
	ResHydrocarbons
	ResGases
	ResExotic
	ResCount
)

// MaxMoons and MaxPlanets bound per-system capacities (spec §6).
const (
	MaxMoons   = 12
	MaxPlanets = 20
)

// Planet is a single generated world.
type Planet struct {
	ID                  uidkit.UID
	Name                string
	Type                Type
	OrbitalRadiusAU     float64
	OrbitalPeriodDays   float64
	Eccentricity        float64
	AxialTiltDeg        float64
	RotationPeriodHours float64
	MassEarth           float64
	RadiusEarth         float64
	SurfaceTempK        float64
	AtmospherePressure  float64
	WaterCoverage       float64
	MagneticField       float64
	HabitabilityIndex   float64
	Rings               bool
	MoonCount           int
	Resources           [ResCount]float32

	Surveyed     bool
	DiscoveredBy uidkit.UID
	DiscoveryTick uint64
}

// HabitableZone returns the inner and outer radii (AU) of the habitable
// band for a star of the given luminosity (solar units).
func HabitableZone(luminosity float64) (inner, outer float64) {
	root := math.Sqrt(math.Max(luminosity, 0))
	return root * 0.95, root * 1.37
}

// Generate produces the i-th planet (0-indexed) around a star of mass
// massStarSolar and luminosity lumStarSolar.
func Generate(rng *prng.Rng, index int, massStarSolar, lumStarSolar float64, idSeed uint64, idSalt string) Planet {
	// 1. Orbit spacing.
	var baseAU float64
	if index == 0 {
		baseAU = 0.1 + 0.3*rng.Double()
	} else {
		baseAU = (0.2 + 0.2*rng.Double()) * math.Pow(1.4+0.8*rng.Double(), float64(index))
	}
	orbitAU := baseAU * math.Sqrt(math.Max(lumStarSolar, 0.01))

	inner, outer := HabitableZone(lumStarSolar)

	// 2. Type pick: zone-conditioned weighted draw.
	t := pickType(rng, orbitAU, inner, outer)

	// 3. Mass.
	mLo, mHi := massRange(t)
	mass := mLo + (mHi-mLo)*rng.Double()

	// 4. Radius — derived, no draw.
	radius := radiusFor(t, mass)

	// 5. Orbital period via Kepler's third law — derived, no draw.
	periodYears := math.Sqrt(math.Pow(orbitAU, 3) / math.Max(massStarSolar, 0.01))
	periodDays := periodYears * 365.25

	// 6. Eccentricity: base roll doubles as the 5%-override coin flip.
	eccRoll := rng.Double()
	var ecc float64
	if eccRoll < 0.05 {
		ecc = 0.3 + rng.Double()*0.5
	} else {
		ecc = eccRoll * 0.3
	}

	// 7. Axial tilt: same pattern, 10% extreme branch.
	tiltRoll := rng.Double()
	var tilt float64
	if tiltRoll < 0.10 {
		tilt = 45 + rng.Double()*135
	} else {
		tilt = tiltRoll * 180
	}

	// 8. Rotation period: giants override entirely.
	var rotation float64
	if t.isGiant() {
		rotation = 8 + rng.Double()*20
	} else {
		rotation = 5 + rng.Double()*200
	}

	// 9. Atmosphere pressure, per-type range.
	aLo, aHi := atmosphereRange(t)
	atm := aLo + (aHi-aLo)*rng.Double()

	// 10. Temperature — derived from flux and atmosphere, no draw.
	flux := lumStarSolar / (orbitAU * orbitAU)
	temp := 278 * math.Pow(math.Max(flux, 0), 0.25)
	if atm > 0.1 && !t.isGiant() {
		temp *= 1 + 0.1*math.Log(1+atm)
	}

	// 11. Water coverage.
	water := waterCoverage(rng, t, temp, atm)

	// 12. Magnetic field.
	mag := magneticField(rng, t, mass, rotation)

	// 13. Habitability — derived composite, no draw.
	habitability := habitabilityIndex(temp, atm, water, mag, mass)

	// 14. Rings — only GasGiant/IceGiant roll.
	rings := false
	switch t {
	case TypeGasGiant:
		rings = rng.Double() < 0.40
	case TypeIceGiant:
		rings = rng.Double() < 0.20
	}

	// 15. Moons.
	moons := moonCount(rng, t, mass)

	// 16. Resources.
	resources := generateResources(rng, t)

	return Planet{
		ID:                  uidkit.FromSeed(idSeed, idSalt),
		Name:                "", // assigned by the caller, which knows the system name
		Type:                t,
		OrbitalRadiusAU:     orbitAU,
		OrbitalPeriodDays:   periodDays,
		Eccentricity:        ecc,
		AxialTiltDeg:        tilt,
		RotationPeriodHours: rotation,
		MassEarth:           mass,
		RadiusEarth:         radius,
		SurfaceTempK:        temp,
		AtmospherePressure:  atm,
		WaterCoverage:       water,
		MagneticField:       mag,
		HabitabilityIndex:   habitability,
		Rings:               rings,
		MoonCount:           moons,
		Resources:           resources,
		DiscoveredBy:        uidkit.Nil,
	}
}

func radiusFor(t Type, mass float64) float64 {
	switch t {
	case TypeGasGiant:
		return math.Pow(mass, 0.06) * 11
	case TypeIceGiant:
		return math.Pow(mass, 0.06) * 4
	default:
		return math.Pow(mass, 0.27)
	}
}

func waterCoverage(rng *prng.Rng, t Type, temp, atm float64) float64 {
	r := rng.Double()
	switch t {
	case TypeOcean:
		return 0.6 + 0.4*r
	case TypeSuperEarth, TypeRocky:
		if temp > 200 && temp < 400 && atm > 0.01 {
			return r * 0.8
		}
		return 0
	default:
		return 0
	}
}

func magneticField(rng *prng.Rng, t Type, mass, rotation float64) float64 {
	r := rng.Double()
	switch {
	case t == TypeGasGiant:
		return 5 + 15*r
	case mass > 0.5 && rotation < 48:
		return 0.1 + 2*r
	default:
		return 0.1 * r
	}
}

func habitabilityIndex(temp, atm, water, mag, mass float64) float64 {
	if !(temp > 200 && temp < 340) {
		return 0
	}
	tempScore := clamp01(1 - math.Abs(temp-295)/95)
	atmScore := clamp01(1 - math.Abs(atm-1)/3)
	waterScore := clamp01(water)
	magScore := clamp01(mag / 2)
	massScore := clamp01(1 - math.Abs(mass-1)/9)

	composite := 0.3*tempScore + 0.2*atmScore + 0.2*waterScore + 0.15*magScore + 0.15*massScore
	return clamp01(composite)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func moonCount(rng *prng.Rng, t Type, mass float64) int {
	var n int
	switch {
	case t == TypeGasGiant:
		n = int(rng.Range(8)) + 2
	case t == TypeIceGiant:
		n = int(rng.Range(5)) + 1
	case mass > 0.1:
		n = int(rng.Range(3))
	default:
		n = 0
	}
	if n > MaxMoons {
		n = MaxMoons
	}
	return n
}

// resourceGate names the resources a given planet type can carry and the
// base/coefficient for each.
type resourceGate struct {
	index      int
	base, coef float32
}

func resourceGatesFor(t Type) []resourceGate {
	switch t {
	case TypeRocky:
		return []resourceGate{{ResMetals, 0.2, 0.3}, {ResSilicates, 0.3, 0.4}}
	case TypeSuperEarth:
		return []resourceGate{{ResMetals, 0.25, 0.35}, {ResSilicates, 0.25, 0.35}, {ResRareMetals, 0.05, 0.15}}
	case TypeOcean:
		return []resourceGate{{ResWater, 0.5, 0.5}, {ResHydrocarbons, 0.1, 0.2}}
	case TypeDesert:
		return []resourceGate{{ResSilicates, 0.3, 0.3}, {ResRareMetals, 0.05, 0.2}}
	case TypeLava:
		return []resourceGate{{ResMetals, 0.3, 0.4}, {ResRareMetals, 0.1, 0.3}}
	case TypeIron:
		return []resourceGate{{ResMetals, 0.5, 0.5}, {ResRareMetals, 0.1, 0.25}}
	case TypeCarbon:
		return []resourceGate{{ResHydrocarbons, 0.3, 0.4}, {ResSilicates, 0.1, 0.2}}
	case TypeIce:
		return []resourceGate{{ResWater, 0.4, 0.4}, {ResGases, 0.05, 0.15}}
	case TypeGasGiant:
		return []resourceGate{{ResGases, 0.6, 0.4}, {ResHydrocarbons, 0.1, 0.2}}
	case TypeIceGiant:
		return []resourceGate{{ResGases, 0.4, 0.3}, {ResWater, 0.1, 0.2}}
	case TypeRogue:
		return []resourceGate{{ResMetals, 0.05, 0.1}, {ResSilicates, 0.05, 0.1}}
	default:
		return nil
	}
}

func generateResources(rng *prng.Rng, t Type) [ResCount]float32 {
	var res [ResCount]float32
	for _, gate := range resourceGatesFor(t) {
		r := float32(rng.Double())
		res[gate.index] = gate.base + gate.coef*r
	}
	if rng.Double() < 0.005 {
		res[ResExotic] = float32(0.5 + 0.5*rng.Double())
	}
	return res
}

func massRange(t Type) (lo, hi float64) {
	switch t {
	case TypeRocky:
		return 0.05, 3.0
	case TypeSuperEarth:
		return 2.0, 10.0
	case TypeOcean:
		return 0.5, 5.0
	case TypeDesert:
		return 0.1, 3.0
	case TypeLava:
		return 0.05, 2.0
	case TypeIron:
		return 0.1, 2.5
	case TypeCarbon:
		return 0.1, 3.0
	case TypeIce:
		return 0.05, 2.0
	case TypeGasGiant:
		return 20, 500
	case TypeIceGiant:
		return 8, 30
	case TypeRogue:
		return 0.01, 5.0
	default:
		return 0.1, 1.0
	}
}

func atmosphereRange(t Type) (lo, hi float64) {
	switch t {
	case TypeRocky:
		return 0, 2
	case TypeSuperEarth:
		return 0, 5
	case TypeOcean:
		return 0.5, 3
	case TypeDesert:
		return 0, 1.5
	case TypeLava:
		return 0, 0.5
	case TypeIron:
		return 0, 0.3
	case TypeCarbon:
		return 0, 1
	case TypeIce:
		return 0, 0.2
	case TypeGasGiant:
		return 100, 1000
	case TypeIceGiant:
		return 50, 500
	case TypeRogue:
		return 0, 0
	default:
		return 0, 1
	}
}

// zone-conditioned weighted type table. Exact thresholds are this
// implementation's own invented data (the original numeric table was not
// recoverable from the retrieved materials) — see DESIGN.md.
func pickType(rng *prng.Rng, orbitAU, innerHZ, outerHZ float64) Type {
	r := rng.Double()

	switch {
	case orbitAU < innerHZ*0.3:
		return pickWeighted(r, []weighted{
			{TypeLava, 0.50}, {TypeIron, 0.30}, {TypeRocky, 0.15}, {TypeCarbon, 0.05},
		})
	case orbitAU < innerHZ:
		return pickWeighted(r, []weighted{
			{TypeRocky, 0.35}, {TypeDesert, 0.25}, {TypeSuperEarth, 0.20}, {TypeIron, 0.10}, {TypeCarbon, 0.10},
		})
	case orbitAU <= outerHZ:
		return pickWeighted(r, []weighted{
			{TypeRocky, 0.30}, {TypeSuperEarth, 0.25}, {TypeOcean, 0.25}, {TypeDesert, 0.15}, {TypeCarbon, 0.05},
		})
	case orbitAU < outerHZ*4:
		return pickWeighted(r, []weighted{
			{TypeIce, 0.35}, {TypeSuperEarth, 0.15}, {TypeGasGiant, 0.30}, {TypeIceGiant, 0.20},
		})
	default:
		return pickWeighted(r, []weighted{
			{TypeIceGiant, 0.40}, {TypeGasGiant, 0.35}, {TypeIce, 0.15}, {TypeRogue, 0.10},
		})
	}
}

type weighted struct {
	t Type
	w float64
}

func pickWeighted(r float64, ws []weighted) Type {
	var cum float64
	for _, w := range ws {
		cum += w.w
		if r <= cum {
			return w.t
		}
	}
	return ws[len(ws)-1].t
}
