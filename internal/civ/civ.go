// Package civ generates alien civilizations bound to a habitable planet:
// whether one exists at all, then its place on the civilization ladder,
// disposition, tech level, biology, political state, artifacts, and
// cultural traits.
package civ

import (
	"github.com/deepfield/genesis/internal/errkit"
	"github.com/deepfield/genesis/internal/planet"
	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/uidkit"
)

// Type is the 13-level civilization ladder, walked in this exact order.
type Type int

const (
	Microbial Type = iota
	Multicellular
	ComplexEcosystem
	PreTool
	ToolUsing
	PreIndustrial
	Extinct
	Industrial
	InformationAge
	Spacefaring
	AdvancedSpacefaring
	PostBiological
	Transcended
)

func (t Type) String() string {
	switch t {
	case Microbial:
		return "Microbial"
	case Multicellular:
		return "Multicellular"
	case ComplexEcosystem:
		return "ComplexEcosystem"
	case PreTool:
		return "PreTool"
	case ToolUsing:
		return "ToolUsing"
	case PreIndustrial:
		return "PreIndustrial"
	case Extinct:
		return "Extinct"
	case Industrial:
		return "Industrial"
	case InformationAge:
		return "InformationAge"
	case Spacefaring:
		return "Spacefaring"
	case AdvancedSpacefaring:
		return "AdvancedSpacefaring"
	case PostBiological:
		return "PostBiological"
	case Transcended:
		return "Transcended"
	default:
		return "Unknown"
	}
}

func (t Type) preSapient() bool {
	switch t {
	case Microbial, Multicellular, ComplexEcosystem, PreTool:
		return true
	default:
		return false
	}
}

type ladderRow struct {
	t          Type
	cumulative float64
}

var ladder = []ladderRow{
	{Microbial, 0.40},
	{Multicellular, 0.60},
	{ComplexEcosystem, 0.75},
	{PreTool, 0.82},
	{ToolUsing, 0.87},
	{PreIndustrial, 0.90},
	{Extinct, 0.93},
	{Industrial, 0.95},
	{InformationAge, 0.97},
	{Spacefaring, 0.98},
	{AdvancedSpacefaring, 0.99},
	{PostBiological, 0.995},
	{Transcended, 1.0},
}

// Disposition is a civilization's stance toward contact.
type Disposition int

const (
	DispositionUnaware Disposition = iota
	DispositionFriendly
	DispositionNeutral
	DispositionHostile
	DispositionIsolationist
)

func (d Disposition) String() string {
	switch d {
	case DispositionUnaware:
		return "Unaware"
	case DispositionFriendly:
		return "Friendly"
	case DispositionNeutral:
		return "Neutral"
	case DispositionHostile:
		return "Hostile"
	case DispositionIsolationist:
		return "Isolationist"
	default:
		return "Unknown"
	}
}

var dispositions = []Disposition{DispositionFriendly, DispositionNeutral, DispositionHostile, DispositionIsolationist}

// Biology is a civilization's biochemical basis.
type Biology int

const (
	BiologyCarbon Biology = iota
	BiologySilicon
	BiologyAmmonia
	BiologyExotic
)

func (b Biology) String() string {
	switch b {
	case BiologyCarbon:
		return "Carbon"
	case BiologySilicon:
		return "Silicon"
	case BiologyAmmonia:
		return "Ammonia"
	case BiologyExotic:
		return "Exotic"
	default:
		return "Unknown"
	}
}

// State is a civilization's political/demographic trajectory.
type State int

const (
	StateThriving State = iota
	StateDeclining
	StateEndangered
	StateExtinct
	StateAscending
)

func (s State) String() string {
	switch s {
	case StateThriving:
		return "Thriving"
	case StateDeclining:
		return "Declining"
	case StateEndangered:
		return "Endangered"
	case StateExtinct:
		return "Extinct"
	case StateAscending:
		return "Ascending"
	default:
		return "Unknown"
	}
}

// MaxArtifacts and MaxCulturalTraits bound per-civilization slices.
const (
	MaxArtifacts      = 6
	MaxCulturalTraits = 5
)

var namePrefixes = []string{
	"Zan", "Qor", "Thal", "Vey", "Sorn", "Ith", "Umbr", "Kresh", "Dray", "Nyla",
	"Ossi", "Velk", "Ashur", "Bren", "Corin", "Dusk",
}

var nameSuffixes = []string{
	"dori", "vash", "theon", "mara", "kesh", "rin", "zael", "thos", "nyar", "oom",
	"ess", "ith", "ora", "ukk", "yne", "eld",
}

var artifactTable = []string{
	"shattered obelisk", "resonant monolith", "dormant seed-ark", "subterranean archive",
	"orbital ring fragment", "memory crystal", "terraform engine husk",
}

var culturalTraitTable = []string{
	"ancestor veneration", "collective consciousness", "ritual war", "post-scarcity economy",
	"nomadic diaspora", "monument building", "oral epics", "strict hierarchy",
	"radical individualism", "planetary stewardship",
}

// Civilization is a generated alien society bound to a single planet.
type Civilization struct {
	ID              uidkit.UID
	HomeworldID     uidkit.UID
	Name            string
	Type            Type
	Disposition     Disposition
	TechLevel       uint8
	Biology         Biology
	State           State
	DiscoveredTick  uint64
	DiscoveredBy    uidkit.UID
	Artifacts       []string
	CulturalTraits  []string
}

// CheckPlanet computes the encounter probability for a planet and rolls
// against it. water and habitability are both expected in [0,1].
// bonusType reports whether the planet's type doubles the chance
// (Rocky, SuperEarth, Ocean per the source table).
func CheckPlanet(rng *prng.Rng, habitability, water float64, bonusType bool) bool {
	mult := 1.0
	if bonusType {
		mult = 2.0
	}
	p := habitability * 1e-4 * (1 + water) * mult
	return rng.Double() < p
}

// Generate rolls CheckPlanet against p and, on success, produces a
// civilization bound to p's homeworld. A failed roll returns a nil
// civilization and errkit.ErrNoCivGenerated; the caller applies no further
// mutation in that case.
func Generate(rng *prng.Rng, p *planet.Planet, discoveredBy uidkit.UID, tick uint64, idSeed uint64, idSalt string) (*Civilization, error) {
	bonus := p.Type == planet.TypeRocky || p.Type == planet.TypeSuperEarth || p.Type == planet.TypeOcean
	if !CheckPlanet(rng, p.HabitabilityIndex, p.WaterCoverage, bonus) {
		return nil, errkit.ErrNoCivGenerated
	}

	t := sampleType(rng)

	prefix := namePrefixes[rng.IntRange(len(namePrefixes))]
	suffix := nameSuffixes[rng.IntRange(len(nameSuffixes))]
	name := prefix + suffix

	var disposition Disposition
	if t.preSapient() {
		disposition = DispositionUnaware
	} else {
		disposition = dispositions[rng.IntRange(len(dispositions))]
	}

	tech := sampleTechLevel(rng, t)

	biology := sampleBiology(rng)

	state := sampleState(rng, t)

	artifacts := sampleArtifacts(rng, t, tech)
	traits := sampleCulturalTraits(rng)

	return &Civilization{
		ID:             uidkit.FromSeed(idSeed, idSalt),
		HomeworldID:    p.ID,
		Name:           name,
		Type:           t,
		Disposition:    disposition,
		TechLevel:      tech,
		Biology:        biology,
		State:          state,
		DiscoveredTick: tick,
		DiscoveredBy:   discoveredBy,
		Artifacts:      artifacts,
		CulturalTraits: traits,
	}, nil
}

func sampleType(rng *prng.Rng) Type {
	r := rng.Double()
	for _, row := range ladder {
		if r <= row.cumulative {
			return row.t
		}
	}
	return Transcended
}

// techBase is the tech-level range per civilization type as a lowest level
// lo and a count n (levels lo through lo+n-1), walked by a single range()
// draw.
func techBase(t Type) (lo, n int) {
	switch t {
	case Microbial, Multicellular, ComplexEcosystem:
		return 0, 1
	case PreTool:
		return 0, 2
	case ToolUsing:
		return 1, 2
	case PreIndustrial:
		return 2, 2
	case Industrial:
		return 4, 2
	case InformationAge:
		return 6, 2
	case Spacefaring:
		return 8, 3
	case AdvancedSpacefaring:
		return 11, 4
	case PostBiological:
		return 15, 5
	case Transcended:
		return 20, 10
	default:
		return 0, 1
	}
}

func sampleTechLevel(rng *prng.Rng, t Type) uint8 {
	if t == Extinct {
		return uint8(3 + rng.Range(15))
	}
	lo, n := techBase(t)
	return uint8(lo + int(rng.Range(uint64(n))))
}

func sampleBiology(rng *prng.Rng) Biology {
	r := rng.Double()
	switch {
	case r <= 0.70:
		return BiologyCarbon
	case r <= 0.85:
		return BiologySilicon
	case r <= 0.95:
		return BiologyAmmonia
	default:
		return BiologyExotic
	}
}

func sampleState(rng *prng.Rng, t Type) State {
	if t == Extinct {
		return StateExtinct
	}
	if t == Transcended {
		return StateAscending
	}
	r := rng.Double()
	switch {
	case r <= 0.50:
		return StateThriving
	case r <= 0.70:
		return StateDeclining
	case r <= 0.85:
		return StateEndangered
	case r <= 0.95:
		return StateExtinct
	default:
		return StateAscending
	}
}

func sampleArtifacts(rng *prng.Rng, t Type, tech uint8) []string {
	var n int
	switch {
	case t == Extinct:
		n = int(2 + rng.Range(4))
	case tech >= 5:
		n = int(rng.Range(3))
	default:
		n = 0
	}
	if n > MaxArtifacts {
		n = MaxArtifacts
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = artifactTable[rng.IntRange(len(artifactTable))]
	}
	return out
}

func sampleCulturalTraits(rng *prng.Rng) []string {
	n := 1 + int(rng.Range(MaxCulturalTraits))
	if n > MaxCulturalTraits {
		n = MaxCulturalTraits
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = culturalTraitTable[rng.IntRange(len(culturalTraitTable))]
	}
	return out
}
