// Package probe defines the probe state that the event engine mutates:
// hull, energy, compute capacity, tech levels, and personality traits.
// Generation of probes themselves lives outside this module (probes are
// an external collaborator per spec); this package only owns the shape
// and the clamping rules every mutation must respect.
package probe

import "github.com/deepfield/genesis/internal/uidkit"

// Status is the probe's coarse lifecycle state.
type Status int

const (
	StatusActive Status = iota
	StatusDormant
	StatusDestroyed
)

// LocationType distinguishes a probe parked in a system from one in
// transit between systems; the event engine only ticks probes InSystem.
type LocationType int

const (
	LocationInSystem LocationType = iota
	LocationInTransit
)

// Tech indexes a probe's tech_levels array.
type Tech int

const (
	TechMaterials Tech = iota
	TechEnergy
	TechComputing
	TechPropulsion
	TechCount
)

// Personality holds drifting emotional traits, each clamped to [0,1]
// after every mutation.
type Personality struct {
	Empathy           float64
	Curiosity         float64
	NostalgiaForEarth float64
	ExistentialAngst  float64
	DriftRate         float64
}

// Clamp pins every trait back into [0,1].
func (p *Personality) Clamp() {
	p.Empathy = clamp01(p.Empathy)
	p.Curiosity = clamp01(p.Curiosity)
	p.NostalgiaForEarth = clamp01(p.NostalgiaForEarth)
	p.ExistentialAngst = clamp01(p.ExistentialAngst)
	p.DriftRate = clamp01(p.DriftRate)
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

// Probe is the mutable state a single probe carries between ticks.
type Probe struct {
	ID             uidkit.UID
	Status         Status
	LocationType   LocationType
	SystemID       uidkit.UID
	HullIntegrity  float64
	EnergyJoules   float64
	ComputeCapacity float64
	TechLevels     [TechCount]float64
	Personality    Personality
}

// New constructs a fresh, healthy probe bound to a system.
func New(id, systemID uidkit.UID) Probe {
	return Probe{
		ID:              id,
		Status:          StatusActive,
		LocationType:    LocationInSystem,
		SystemID:        systemID,
		HullIntegrity:   1.0,
		EnergyJoules:    1.0,
		ComputeCapacity: 1.0,
		TechLevels:      [TechCount]float64{0.2, 0.2, 0.2, 0.2},
		Personality:     Personality{DriftRate: 0.1},
	}
}

// DamageHull reduces hull integrity by amount, clamped at 0.
func (p *Probe) DamageHull(amount float64) {
	p.HullIntegrity -= amount
	if p.HullIntegrity < 0 {
		p.HullIntegrity = 0
	}
}

// DamageCompute reduces compute capacity by amount, clamped at 0.
func (p *Probe) DamageCompute(amount float64) {
	p.ComputeCapacity -= amount
	if p.ComputeCapacity < 0 {
		p.ComputeCapacity = 0
	}
}

// Eligible reports whether the probe can be ticked by the event engine:
// not destroyed, and currently parked in a system.
func (p *Probe) Eligible() bool {
	return p.Status != StatusDestroyed && p.LocationType == LocationInSystem
}
