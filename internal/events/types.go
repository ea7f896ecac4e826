// Package events is the per-tick, per-probe event engine: it rolls for
// discoveries, anomalies, hazards, encounters, crises, and wonders;
// applies their effects to the probe; drifts its personality; and
// persists anomalies and civilizations in fixed-capacity registries.
package events

import (
	"fmt"

	"github.com/deepfield/genesis/internal/uidkit"
)

// Type is the closed set of event types, always rolled in this order.
type Type int

const (
	Discovery Type = iota
	Anomaly
	Hazard
	Encounter
	Crisis
	Wonder
)

func (t Type) String() string {
	switch t {
	case Discovery:
		return "Discovery"
	case Anomaly:
		return "Anomaly"
	case Hazard:
		return "Hazard"
	case Encounter:
		return "Encounter"
	case Crisis:
		return "Crisis"
	case Wonder:
		return "Wonder"
	default:
		return "Unknown"
	}
}

// typeOrder is the fixed roll order the tick loop walks every time.
var typeOrder = []Type{Discovery, Anomaly, Hazard, Encounter, Crisis, Wonder}

// subtypeCount is how many distinct subtypes exist per type. Hazard's
// three subtypes are named (SolarFlare, Asteroid, Radiation, in that
// index order); the rest are flavor-only and do not carry distinct
// mechanical effects beyond severity.
func subtypeCount(t Type) int {
	switch t {
	case Discovery:
		return 6
	case Anomaly:
		return 5
	case Hazard:
		return 3
	case Encounter:
		return 4
	case Crisis:
		return 4
	case Wonder:
		return 5
	default:
		return 1
	}
}

// Hazard subtype indices.
const (
	HazardSolarFlare = 0
	HazardAsteroid   = 1
	HazardRadiation  = 2
)

// Event is a single emitted occurrence.
type Event struct {
	Type        Type
	Subtype     int
	ProbeID     uidkit.UID
	SystemID    uidkit.UID
	Tick        uint64
	Severity    float64
	Description string
}

func describe(t Type, subtype int, severity float64) string {
	return fmt.Sprintf("%s/%d severity=%.3f", t, subtype, severity)
}

// AnomalyRecord is a persistent, resolvable anomaly at a system.
type AnomalyRecord struct {
	ID             uidkit.UID
	SystemID       uidkit.UID
	PlanetID       uidkit.UID
	Subtype        int
	Description    string
	DiscoveredTick uint64
	Resolved       bool
}
