// Package config reads the generator's runtime knobs from the
// environment: per-event-type roll frequencies and the fixed-capacity
// registry sizes, through getEnvAsFloat/getEnvAsInt helpers that fall back
// to a default when a variable is unset or unparsable.
package config

import (
	"os"
	"strconv"

	"github.com/deepfield/genesis/internal/logkit"
)

var log = logkit.WithComponent("Config")

// Frequencies holds the per-tick roll threshold for each event type.
type Frequencies struct {
	Discovery float64
	Anomaly   float64
	Hazard    float64
	Encounter float64
	Crisis    float64
	Wonder    float64
}

// Capacities holds the fixed sizes of the event engine's registries.
type Capacities struct {
	MaxEventLog       int
	MaxAnomalies      int
	MaxCivilizations  int
	MaxEventsPerTick  int
	MaxPlanets        int
	MaxMoons          int
}

// Config is the full set of environment-tunable generator knobs.
type Config struct {
	Frequencies Frequencies
	Capacities  Capacities
}

// Load reads Config from the environment, falling back to the documented
// defaults for anything unset or unparsable.
func Load() Config {
	return Config{
		Frequencies: Frequencies{
			Discovery: getEnvAsFloat("FREQ_DISCOVERY", 0.08),
			Anomaly:   getEnvAsFloat("FREQ_ANOMALY", 0.05),
			Hazard:    getEnvAsFloat("FREQ_HAZARD", 0.06),
			Encounter: getEnvAsFloat("FREQ_ENCOUNTER", 0.03),
			Crisis:    getEnvAsFloat("FREQ_CRISIS", 0.015),
			Wonder:    getEnvAsFloat("FREQ_WONDER", 0.01),
		},
		Capacities: Capacities{
			MaxEventLog:      getEnvAsInt("MAX_EVENT_LOG", 10000),
			MaxAnomalies:     getEnvAsInt("MAX_ANOMALIES", 2000),
			MaxCivilizations: getEnvAsInt("MAX_CIVILIZATIONS", 500),
			MaxEventsPerTick: getEnvAsInt("MAX_EVENTS_PER_TICK", 6),
			MaxPlanets:       getEnvAsInt("MAX_PLANETS", 20),
			MaxMoons:         getEnvAsInt("MAX_MOONS", 12),
		},
	}
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Warn("invalid float value for %s: %s, using default: %f", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warn("invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
