package config_test

import (
	"os"
	"testing"

	"github.com/deepfield/genesis/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	if cfg.Frequencies.Discovery <= 0 {
		t.Error("expected a positive default discovery frequency")
	}
	if cfg.Capacities.MaxEventsPerTick <= 0 {
		t.Error("expected a positive default MaxEventsPerTick")
	}
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	os.Setenv("FREQ_WONDER", "0.5")
	os.Setenv("MAX_CIVILIZATIONS", "7")
	defer os.Unsetenv("FREQ_WONDER")
	defer os.Unsetenv("MAX_CIVILIZATIONS")

	cfg := config.Load()
	if cfg.Frequencies.Wonder != 0.5 {
		t.Errorf("Frequencies.Wonder = %f, want 0.5", cfg.Frequencies.Wonder)
	}
	if cfg.Capacities.MaxCivilizations != 7 {
		t.Errorf("Capacities.MaxCivilizations = %d, want 7", cfg.Capacities.MaxCivilizations)
	}
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	os.Setenv("FREQ_HAZARD", "not-a-number")
	defer os.Unsetenv("FREQ_HAZARD")

	cfg := config.Load()
	if cfg.Frequencies.Hazard != 0.06 {
		t.Errorf("Frequencies.Hazard = %f, want default 0.06 on invalid input", cfg.Frequencies.Hazard)
	}
}
