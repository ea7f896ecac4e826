package probe_test

import (
	"testing"

	"github.com/deepfield/genesis/internal/probe"
	"github.com/deepfield/genesis/internal/uidkit"
)

func TestNewProbeIsHealthyAndEligible(t *testing.T) {
	p := probe.New(uidkit.FromSeed(1, "probe"), uidkit.FromSeed(1, "system"))
	if !p.Eligible() {
		t.Fatal("freshly created probe should be eligible for ticking")
	}
	if p.HullIntegrity != 1.0 || p.ComputeCapacity != 1.0 {
		t.Fatalf("expected full hull/compute, got %f/%f", p.HullIntegrity, p.ComputeCapacity)
	}
}

func TestDamageHullClampsAtZero(t *testing.T) {
	p := probe.New(uidkit.Nil, uidkit.Nil)
	p.DamageHull(2.0)
	if p.HullIntegrity != 0 {
		t.Errorf("HullIntegrity = %f, want 0", p.HullIntegrity)
	}
}

func TestDestroyedProbeIsNotEligible(t *testing.T) {
	p := probe.New(uidkit.Nil, uidkit.Nil)
	p.Status = probe.StatusDestroyed
	if p.Eligible() {
		t.Error("destroyed probe should not be eligible")
	}
}

func TestPersonalityClampHandlesOverflow(t *testing.T) {
	pers := probe.Personality{Empathy: 1.2, Curiosity: -0.3, DriftRate: 5}
	pers.Clamp()
	if pers.Empathy != 1.0 || pers.Curiosity != 0 || pers.DriftRate != 1.0 {
		t.Fatalf("Clamp did not pin traits to [0,1]: %+v", pers)
	}
}
