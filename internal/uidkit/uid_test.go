package uidkit_test

import (
	"testing"

	"github.com/deepfield/genesis/internal/uidkit"
)

func TestNilIsNull(t *testing.T) {
	if !uidkit.Nil.IsNil() {
		t.Error("Nil.IsNil() = false, want true")
	}
	if (uidkit.UID{Hi: 1}).IsNil() {
		t.Error("UID{Hi:1}.IsNil() = true, want false")
	}
}

func TestEqual(t *testing.T) {
	a := uidkit.UID{Hi: 1, Lo: 2}
	b := uidkit.UID{Hi: 1, Lo: 2}
	c := uidkit.UID{Hi: 1, Lo: 3}

	if !a.Equal(b) {
		t.Error("identical UIDs should be equal")
	}
	if a.Equal(c) {
		t.Error("differing UIDs should not be equal")
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	u := uidkit.UID{Hi: 0x0102030405060708, Lo: 0x1112131415161718}
	back := uidkit.FromUUID(u.UUID())
	if !u.Equal(back) {
		t.Errorf("UUID round-trip = %+v, want %+v", back, u)
	}
}

func TestFromSeedIsDeterministic(t *testing.T) {
	a := uidkit.FromSeed(42, "star")
	b := uidkit.FromSeed(42, "star")
	if !a.Equal(b) {
		t.Errorf("FromSeed(42, \"star\") not stable: %+v != %+v", a, b)
	}

	c := uidkit.FromSeed(42, "planet")
	if a.Equal(c) {
		t.Error("different salts should not collide")
	}
}
