// Package uidkit implements the 128-bit identifiers shared by every
// generated entity: stars, planets, systems, probes, anomalies, and
// civilizations.
package uidkit

import "github.com/google/uuid"

// UID is a 128-bit opaque identifier. The zero value (both halves zero) is
// the null sentinel — it never identifies a real entity.
type UID struct {
	Hi, Lo uint64
}

// Nil is the null sentinel UID.
var Nil = UID{}

// IsNil reports whether u is the null sentinel.
func (u UID) IsNil() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Equal reports whether two UIDs identify the same entity.
func (u UID) Equal(other UID) bool {
	return u.Hi == other.Hi && u.Lo == other.Lo
}

// UUID renders u as a github.com/google/uuid.UUID for interop with
// external tooling (log lines, the demo binary, debug dumps) that expects
// the ecosystem's standard textual form.
func (u UID) UUID() uuid.UUID {
	var out uuid.UUID
	for i := 0; i < 8; i++ {
		out[i] = byte(u.Hi >> (8 * (7 - i)))
		out[8+i] = byte(u.Lo >> (8 * (7 - i)))
	}
	return out
}

// FromUUID recovers a UID from its UUID rendering.
func FromUUID(id uuid.UUID) UID {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[8+i])
	}
	return UID{Hi: hi, Lo: lo}
}

// String returns the UUID-form textual rendering.
func (u UID) String() string {
	return u.UUID().String()
}

// FromSeed derives a stable UID from a 64-bit seed and a salt string, used
// to assign identifiers to generated entities without consuming the
// entity's own PRNG stream (assigning an ID must never perturb
// determinism of the generation it names).
func FromSeed(seed uint64, salt string) UID {
	h := fnv1a(seed, salt)
	hi := h
	lo := fnv1a(h, salt)
	return UID{Hi: hi, Lo: lo}
}

// fnv1a is a small, dependency-free hash used only to spread a seed+salt
// pair across 64 bits; it carries no determinism contract beyond "stable
// for identical inputs", which FNV-1a satisfies trivially.
func fnv1a(seed uint64, salt string) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset) ^ seed
	h *= prime
	for i := 0; i < len(salt); i++ {
		h ^= uint64(salt[i])
		h *= prime
	}
	return h
}
