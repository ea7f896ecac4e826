// Package prng implements the seedable, splittable counter-based generator
// the rest of the galaxy generator threads through every decision.
//
// Determinism is the entire point of this package: for identical
// construction arguments, the sequence of values produced must be
// identical across platforms and Go versions. math/rand/v2's PCG source is
// a pure integer algorithm with no hardware-dependent floating point
// paths, which is why it was chosen over math/rand (v1) — see DESIGN.md.
package prng

import "math/rand/v2"

// Rng wraps a PCG-seeded source. Zero value is not usable; construct with
// Seed or Derive.
type Rng struct {
	r *rand.Rand
}

// Seed initializes a generator from a single 64-bit seed.
func Seed(seed uint64) Rng {
	s1, s2 := splitSeed(seed)
	return Rng{r: rand.New(rand.NewPCG(s1, s2))}
}

// Derive produces a fresh generator from a stable mix of a base seed and
// three signed sector coordinates. Derive is a pure function: the same
// arguments always yield a generator with the same output sequence, and
// two Derive calls never share state.
func Derive(seed uint64, sx, sy, sz int32) Rng {
	h := mix(seed ^ uint64(uint32(sx)))
	h = mix(h ^ uint64(uint32(sy)))
	h = mix(h ^ uint64(uint32(sz)))
	s1, s2 := splitSeed(h)
	return Rng{r: rand.New(rand.NewPCG(s1, s2))}
}

// splitSeed expands one 64-bit seed into the two PCG needs via the
// splitmix64 avalanche, a widely used technique for bootstrapping
// splittable generators from a single value (the same role SplittableRandom
// plays in other ecosystems).
func splitSeed(seed uint64) (uint64, uint64) {
	a := mix(seed)
	b := mix(seed ^ 0xD1B54A32D192ED03)
	return a, b
}

// mix is the splitmix64 finalizer: a fixed-width, wrapping-arithmetic
// avalanche so every output bit depends on every input bit.
func mix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Next returns the next raw 64-bit value in the stream.
func (g *Rng) Next() uint64 {
	return g.r.Uint64()
}

// Double returns a uniform float64 in [0, 1).
func (g *Rng) Double() float64 {
	return g.r.Float64()
}

// Range returns a uniform uint64 in [0, n). Range(0) returns 0.
func (g *Rng) Range(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return g.r.Uint64N(n)
}

// IntRange returns a uniform int in [0, n). IntRange(0) returns 0.
func (g *Rng) IntRange(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

// Gaussian returns a standard-normal sample (mean 0, stddev 1).
func (g *Rng) Gaussian() float64 {
	return g.r.NormFloat64()
}
