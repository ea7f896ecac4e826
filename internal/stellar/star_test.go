package stellar_test

import (
	"testing"

	"github.com/deepfield/genesis/internal/prng"
	"github.com/deepfield/genesis/internal/spatial"
	"github.com/deepfield/genesis/internal/stellar"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := prng.Derive(1, 0, 0, 0)
	b := prng.Derive(1, 0, 0, 0)

	sa := stellar.Generate(&a, spatial.Vec3{}, 1, "star_0")
	sb := stellar.Generate(&b, spatial.Vec3{}, 1, "star_0")

	if sa != sb {
		t.Fatalf("Generate not deterministic: %+v != %+v", sa, sb)
	}
}

func TestClassFrequenciesApproximateTable(t *testing.T) {
	rng := prng.Seed(1)
	counts := map[stellar.Class]int{}
	const n = 200_000
	for i := 0; i < n; i++ {
		s := stellar.Generate(&rng, spatial.Vec3{}, uint64(i), "probe")
		counts[s.Class]++
	}

	// M is by far the dominant class (cumulative 0.765); a loose bound
	// catches gross distribution bugs without pinning exact frequencies.
	mFrac := float64(counts[stellar.ClassM]) / n
	if mFrac < 0.70 || mFrac > 0.82 {
		t.Errorf("M-class fraction = %f, want roughly 0.765", mFrac)
	}
}

func TestAgeIsWithinRange(t *testing.T) {
	rng := prng.Seed(9)
	for i := 0; i < 10_000; i++ {
		s := stellar.Generate(&rng, spatial.Vec3{}, uint64(i), "s")
		if s.AgeGyr < 0.1 || s.AgeGyr > 13.0 {
			t.Fatalf("AgeGyr = %f, want [0.1, 13.0]", s.AgeGyr)
		}
	}
}

func TestNameIsNeverEmpty(t *testing.T) {
	rng := prng.Seed(5)
	for i := 0; i < 1000; i++ {
		s := stellar.Generate(&rng, spatial.Vec3{}, uint64(i), "n")
		if s.Name == "" {
			t.Fatal("generated star name is empty")
		}
	}
}
