// Package spatial shapes where star systems sit in the galaxy: a 4-arm
// logarithmic spiral with radial falloff and a thin vertical disk, used by
// the sector generator to decide how many systems a given cube holds.
package spatial

import "math"

// Vec3 is a galactic light-year coordinate.
type Vec3 struct {
	X, Y, Z float64
}

const (
	coreRadius   = 100.0
	armCount     = 4
	armPitch     = 0.22
	armSigma     = 0.4
	radialScale  = 40000.0
	diskScaleZ   = 500.0
)

// Density returns the relative star density at a galactic coordinate,
// in [0, 1]. The core (within coreRadius of the galactic axis) is always
// at full density; outside it, density follows the nearest of four
// logarithmic spiral arms, an exponential radial falloff, and a Gaussian
// vertical disk profile.
func Density(gx, gy, gz float64) float64 {
	r := math.Hypot(gx, gy)
	if r < coreRadius {
		return 1.0
	}

	theta := math.Atan2(gy, gx)

	armBest := -1.0
	for arm := 0; arm < armCount; arm++ {
		armTheta := armPitch*math.Log(r/1000) + float64(arm)*math.Pi/2
		delta := wrapAngle(theta - armTheta)
		falloff := math.Exp(-(delta * delta) / (2 * armSigma * armSigma))
		if falloff > armBest {
			armBest = falloff
		}
	}

	armDensity := 0.15 + 0.85*armBest
	radialFalloff := math.Exp(-r / radialScale)
	zDensity := math.Exp(-(gz * gz) / (2 * diskScaleZ * diskScaleZ))

	return armDensity * radialFalloff * zDensity
}

// wrapAngle folds an angle difference into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// RNG is the minimal surface Density-driven sampling needs from the PRNG
// component, kept narrow so this package does not import prng directly.
type RNG interface {
	Range(n uint64) uint64
}

// SectorStarCount derives how many systems a sector cube holds from the
// density at (gx, gy, gz), with jitter drawn from rng.
func SectorStarCount(rng RNG, gx, gy, gz float64) int {
	d := Density(gx, gy, gz)
	base := int(math.Floor(d * 12))

	jitter := int(rng.Range(uint64(base/2 + 1)))
	count := base + jitter

	if count < 0 {
		count = 0
	}
	if count > 30 {
		count = 30
	}
	return count
}
