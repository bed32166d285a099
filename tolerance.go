package balloon

import "math"

// DefaultTolerance is the relative tolerance used by IsAlmostEqual and the
// absolute tolerance used by IsAlmostZero: the square root of the machine
// epsilon for float64.
var DefaultTolerance = math.Sqrt(epsilon)

const (
	// epsilon is the difference between 1 and the next representable float64.
	epsilon = 0x1p-52

	// leastNormal is the smallest positive normal float64.
	leastNormal = 0x1p-1022
)

// IsAlmostEqual reports whether a and b are equal within DefaultTolerance,
// relative to the larger of their magnitudes.
func IsAlmostEqual(a, b float64) bool {
	return IsAlmostEqualTolerance(a, b, DefaultTolerance)
}

// IsAlmostEqualTolerance reports whether |a-b| < tolerance * max(|a|, |b|).
//
// NaN is never equal to anything. Two infinities are equal only when they
// have the same sign; an infinity compared with a finite value is rescaled
// so that it behaves like the largest finite magnitude.
func IsAlmostEqualTolerance(a, b, tolerance float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return rescaledAlmostEqual(a, b, tolerance)
	}

	scale := max(math.Abs(a), math.Abs(b), leastNormal)
	return math.Abs(a-b) < scale*tolerance
}

// rescaledAlmostEqual compares values where at least one is infinite.
func rescaledAlmostEqual(a, b, tolerance float64) bool {
	if !math.IsInf(a, 0) {
		a, b = b, a
	}
	if math.IsInf(b, 0) {
		return a == b
	}

	// Map the infinity to ±2^1023 and halve the finite value so both sit
	// in the finite range without overflowing the subtraction.
	scaledA := math.Copysign(0x1p1023, a)
	scaledB := b * 0.5
	return IsAlmostEqualTolerance(scaledA, scaledB, tolerance)
}

// IsAlmostZero reports whether |a| < DefaultTolerance.
func IsAlmostZero(a float64) bool {
	return IsAlmostZeroTolerance(a, DefaultTolerance)
}

// IsAlmostZeroTolerance reports whether |a| < tolerance.
func IsAlmostZeroTolerance(a, tolerance float64) bool {
	return math.Abs(a) < tolerance
}

// clamp limits v to [lo, hi]. When lo > hi the upper bound wins.
func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// sincos returns sin and cos of angle, snapping results that are within
// rounding noise of 0 or ±1. Quarter turns therefore rotate exactly.
func sincos(angle float64) (sin, cos float64) {
	sin, cos = math.Sincos(angle)
	return snapUnit(sin), snapUnit(cos)
}

func snapUnit(v float64) float64 {
	const noise = 1e-15
	switch {
	case math.Abs(v) < noise:
		return 0
	case math.Abs(v-1) < noise:
		return 1
	case math.Abs(v+1) < noise:
		return -1
	}
	return v
}

// normalizeAngle maps an angle in radians to [0, 2π).
func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
