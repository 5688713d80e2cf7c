package quad

import "math"

// Adaptive integrates f over [low, high] to relative tolerance tol,
// recursing at most maxDepth times past the initial composite estimate.
// If maxDepth is exhausted before two half-interval estimates agree with
// the whole-interval estimate to within tol, the best estimate found is
// returned rather than an error — non-convergence is advisory here, not
// fatal.
//
// low and high may be +/-Inf; Adaptive substitutes u = 1/x on the
// unbounded tail(s) rather than requiring the caller to do so.
func Adaptive(f func(float64) float64, low, high, tol float64, maxDepth int) float64 {
	if math.IsInf(high, 1) || math.IsInf(low, -1) {
		return adaptiveImproper(f, low, high, tol, maxDepth)
	}

	result := sum48(f, low, high, false)
	return refine(f, low, high, result, tol, maxDepth, false)
}

// adaptiveImproper handles the shapes of improper interval this package
// supports: a one-sided tail anchored at a nonzero bound (mapped via
// u = 1/x when the bound has the same sign as the tail; otherwise split
// at 1 or -1 first), a one-sided tail anchored at zero (split at 1), and
// the doubly-infinite line (split at -1 and 1).
func adaptiveImproper(f func(float64) float64, low, high, tol float64, maxDepth int) float64 {
	switch {
	case math.IsInf(high, 1) && !math.IsInf(low, -1):
		if low <= 0 {
			return Adaptive(f, low, 1, tol, maxDepth) + Adaptive(f, 1, high, tol, maxDepth)
		}
		mappedHigh := 1 / low
		result := sum48(f, 0, mappedHigh, true)
		return refine(f, 0, mappedHigh, result, tol, maxDepth, true)

	case !math.IsInf(high, 1) && math.IsInf(low, -1):
		if high >= 0 {
			return Adaptive(f, -1, high, tol, maxDepth) + Adaptive(f, low, -1, tol, maxDepth)
		}
		mappedLow := 1 / high
		result := sum48(f, mappedLow, 0, true)
		return refine(f, mappedLow, 0, result, tol, maxDepth, true)

	default:
		return Adaptive(f, low, -1, tol, maxDepth) +
			Adaptive(f, -1, 1, tol, maxDepth) +
			Adaptive(f, 1, high, tol, maxDepth)
	}
}

// refine is the adaptive bisection: split [low, high] at its midpoint,
// compare the sum of the two half-interval estimates against the
// whole-interval estimate, and recurse on both halves when they disagree.
func refine(f func(float64) float64, low, high, result, tol float64, depth int, improperTop bool) float64 {
	if depth < 0 {
		return result
	}

	middle := (high + low) / 2.0
	interval1 := sum48(f, low, middle, improperTop)
	interval2 := sum48(f, middle, high, improperTop)

	combined := interval1 + interval2
	if math.Abs(result-combined)/math.Abs(result) <= tol {
		return combined
	}

	return refine(f, low, middle, interval1, tol, depth-1, improperTop) +
		refine(f, middle, high, interval2, tol, depth-1, improperTop)
}
