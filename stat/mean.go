// Package stat computes statistics of circular values. Unlike their linear
// counterparts, the circular mean and median are solutions of a global
// optimization over the circle and may be attained at several points at
// once. All algorithms therefore return the full set of exactly tied
// optima, deduplicated and sorted by representative, instead of picking
// one arbitrarily. Callers must pass non-empty samples; an empty sample
// yields an empty result.
package stat

import (
	"sort"

	"github.com/datarhei/circular"
	"github.com/samber/lo"
)

// Weighted pairs a circular value with a positive weight.
type Weighted struct {
	Value  circular.Value
	Weight float64
}

// Mean returns the set of values minimizing the sum of squared shortest
// signed distances to the samples. The set contains a single value for
// most inputs, but topological degeneracies produce genuine ties, e.g.
// samples at 0 and 180 degrees have the two equally valid means 90 and
// 270. Runs in O(n log n).
func Mean(values []circular.Value) []circular.Value {
	if len(values) == 0 {
		return nil
	}

	samples := make([]Weighted, 0, len(values))
	for _, v := range values {
		samples = append(samples, Weighted{Value: v, Weight: 1})
	}

	return WeightedMean(samples)
}

// WeightedMean returns the set of values minimizing the weighted sum of
// squared shortest signed distances to the samples. Weights must be
// positive.
//
// The objective is piecewise-quadratic in the candidate mean: which
// samples measure their distance across the wrap boundary changes exactly
// at the antipode of each sample. The sweep walks these sectors in order,
// maintaining the wrapped subset's weight sums incrementally, and
// evaluates each sector's unconstrained quadratic minimizer only when it
// falls inside the sector.
func WeightedMean(samples []Weighted) []circular.Value {
	if len(samples) == 0 {
		return nil
	}

	rng := samples[0].Value.Range()
	r := rng.Width()
	r2 := r / 2

	type point struct {
		v float64
		w float64
	}

	// Normalized offsets from the lower bound, in [0,R).
	var sumW, sumWV, sumWV2 float64
	var lower, upper []point

	for _, s := range samples {
		v := s.Value.Convert(rng).Val() - rng.Lower()
		w := s.Weight

		sumW += w
		sumWV += w * v
		sumWV2 += w * v * v

		// Samples exactly at the half-range never switch branches and
		// belong to neither breakpoint list.
		if v < r2 {
			lower = append(lower, point{v: v, w: w})
		} else if v > r2 {
			upper = append(upper, point{v: v, w: w})
		}
	}

	sort.Slice(lower, func(i, j int) bool { return lower[i].v < lower[j].v })
	sort.Slice(upper, func(i, j int) bool { return upper[i].v > upper[j].v })

	// Objective at candidate x when the samples in D (offsets below
	// x-R/2) wrap upward: their distance is R-(x-v) instead of x-v.
	objWrapLow := func(x, wrapW, wrapWV float64) float64 {
		return sumWV2 + x*x*sumW - 2*x*sumWV + 2*r*wrapWV + (r*r-2*r*x)*wrapW
	}

	// Objective at candidate x when the samples in C (offsets above
	// x+R/2) wrap downward: their distance is R-(v-x) instead of v-x.
	objWrapHigh := func(x, wrapW, wrapWV float64) float64 {
		return sumWV2 + x*x*sumW - 2*x*sumWV - 2*r*wrapWV + (r*r+2*r*x)*wrapW
	}

	// Seed with the half-range candidate, for which nothing wraps.
	best := []float64{r2}
	minSum := r2*r2*sumW - r*sumWV + sumWV2

	// A strictly lower objective replaces the result set, an exactly
	// equal one extends it. Ties are a mathematical property of the
	// input, so no tolerance is applied.
	test := func(x, sum float64) {
		if sum < minSum {
			best = append(best[:0], x)
			minSum = sum
		} else if sum == minSum {
			best = append(best, x)
		}
	}

	// Candidates in (R/2,R): walking up, each lower offset's antipode
	// moves one more sample into the wrapping set.
	bound := 0.0
	var wrapW, wrapWV float64

	for _, p := range lower {
		x := (sumWV + r*wrapW) / sumW
		if x > bound+r2 && x <= p.v+r2 {
			test(x, objWrapLow(x, wrapW, wrapWV))
		}

		bound = p.v
		wrapW += p.w
		wrapWV += p.w * p.v
	}

	x := (sumWV + r*wrapW) / sumW
	if x < r && x > bound {
		test(x, objWrapLow(x, wrapW, wrapWV))
	}

	// The strict sector bounds of the two passes never cover the wrap
	// point itself, so a minimizer that rounds onto the boundary slips
	// past both closing tests. Evaluate it explicitly; at the wrap point
	// every offset below the half-range measures across the boundary.
	test(0, objWrapLow(r, wrapW, wrapWV))

	// Candidates in [0,R/2): walking down through the upper offsets'
	// antipodes.
	bound = r
	wrapW, wrapWV = 0, 0

	for _, p := range upper {
		x := (sumWV - r*wrapW) / sumW
		if x >= p.v-r2 && x < bound-r2 {
			test(x, objWrapHigh(x, wrapW, wrapWV))
		}

		bound = p.v
		wrapW += p.w
		wrapWV += p.w * p.v
	}

	x = (sumWV - r*wrapW) / sumW
	if x >= 0 && x < bound {
		test(x, objWrapHigh(x, wrapW, wrapWV))
	}

	return resultSet(rng, best)
}

// meanRotation is an independent formulation of Mean used as a
// cross-check: sort the offsets once, then sweep the n rotations of the
// wrap boundary, updating the objective in O(1) per rotation. Both
// algorithms must return identical result sets.
func meanRotation(values []circular.Value) []circular.Value {
	if len(values) == 0 {
		return nil
	}

	rng := values[0].Range()
	r := rng.Width()
	n := float64(len(values))

	offsets := make([]float64, len(values))

	var sum, sumSqr float64
	for i, v := range values {
		offsets[i] = v.Convert(rng).Val() - rng.Lower()
		sum += offsets[i]
		sumSqr += offsets[i] * offsets[i]
	}

	sort.Float64s(offsets)

	// With no rotation the minimizer is the plain arithmetic mean.
	minSum := sumSqr - sum*sum/n
	best := []float64{sum / n}

	// Rotating the wrap boundary past offsets[i-1] shifts that sample up
	// by a full turn.
	runSqr := sumSqr

	for i := 1; i < len(offsets); i++ {
		runSqr += 2 * r * offsets[i-1]

		k := float64(i)
		shifted := sum + r*k
		testSum := runSqr + r*r*k - shifted*shifted/n

		if testSum < minSum {
			best = append(best[:0], shifted/n)
			minSum = testSum
		} else if testSum == minSum {
			best = append(best, shifted/n)
		}
	}

	return resultSet(rng, best)
}

// resultSet maps normalized offsets back into the range, deduplicates
// exact ties, and orders the set by representative.
func resultSet(rng circular.Range, offsets []float64) []circular.Value {
	values := lo.Map(offsets, func(x float64, _ int) circular.Value {
		return rng.Value(x + rng.Lower())
	})

	values = lo.Uniq(values)

	sort.Slice(values, func(i, j int) bool { return values[i].Lt(values[j]) })

	return values
}
