package stat

import (
	"math"

	"github.com/datarhei/circular"
)

// ResultantMean returns the conventional circular mean, the direction of
// the sum of the samples' unit vectors, together with the mean resultant
// length in [0,1]. A length near 1 means the samples are concentrated and
// the mean is well defined; a length near 0 means the samples nearly
// cancel out and the returned direction is meaningless.
//
// Unlike Mean this is a single-pass O(n) estimator, but it minimizes a
// different objective and cannot report ties.
func ResultantMean(values []circular.Value) (circular.Value, float64) {
	if len(values) == 0 {
		return circular.Value{}, 0
	}

	samples := make([]Weighted, 0, len(values))
	for _, v := range values {
		samples = append(samples, Weighted{Value: v, Weight: 1})
	}

	return WeightedResultantMean(samples)
}

// WeightedResultantMean is ResultantMean with per-sample weights. Weights
// must be positive.
func WeightedResultantMean(samples []Weighted) (circular.Value, float64) {
	if len(samples) == 0 {
		return circular.Value{}, 0
	}

	rng := samples[0].Value.Range()

	var sumSin, sumCos, sumW float64

	for _, s := range samples {
		sumSin += s.Weight * circular.Sin(s.Value)
		sumCos += s.Weight * circular.Cos(s.Value)
		sumW += s.Weight
	}

	mean := circular.Atan2(rng, sumSin, sumCos)
	length := math.Hypot(sumSin, sumCos) / sumW

	return mean, length
}
