package stat

import (
	"math"
	"sort"

	"github.com/datarhei/circular"
	"github.com/samber/lo"
)

// Median returns the set of values minimizing the sum of absolute shortest
// signed distances to the samples. There is no closed form; the minimum is
// attained on a finite candidate set derived from the data. For an odd
// number of samples the median is one of the samples. For an even number
// it is the midpoint of the shortest arc between some circularly
// consecutive pair of the sorted samples; an exactly antipodal pair has
// two equally valid bisectors and contributes both.
func Median(values []circular.Value) []circular.Value {
	if len(values) == 0 {
		return nil
	}

	rng := values[0].Range()
	r2 := rng.Width() / 2

	samples := lo.Map(values, func(v circular.Value, _ int) circular.Value {
		return v.Convert(rng)
	})

	var candidates []circular.Value

	if len(samples)%2 == 0 {
		sorted := make([]circular.Value, len(samples))
		copy(sorted, samples)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lt(sorted[j]) })

		for m := range sorted {
			n := (m + 1) % len(sorted)
			d := sorted[m].SDist(sorted[n])

			candidates = append(candidates, rng.Value(sorted[m].Val()+d/2))

			if d == -r2 {
				// The pair is exactly antipodal, so the walk direction is
				// ambiguous and the opposite bisector is just as valid.
				candidates = append(candidates, rng.Value(sorted[n].Val()+d/2))
			}
		}
	} else {
		candidates = samples
	}

	candidates = lo.Uniq(candidates)

	var best []circular.Value
	minSum := math.MaxFloat64

	for _, c := range candidates {
		sum := 0.0
		for _, s := range samples {
			sum += math.Abs(c.SDist(s))
		}

		if sum < minSum {
			best = append(best[:0], c)
			minSum = sum
		} else if sum == minSum {
			best = append(best, c)
		}
	}

	sort.Slice(best, func(i, j int) bool { return best[i].Lt(best[j]) })

	return best
}
