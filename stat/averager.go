package stat

import (
	"errors"
	"time"

	"github.com/datarhei/circular"
)

// ErrSampleOrder is returned by SignalAverager.Add for a sample whose
// timestamp is not strictly after the previous one.
var ErrSampleOrder = errors.New("samples must be added with strictly increasing timestamps")

// SignalAverager estimates the time-average of a continuous circular
// signal observed through discrete timestamped samples, assuming the
// signal moves along the shortest arc between consecutive samples
// (circular-linear interpolation). Each interval contributes its midpoint
// weighted by its duration.
//
// A SignalAverager is not safe for concurrent use; give each goroutine
// its own instance.
type SignalAverager struct {
	count     int
	prev      circular.Value
	prevTime  time.Time
	intervals []Weighted
}

// NewSignalAverager returns an empty estimator. Samples of any range are
// accepted; from the second sample on, values are converted into the
// first sample's range.
func NewSignalAverager() *SignalAverager {
	return &SignalAverager{}
}

// Add consumes the next sample. Timestamps must be strictly increasing;
// a violation is a usage error and leaves the estimator unchanged.
func (a *SignalAverager) Add(v circular.Value, at time.Time) error {
	if a.count > 0 {
		if !at.After(a.prevTime) {
			return ErrSampleOrder
		}

		rng := a.prev.Range()
		v = v.Convert(rng)

		mid := rng.Value(a.prev.Val() + a.prev.SDist(v)/2)

		a.intervals = append(a.intervals, Weighted{
			Value:  mid,
			Weight: at.Sub(a.prevTime).Seconds(),
		})
	}

	a.prev = v
	a.prevTime = at
	a.count++

	return nil
}

// Count returns the number of samples consumed so far.
func (a *SignalAverager) Count() int {
	return a.count
}

// Reset discards all state.
func (a *SignalAverager) Reset() {
	*a = SignalAverager{}
}

// Average returns the estimated time-average. The second return value is
// false if no sample has been added yet. If several values tie (see
// AverageSet), the smallest representative is returned.
func (a *SignalAverager) Average() (circular.Value, bool) {
	set := a.AverageSet()
	if len(set) == 0 {
		return circular.Value{}, false
	}

	return set[0], true
}

// AverageSet returns the full set of tied time-averages: nothing for an
// empty estimator, the sample itself for a single sample, and the
// weighted mean set of the interval midpoints otherwise.
func (a *SignalAverager) AverageSet() []circular.Value {
	switch a.count {
	case 0:
		return nil
	case 1:
		return []circular.Value{a.prev}
	default:
		return WeightedMean(a.intervals)
	}
}
