// Package dist provides random samplers for circular data: normal
// distributions that are truncated to an interval, wrapped into a circular
// range, or both. They are primarily meant for generating noisy angular
// observations in tests and simulations.
package dist

import (
	"errors"
	"math/rand"
	"time"

	"github.com/datarhei/circular"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrSigma = errors.New("sigma must be positive")
var ErrBounds = errors.New("upper bound must be greater than lower bound")

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// TruncatedNormal samples a normal distribution restricted to [a,b], via
// inversion of the CDF.
type TruncatedNormal struct {
	norm distuv.Normal
	cdfA float64
	cdfB float64
}

func NewTruncatedNormal(mean, sigma, a, b float64) (*TruncatedNormal, error) {
	if sigma <= 0 {
		return nil, ErrSigma
	}

	if b <= a {
		return nil, ErrBounds
	}

	norm := distuv.Normal{Mu: mean, Sigma: sigma}

	return &TruncatedNormal{
		norm: norm,
		cdfA: norm.CDF(a),
		cdfB: norm.CDF(b),
	}, nil
}

// Sample draws one value in [a,b] from src, or from a shared seeded source
// if src is nil.
func (d *TruncatedNormal) Sample(src *rand.Rand) float64 {
	if src == nil {
		src = seededRand
	}

	u := d.cdfA + src.Float64()*(d.cdfB-d.cdfA)

	return d.norm.Quantile(u)
}

// WrappedNormal samples a normal distribution wrapped into a circular
// range.
type WrappedNormal struct {
	rng   circular.Range
	mean  float64
	sigma float64
}

func NewWrappedNormal(mean, sigma float64, rng circular.Range) (*WrappedNormal, error) {
	if sigma <= 0 {
		return nil, ErrSigma
	}

	return &WrappedNormal{
		rng:   rng,
		mean:  mean,
		sigma: sigma,
	}, nil
}

// Sample draws one circular value from src, or from a shared seeded source
// if src is nil.
func (d *WrappedNormal) Sample(src *rand.Rand) circular.Value {
	if src == nil {
		src = seededRand
	}

	return d.rng.Value(src.NormFloat64()*d.sigma + d.mean)
}

// WrappedTruncatedNormal samples a normal distribution that is first
// truncated to [a,b] and then wrapped into a circular range.
type WrappedTruncatedNormal struct {
	trunc *TruncatedNormal
	rng   circular.Range
}

func NewWrappedTruncatedNormal(mean, sigma, a, b float64, rng circular.Range) (*WrappedTruncatedNormal, error) {
	trunc, err := NewTruncatedNormal(mean, sigma, a, b)
	if err != nil {
		return nil, err
	}

	return &WrappedTruncatedNormal{
		trunc: trunc,
		rng:   rng,
	}, nil
}

// Sample draws one circular value from src, or from a shared seeded source
// if src is nil.
func (d *WrappedTruncatedNormal) Sample(src *rand.Rand) circular.Value {
	return d.rng.Value(d.trunc.Sample(src))
}
