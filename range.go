// Package circular implements arithmetic and statistics for values that
// live on a wraparound interval, such as angles, compass headings, or
// signal phase. A Value is permanently confined to a half-open interval
// [L,H) described by a Range; all arithmetic re-enters the interval via
// wrapping, never via rejection.
package circular

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Range describes a circular domain: the half-open interval [L,H) with a
// zero reference Z in [L,H). A Range is immutable and shared by value. The
// zero value of Range is not usable; obtain one from NewRange, MustRange,
// or the predefined package ranges.
type Range struct {
	l float64
	h float64
	z float64
	r float64 // h - l
	r2 float64 // half of r
}

type rangeSpec struct {
	L float64
	H float64 `validate:"gtfield=L"`
	Z float64 `validate:"gtefield=L,ltfield=H"`
}

var validate = validator.New()

// NewRange returns a Range over [l,h) with the zero reference z. It
// requires h > l and l <= z < h and returns an error otherwise.
func NewRange(l, h, z float64) (Range, error) {
	if err := validate.Struct(rangeSpec{L: l, H: h, Z: z}); err != nil {
		return Range{}, fmt.Errorf("invalid range [%v,%v) with zero %v: %w", l, h, z, err)
	}

	return Range{
		l:  l,
		h:  h,
		z:  z,
		r:  h - l,
		r2: (h - l) / 2,
	}, nil
}

// MustRange is like NewRange but panics on an invalid range. Use it for
// ranges defined at program configuration time.
func MustRange(l, h, z float64) Range {
	rng, err := NewRange(l, h, z)
	if err != nil {
		panic(err)
	}

	return rng
}

// The standard circular domains.
var (
	SignedDegrees   = MustRange(-180, 180, 0)
	UnsignedDegrees = MustRange(0, 360, 0)
	SignedRadians   = MustRange(-math.Pi, math.Pi, 0)
	UnsignedRadians = MustRange(0, 2*math.Pi, 0)
)

// Lower returns the inclusive lower bound of the range.
func (rng Range) Lower() float64 { return rng.l }

// Upper returns the exclusive upper bound of the range.
func (rng Range) Upper() float64 { return rng.h }

// Zero returns the zero reference of the range.
func (rng Range) Zero() float64 { return rng.z }

// Width returns the extent of the range, Upper() - Lower().
func (rng Range) Width() float64 { return rng.r }

// Contains returns whether f already lies in [Lower,Upper).
func (rng Range) Contains(f float64) bool {
	return f >= rng.l && f < rng.h
}

// Wrap maps an arbitrary real number into [Lower,Upper).
func (rng Range) Wrap(f float64) float64 {
	var w float64

	// Fast paths for values in range or at most one width off. They also
	// avoid the precision loss of the modulo for the common cases.
	if f >= rng.l {
		if f < rng.h {
			return f
		}

		if f < rng.h+rng.r {
			w = f - rng.r
		} else {
			w = mod(f-rng.l, rng.r) + rng.l
		}
	} else if f >= rng.l-rng.r {
		w = f + rng.r
	} else {
		w = mod(f-rng.l, rng.r) + rng.l
	}

	// Inputs infinitesimally below a boundary can round onto it. Both
	// boundaries are the same point on the circle, whose representative
	// is the lower bound.
	if w < rng.l || w >= rng.h {
		w = rng.l
	}

	return w
}

// mod returns the non-negative remainder of a/b, unlike math.Mod which
// keeps the sign of a.
func mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}

	return m
}
