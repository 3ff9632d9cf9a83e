package circular

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances for AlmostEquals.
const (
	almostEqAbs = 1e-9
	almostEqRel = 1e-9
)

// Value is a number confined to the interval [L,H) of its Range. The zero
// value of Value is not usable; obtain one from Range.Value, Range.FromReal,
// Range.ZeroValue, or from arithmetic on other values.
type Value struct {
	rng Range
	val float64
}

// Value wraps f into the range and returns it as a Value.
func (rng Range) Value(f float64) Value {
	return Value{rng: rng, val: rng.Wrap(f)}
}

// FromReal converts the real number f to a Value such that 0 is mapped to
// the zero reference of the range. It is the inverse of Value.Real.
func (rng Range) FromReal(f float64) Value {
	return Value{rng: rng, val: rng.Wrap(f + rng.z)}
}

// ZeroValue returns the Value at the zero reference of the range.
func (rng Range) ZeroValue() Value {
	return Value{rng: rng, val: rng.z}
}

// Range returns the range the value is confined to.
func (v Value) Range() Range { return v.rng }

// Val returns the stored representative in [Lower,Upper).
func (v Value) Val() float64 { return v.val }

// Real unwraps the value to a real number in [Lower-Zero, Upper-Zero),
// mapping the zero reference to 0. It is the inverse of Range.FromReal.
func (v Value) Real() float64 { return v.val - v.rng.z }

func (v Value) String() string {
	return fmt.Sprintf("%v [%v,%v)", v.val, v.rng.l, v.rng.h)
}

// Convert returns the value expressed in another range. The position is
// rescaled proportionally to the target width and re-zeroed. Both ranges
// must describe the same underlying circle (e.g. degrees and radians of
// one full turn); this is not validated and the result is meaningless
// otherwise.
func (v Value) Convert(dst Range) Value {
	if dst == v.rng {
		return v
	}

	p := v.rng.ZeroValue().PDist(v)

	return Value{rng: dst, val: dst.Wrap(p*dst.r/v.rng.r + dst.z)}
}

// coerce brings w into the range of v for mixed-range operations.
func (v Value) coerce(w Value) Value {
	if w.rng == v.rng {
		return w
	}

	return w.Convert(v.rng)
}

// SDist returns the length of the shortest signed walk from v to w. The
// result is in [-Width/2, Width/2).
func (v Value) SDist(w Value) float64 {
	d := v.coerce(w).val - v.val

	if d < -v.rng.r2 {
		return d + v.rng.r
	}

	if d >= v.rng.r2 {
		return d - v.rng.r
	}

	return d
}

// PDist returns the length of the shortest non-decreasing walk from v to w.
// The result is in [0, Width).
func (v Value) PDist(w Value) float64 {
	x := v.coerce(w).val
	if x >= v.val {
		return x - v.val
	}

	d := v.rng.r - v.val + x

	// Nearly coincident points can round onto the full width; they are at
	// distance zero, not a full turn.
	if d >= v.rng.r {
		d = 0
	}

	return d
}

// Add returns v+w. As with all arithmetic on Value, the operation is
// defined relative to the zero reference and the result is wrapped.
func (v Value) Add(w Value) Value {
	return Value{rng: v.rng, val: v.rng.Wrap(v.val + v.coerce(w).val - v.rng.z)}
}

// Sub returns v-w.
func (v Value) Sub(w Value) Value {
	return Value{rng: v.rng, val: v.rng.Wrap(v.val - v.coerce(w).val + v.rng.z)}
}

// Neg returns the additive inverse of v, i.e. the value for which
// v.Add(v.Neg()) is the zero reference.
func (v Value) Neg() Value {
	return Value{rng: v.rng, val: v.rng.Wrap(v.rng.z - v.rng.ZeroValue().SDist(v))}
}

// Opposite returns the antipode of v, half a turn away.
func (v Value) Opposite() Value {
	return Value{rng: v.rng, val: v.rng.Wrap(v.val + v.rng.r2)}
}

// Scale returns v scaled by the real factor f, relative to the zero
// reference.
func (v Value) Scale(f float64) Value {
	return Value{rng: v.rng, val: v.rng.Wrap((v.val-v.rng.z)*f + v.rng.z)}
}

// Div returns v divided by the real divisor f, relative to the zero
// reference.
func (v Value) Div(f float64) Value {
	return Value{rng: v.rng, val: v.rng.Wrap((v.val-v.rng.z)/f + v.rng.z)}
}

// Equals compares the stored representatives for exact floating-point
// equality. This is fragile and only meaningful for identically derived
// values; use AlmostEquals for anything that went through arithmetic.
func (v Value) Equals(w Value) bool {
	return v.val == v.coerce(w).val
}

// AlmostEquals reports whether two values denote nearly the same point on
// the circle, tolerating rounding noise and representatives on opposite
// sides of the wrap boundary.
func (v Value) AlmostEquals(w Value) bool {
	r1 := v.val
	r2 := v.coerce(w).val

	if scalar.EqualWithinAbsOrRel(r1, r2, almostEqAbs, almostEqRel) {
		return true
	}

	if r1 < r2 {
		return scalar.EqualWithinAbsOrRel(r1, r2-v.rng.r, almostEqAbs, almostEqRel)
	}

	return scalar.EqualWithinAbsOrRel(r1, r2+v.rng.r, almostEqAbs, almostEqRel)
}

// The order implied by Lt, Lte, Gt, and Gte is the numeric order of the
// stored representatives. A circle has no canonical total order; check
// carefully whether this is really what you need.

func (v Value) Lt(w Value) bool  { return v.val < v.coerce(w).val }
func (v Value) Lte(w Value) bool { return v.val <= v.coerce(w).val }
func (v Value) Gt(w Value) bool  { return v.val > v.coerce(w).val }
func (v Value) Gte(w Value) bool { return v.val >= v.coerce(w).val }
