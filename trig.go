package circular

import "math"

// The trigonometric bridges convert between circular values and the linear
// real axis. Forward functions accept a Value of any range and evaluate it
// as an angle in signed radians; inverse functions produce a Value in the
// caller-supplied range.

// Sin returns the sine of v.
func Sin(v Value) float64 {
	return math.Sin(v.Convert(SignedRadians).Real())
}

// Cos returns the cosine of v.
func Cos(v Value) float64 {
	return math.Cos(v.Convert(SignedRadians).Real())
}

// Tan returns the tangent of v.
func Tan(v Value) float64 {
	return math.Tan(v.Convert(SignedRadians).Real())
}

// Asin returns the arcsine of x as a Value in rng.
func Asin(rng Range, x float64) Value {
	return SignedRadians.Value(math.Asin(x)).Convert(rng)
}

// Acos returns the arccosine of x as a Value in rng.
func Acos(rng Range, x float64) Value {
	return SignedRadians.Value(math.Acos(x)).Convert(rng)
}

// Atan returns the arctangent of x as a Value in rng.
func Atan(rng Range, x float64) Value {
	return SignedRadians.Value(math.Atan(x)).Convert(rng)
}

// Atan2 returns the angle of the point (x,y) as a Value in rng.
func Atan2(rng Range, y, x float64) Value {
	return SignedRadians.Value(math.Atan2(y, x)).Convert(rng)
}
