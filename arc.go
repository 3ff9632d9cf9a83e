package circular

import "math"

// Slack for endpoint-inclusive containment checks on arcs.
const arcSlack = 1e-12

// Arc is a directed circular arc: the non-decreasing walk of a given
// length from a start point. The length is clamped to [0,Width]; an arc of
// length Width is the full circle.
type Arc struct {
	start  Value
	end    Value
	length float64
}

// Arc returns the arc starting at start (wrapped into the range) with the
// given length (clamped to [0,Width]).
func (rng Range) Arc(start, length float64) Arc {
	length = clampLength(rng, length)
	s := rng.Value(start)

	return Arc{
		start:  s,
		end:    rng.Value(s.val + length),
		length: length,
	}
}

// NewArc returns the arc starting at start with the given length, measured
// in the units of start's range.
func NewArc(start Value, length float64) Arc {
	return start.rng.Arc(start.val, length)
}

// ArcBetween returns the arc from start to end, i.e. the non-decreasing
// walk between them. If end equals start the length is 0, not a full
// circle. Mixed ranges are allowed; end is converted into start's range.
func ArcBetween(start, end Value) Arc {
	end = start.coerce(end)

	return Arc{
		start:  start,
		end:    end,
		length: start.PDist(end),
	}
}

func clampLength(rng Range, l float64) float64 {
	return math.Min(math.Max(0, l), rng.r)
}

// Start returns the start point of the arc.
func (a Arc) Start() Value { return a.start }

// End returns the end point of the arc. Note that End equals Start both
// for a zero-length arc and for the full circle.
func (a Arc) End() Value { return a.end }

// Len returns the arc length in [0,Width].
func (a Arc) Len() float64 { return a.length }

// IsFull returns whether the arc covers the whole circle.
func (a Arc) IsFull() bool { return a.length == a.start.rng.r }

// Convert returns the arc expressed in another range, with the length
// rescaled proportionally. A full circle stays a full circle exactly.
func (a Arc) Convert(dst Range) Arc {
	src := a.start.rng
	if dst == src {
		return a
	}

	length := a.length * dst.r / src.r
	if a.IsFull() {
		length = dst.r
	}

	start := a.start.Convert(dst)

	return Arc{
		start:  start,
		end:    dst.Value(start.val + length),
		length: length,
	}
}

// Equals returns whether two arcs cover the same points. Any two full
// circles are equal regardless of their start point.
func (a Arc) Equals(b Arc) bool {
	b = b.Convert(a.start.rng)

	if a.IsFull() && b.IsFull() {
		return true
	}

	return a.start.Equals(b.start) && a.length == b.length
}

// Contains returns whether the arc contains the value. Arcs contain their
// endpoints.
func (a Arc) Contains(v Value) bool {
	return a.length-a.start.PDist(v) > -arcSlack
}

// ContainsArc returns whether the arc contains all of b. Arcs contain
// their endpoints.
func (a Arc) ContainsArc(b Arc) bool {
	b = b.Convert(a.start.rng)

	if a.IsFull() {
		return true
	}

	if b.IsFull() {
		return false
	}

	// b is contained iff walking from a.start reaches b.start before
	// b.end, and b.end before a.end.
	l1 := a.start.PDist(b.start)
	l2 := a.start.PDist(b.end)

	return l2-l1 > -arcSlack && a.length-l2 > -arcSlack
}

// Intersects returns whether the two arcs share at least one point.
func (a Arc) Intersects(b Arc) bool {
	b = b.Convert(a.start.rng)

	return a.Contains(b.start) || b.Contains(a.start)
}
