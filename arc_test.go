package circular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArcConstruction(t *testing.T) {
	deg := UnsignedDegrees

	a := deg.Arc(100, 200)
	require.Equal(t, float64(100), a.Start().Val())
	require.Equal(t, float64(300), a.End().Val())
	require.Equal(t, float64(200), a.Len())
	require.False(t, a.IsFull())

	// Length is clamped into [0,Width].
	require.Equal(t, float64(0), deg.Arc(10, -5).Len())
	require.Equal(t, float64(360), deg.Arc(10, 500).Len())
	require.True(t, deg.Arc(10, 500).IsFull())

	// Start is wrapped.
	require.Equal(t, float64(350), deg.Arc(-10, 20).Start().Val())
}

func TestArcBetween(t *testing.T) {
	deg := UnsignedDegrees

	a := ArcBetween(deg.Value(350), deg.Value(10))
	require.Equal(t, float64(20), a.Len())

	// Identical endpoints give a zero-length arc, not a full circle.
	b := ArcBetween(deg.Value(42), deg.Value(42))
	require.Equal(t, float64(0), b.Len())

	// Mixed ranges: the end point is converted into the start's range.
	c := ArcBetween(UnsignedRadians.Value(math.Pi/2), UnsignedRadians.Value(3*math.Pi/2))
	d := c.Convert(deg)
	require.InDelta(t, 90, d.Start().Val(), 1e-9)
	require.InDelta(t, 180, d.Len(), 1e-9)
}

func TestArcContains(t *testing.T) {
	a := UnsignedDegrees.Arc(100, 200) // covers [100,300]

	require.False(t, a.Contains(UnsignedDegrees.Value(50)))
	require.True(t, a.Contains(UnsignedDegrees.Value(100)))
	require.True(t, a.Contains(UnsignedDegrees.Value(150)))
	require.True(t, a.Contains(UnsignedDegrees.Value(200)))
	require.True(t, a.Contains(UnsignedDegrees.Value(250)))
	require.True(t, a.Contains(UnsignedDegrees.Value(300)))
	require.False(t, a.Contains(UnsignedDegrees.Value(350)))

	// Arcs crossing the wrap boundary.
	b := UnsignedDegrees.Arc(350, 20) // covers [350,10]
	require.True(t, b.Contains(UnsignedDegrees.Value(355)))
	require.True(t, b.Contains(UnsignedDegrees.Value(0)))
	require.True(t, b.Contains(UnsignedDegrees.Value(5)))
	require.False(t, b.Contains(UnsignedDegrees.Value(20)))
}

func TestArcFullCircleEquality(t *testing.T) {
	// Full circles are equal regardless of their start point.
	require.True(t, SignedDegrees.Arc(-170, 360).Equals(SignedDegrees.Arc(-180, 360)))
	require.True(t, SignedDegrees.Arc(-170, 360).ContainsArc(SignedDegrees.Arc(-180, 360)))

	require.False(t, SignedDegrees.Arc(-170, 359).Equals(SignedDegrees.Arc(-180, 359)))
}

func TestArcIntersects(t *testing.T) {
	deg := UnsignedDegrees

	// Sharing a single endpoint counts as intersecting.
	require.True(t, deg.Arc(0, 100).Intersects(deg.Arc(100, 100)))
	require.True(t, deg.Arc(100, 100).Intersects(deg.Arc(0, 100)))

	require.False(t, deg.Arc(0, 50).Intersects(deg.Arc(100, 50)))
	require.True(t, deg.Arc(300, 120).Intersects(deg.Arc(0, 50)))
}

func TestArcConvert(t *testing.T) {
	a := UnsignedDegrees.Arc(90, 180)

	b := a.Convert(UnsignedRadians)
	require.InDelta(t, math.Pi/2, b.Start().Val(), 1e-12)
	require.InDelta(t, math.Pi, b.Len(), 1e-12)

	// A full circle converts to a full circle exactly.
	f := UnsignedDegrees.Arc(123, 360).Convert(SignedRadians)
	require.True(t, f.IsFull())
	require.Equal(t, 2*math.Pi, f.Len())
}

// Containment and equality counted over a regular grid of arcs satisfy
// closed-form identities: with n start points and n+1 lengths there are
// 2n^2 equal pairs and n^2(n^2+9n+8)/6 containing pairs, and containment
// counts are symmetric.
func TestArcGridIdentities(t *testing.T) {
	const steps = 12

	for _, rng := range allRanges() {
		step := rng.Width() / steps

		length := func(j int) float64 {
			if j == steps {
				return rng.Width()
			}

			return float64(j) * step
		}

		equal, contains, contained := 0, 0, 0

		for i := 0; i < steps; i++ {
			for j := 0; j <= steps; j++ {
				a1 := rng.Arc(rng.Lower()+float64(i)*step, length(j))

				for k := 0; k < steps; k++ {
					for l := 0; l <= steps; l++ {
						a2 := rng.Arc(rng.Lower()+float64(k)*step, length(l))

						b1 := a1.ContainsArc(a2)
						b2 := a2.ContainsArc(a1)

						if b1 {
							contains++
						}

						if b2 {
							contained++
						}

						if a1.Equals(a2) {
							equal++
							require.True(t, b1 && b2)
						} else {
							require.False(t, b1 && b2)
						}
					}
				}
			}
		}

		require.Equal(t, 2*steps*steps, equal)
		require.Equal(t, steps*steps*(steps*steps+9*steps+8)/6, contains)
		require.Equal(t, contains, contained)
	}
}
