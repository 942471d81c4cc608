package internal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Point{0, 0}.Equal(Point{0, 0}))
	assert.True(t, Point{1, 2}.Equal(Point{1.001, 2.001}))
	assert.False(t, Point{1, 2}.Equal(Point{1, 2.01}))
	assert.False(t, Point{1, 2}.Equal(Point{2, 1}))

	t.Run("not transitive", func(t *testing.T) {
		a := Point{0, 0}
		b := Point{0.003, 0}
		c := Point{0.006, 0}
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(c))
		assert.False(t, a.Equal(c))
	})

	t.Run("per axis, not by distance", func(t *testing.T) {
		// Both axes are just inside the threshold, so the distance is larger than
		// either axis difference on its own
		a := Point{0, 0}
		b := Point{0.0031, 0.0031}
		assert.True(t, a.Equal(b))
		assert.Greater(t, a.DistanceTo(b), math.Sqrt(Epsilon))
	})
}

func TestPoint_DistanceTo(t *testing.T) {
	assert.Equal(t, 5.0, Point{0, 0}.DistanceTo(Point{3, 4}))
	assert.Equal(t, 5.0, Point{3, 4}.DistanceTo(Point{0, 0}))
	assert.Equal(t, 10.0, Point{-5, 0}.DistanceTo(Point{5, 0}))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p := randomPoint(rng)
		assert.Equal(t, 0.0, p.DistanceTo(p))
	}
}

func TestPoint_RotateAbout(t *testing.T) {
	t.Run("about origin", func(t *testing.T) {
		origin := Point{0, 0}
		point := Point{1, 1}

		assertPointEqual(t, Point{-1, 1}, point.RotateAbout(origin, 90))
		assertPointEqual(t, Point{0, math.Sqrt2}, point.RotateAbout(origin, 45))
		assertPointEqual(t, Point{-1, -1}, point.RotateAbout(origin, 180))
		assertPointEqual(t, Point{1, -1}, point.RotateAbout(origin, -90))
	})

	t.Run("about point", func(t *testing.T) {
		about := Point{1, 1}
		point := Point{1, 2}

		assertPointEqual(t, Point{0, 1}, point.RotateAbout(about, 90))
		assertPointEqual(t, Point{1, 0}, point.RotateAbout(about, 180))
		assertPointEqual(t, Point{1, 2}, point.RotateAbout(about, 720))
	})

	t.Run("properties", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 200; i++ {
			p := randomPoint(rng)
			pivot := randomPoint(rng)
			degrees := rng.Float64()*1440 - 720

			rotated := p.RotateAbout(pivot, degrees)
			// Rotation preserves distance to the pivot
			assert.InDelta(t, pivot.DistanceTo(p), pivot.DistanceTo(rotated), 1e-9)
			// A full turn goes nowhere
			assertPointEqual(t, p, p.RotateAbout(pivot, 360))
			// Rotating back undoes the rotation
			assertPointEqual(t, p, rotated.RotateAbout(pivot, -degrees))
		}
	})
}

func TestPoint_Unpack(t *testing.T) {
	x, y := Point{3, 4}.Unpack()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

// Helpers

func randomPoint(rng *rand.Rand) Point {
	return Point{
		X: rng.Float64()*200 - 100,
		Y: rng.Float64()*200 - 100,
	}
}
