package internal

// This contains no actual tests. It is just a helper for checking
// containment against a reference predicate.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Samples a grid of points over the polygon's bounding box (padded by 10%) and
// checks that PointInside agrees with the expected predicate everywhere. The
// grid is offset by a third of a step so that samples don't land exactly on
// axis aligned edges with round coordinates, where the even-odd rule and a
// simple predicate can legitimately disagree.
func validateContainmentBySampling(t *testing.T, polygon Polygon, expected func(Point) bool) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Verts() {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	for yi := 0; minY+float64(yi)*step <= maxY; yi++ {
		y := minY + (float64(yi)+1.0/3)*step
		for xi := 0; minX+float64(xi)*step <= maxX; xi++ {
			x := minX + (float64(xi)+1.0/3)*step
			p := Point{X: x, Y: y}

			if expected(p) {
				assert.True(t, polygon.PointInside(p), "point %v should be inside %v", p, polygon)
			} else {
				assert.False(t, polygon.PointInside(p), "point %v should not be inside %v", p, polygon)
			}
		}
	}
}

// Strict containment in the axis aligned box spanned by two corners
func insideBox(a, b Point) func(Point) bool {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return func(p Point) bool {
		return minX < p.X && p.X < maxX && minY < p.Y && p.Y < maxY
	}
}
