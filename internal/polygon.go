package internal

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Polygon is a closed polygon. The last vertex connects back to the first, so
// the first point should not be repeated at the end.
type Polygon struct {
	verts []Point
}

// NewPolygon checks that there are at least three points and that no two of
// them are equal (using tolerant point equality).
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}
	for i, p := range points[1:] {
		if j := indexOfPoint(points[:i+1], p); j >= 0 {
			return Polygon{}, errors.Wrapf(ErrDuplicatePoint, "point %d %s repeats point %d %s", i+1, p, j, points[j])
		}
	}
	return Polygon{verts: slices.Clone(points)}, nil
}

// Verts returns a copy of the vertices in order.
func (poly Polygon) Verts() []Point {
	return slices.Clone(poly.verts)
}

func (poly Polygon) Len() int {
	return len(poly.verts)
}

// Outline yields the edges of the polygon in vertex order, ending with the
// edge from the last vertex back to the first. Each call starts over.
func (poly Polygon) Outline() iter.Seq[LineSeg] {
	return func(yield func(LineSeg) bool) {
		n := len(poly.verts)
		for i, vertex := range poly.verts {
			nextVertex := poly.verts[CircularIndex(i+1, n)]
			if !yield(LineSeg{P1: vertex, P2: nextVertex}) {
				return
			}
		}
	}
}

func (poly Polygon) Edges() []LineSeg {
	return slices.Collect(poly.Outline())
}

// IsSelfIntersecting tests every pair of edges against each other. This is
// quadratic in the number of vertices. Adjacent edges meeting at their shared
// vertex don't count as an intersection.
func (poly Polygon) IsSelfIntersecting() bool {
	edges := poly.Edges()
	for i, edge := range edges {
		for _, otherEdge := range edges[i+1:] {
			if edge.Intersects(otherEdge) {
				return true
			}
		}
	}
	return false
}

// Even-odd point in polygon, casting a ray in the +X direction. Each edge runs
// from the previous vertex j to the current vertex i. Points on the boundary
// may land either way depending on which edges they touch.
func (poly Polygon) PointInside(point Point) bool {
	contains := false
	j := len(poly.verts) - 1
	for i, vi := range poly.verts {
		vj := poly.verts[j]
		if (vi.Y > point.Y) != (vj.Y > point.Y) &&
			point.X < (vj.X-vi.X)*(point.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			contains = !contains
		}
		j = i
	}
	return contains
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.verts))
	for i, p := range poly.verts {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon[%s]", strings.Join(parts, ", "))
}
