// Package shapeio reads scenes of shapes from the plain text point format, SVG
// and TOML.
package shapeio

import (
	"github.com/osuushi/polygono/internal"
	"github.com/osuushi/polygono/internal/dbg"
)

// Named pairs a shape with the name it was given in the input, or a generated
// one if it didn't have any.
type Named[T any] struct {
	Name  string
	Shape T
}

// Scene is everything read from one input. Points are query points; they are
// not shapes of their own, but are checked against the shapes.
type Scene struct {
	Polygons []Named[internal.Polygon]
	Rects    []Named[internal.Rect]
	Circles  []Named[internal.Circle]
	Segments []Named[internal.LineSeg]
	Points   []Named[internal.Point]
}

func (s *Scene) Empty() bool {
	return len(s.Polygons) == 0 && len(s.Rects) == 0 && len(s.Circles) == 0 &&
		len(s.Segments) == 0 && len(s.Points) == 0
}

// AllPoints returns every coordinate that appears in the scene: vertices,
// segment ends, circle centers and query points.
func (s *Scene) AllPoints() []internal.Point {
	var points []internal.Point
	for _, poly := range s.Polygons {
		points = append(points, poly.Shape.Verts()...)
	}
	for _, rect := range s.Rects {
		points = append(points, rect.Shape.Verts()...)
	}
	for _, circle := range s.Circles {
		points = append(points, circle.Shape.Center)
	}
	for _, seg := range s.Segments {
		points = append(points, seg.Shape.P1, seg.Shape.P2)
	}
	for _, p := range s.Points {
		points = append(points, p.Shape)
	}
	return points
}

type nameKey struct {
	kind  string
	index int
}

// Give every unnamed shape a readable name, distinct from every other name in
// the scene.
func (s *Scene) fillNames() {
	namer := dbg.NewNamer()
	reserveNames(namer, s.Polygons)
	reserveNames(namer, s.Rects)
	reserveNames(namer, s.Circles)
	reserveNames(namer, s.Segments)
	reserveNames(namer, s.Points)

	fillNames(namer, s.Polygons, "polygon")
	fillNames(namer, s.Rects, "rect")
	fillNames(namer, s.Circles, "circle")
	fillNames(namer, s.Segments, "segment")
	fillNames(namer, s.Points, "point")
}

func reserveNames[T any](namer *dbg.Namer, shapes []Named[T]) {
	for _, shape := range shapes {
		if shape.Name != "" {
			namer.Reserve(shape.Name)
		}
	}
}

func fillNames[T any](namer *dbg.Namer, shapes []Named[T], kind string) {
	for i := range shapes {
		if shapes[i].Name == "" {
			shapes[i].Name = namer.Name(nameKey{kind, i})
		}
	}
}
