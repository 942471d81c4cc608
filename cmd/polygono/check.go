package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/polygono/internal"
	"github.com/osuushi/polygono/internal/shapeio"
)

// Check writes a report on the scene:
//
//   - whether each polygon and rect intersects itself
//   - which pairs of segments cross, and where
//   - which pairs of circles intersect
//   - which shapes contain each query point
func Check(w io.Writer, au aurora.Aurora, scene *shapeio.Scene) error {
	r := &reporter{w: w, au: au}

	for _, poly := range scene.Polygons {
		r.selfIntersection("polygon", poly.Name, poly.Shape)
	}
	for _, rect := range scene.Rects {
		r.selfIntersection("rect", rect.Name, rect.Shape.Polygon)
	}

	for i, seg := range scene.Segments {
		for _, other := range scene.Segments[i+1:] {
			name := fmt.Sprintf("segments %s and %s", seg.Name, other.Name)
			if !seg.Shape.Intersects(other.Shape) {
				r.printf("%s: %s\n", name, au.Green("apart"))
				continue
			}
			if p, ok := seg.Shape.IntersectionPoint(other.Shape); ok {
				r.printf("%s: %s at %s\n", name, au.Red("cross"), p)
			} else {
				// Identical segments
				r.printf("%s: %s\n", name, au.Red("coincide"))
			}
		}
	}

	for i, circle := range scene.Circles {
		for _, other := range scene.Circles[i+1:] {
			name := fmt.Sprintf("circles %s and %s", circle.Name, other.Name)
			if circle.Shape.Intersects(other.Shape) {
				r.printf("%s: %s\n", name, au.Red("intersect"))
			} else {
				r.printf("%s: %s\n", name, au.Green("apart"))
			}
		}
	}

	for _, point := range scene.Points {
		var containers []string
		for _, poly := range scene.Polygons {
			if poly.Shape.PointInside(point.Shape) {
				containers = append(containers, poly.Name)
			}
		}
		for _, rect := range scene.Rects {
			if rect.Shape.PointInside(point.Shape) {
				containers = append(containers, rect.Name)
			}
		}
		for _, circle := range scene.Circles {
			if circle.Shape.PointInside(point.Shape) {
				containers = append(containers, circle.Name)
			}
		}
		name := fmt.Sprintf("point %s %s", point.Name, point.Shape)
		if len(containers) == 0 {
			r.printf("%s: %s\n", name, au.Yellow("outside everything"))
		} else {
			r.printf("%s: inside %s\n", name, au.Cyan(strings.Join(containers, ", ")))
		}
	}
	return r.err
}

// Keeps the first write error so the report code doesn't have to check every
// line.
type reporter struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

func (r *reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) selfIntersection(kind, name string, poly internal.Polygon) {
	if poly.IsSelfIntersecting() {
		r.printf("%s %s: %s\n", kind, name, r.au.Red("self intersecting"))
	} else {
		r.printf("%s %s: %s\n", kind, name, r.au.Green("simple"))
	}
}
