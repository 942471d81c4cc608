// Package render rasterizes scenes with gg. Simple polygons are filled green,
// self intersecting ones red, circles blue, segments yellow with their
// crossings marked, and query points white. Every shape is labeled with its
// name.
package render

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/polygono/internal"
	"github.com/osuushi/polygono/internal/shapeio"
)

// Padding around the scene, in pixels
const Padding = 40

// Bounds of the scene in scene coordinates, including circle extents. An empty
// scene has zero bounds.
func Bounds(scene *shapeio.Scene) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	include := func(p internal.Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, p := range scene.AllPoints() {
		include(p, 0)
	}
	for _, circle := range scene.Circles {
		include(circle.Shape.Center, circle.Shape.Radius)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

// Draw renders the scene at the given number of pixels per unit. The y axis
// points up, as it does on graph paper.
func Draw(scene *shapeio.Scene, scale float64) image.Image {
	return newContext(scene, scale).Image()
}

// SavePNG renders the scene and writes it to path.
func SavePNG(scene *shapeio.Scene, scale float64, path string) error {
	c := newContext(scene, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save %s", path)
	}
	return nil
}

// Preview prints a PNG to the terminal. This only works in iTerm.
func Preview(path string) error {
	if err := imgcat.CatFile(path, os.Stdout); err != nil {
		return errors.Wrapf(err, "could not preview %s", path)
	}
	return nil
}

func newContext(scene *shapeio.Scene, scale float64) *gg.Context {
	minX, minY, maxX, maxY := Bounds(scene)

	// Set up the context
	width := int(scale*(maxX-minX)) + Padding*2
	height := int(scale*(maxY-minY)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(Padding, Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line widths and dots are given in pixels, so undo the scale
	px := 1 / scale

	for _, poly := range scene.Polygons {
		drawPolygon(c, poly.Shape, px)
		label(c, poly.Name, centroid(poly.Shape.Verts()))
	}
	for _, rect := range scene.Rects {
		drawPolygon(c, rect.Shape.Polygon, px)
		label(c, rect.Name, centroid(rect.Shape.Verts()))
	}

	for _, circle := range scene.Circles {
		c.DrawCircle(circle.Shape.Center.X, circle.Shape.Center.Y, circle.Shape.Radius)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0.5, 0.6, 1)
		c.SetLineWidth(2 * px)
		c.Stroke()
		label(c, circle.Name, circle.Shape.Center)
	}

	c.SetLineWidth(2 * px)
	for i, seg := range scene.Segments {
		c.DrawLine(seg.Shape.P1.X, seg.Shape.P1.Y, seg.Shape.P2.X, seg.Shape.P2.Y)
		c.SetRGB(1, 1, 0)
		c.Stroke()
		for _, other := range scene.Segments[i+1:] {
			if !seg.Shape.Intersects(other.Shape) {
				continue
			}
			if p, ok := seg.Shape.IntersectionPoint(other.Shape); ok {
				c.DrawCircle(p.X, p.Y, 4*px)
				c.SetRGB(1, 0, 0)
				c.Fill()
			}
		}
		mid, _ := seg.Shape.PointAlong(0.5)
		label(c, seg.Name, mid)
	}

	for _, point := range scene.Points {
		c.DrawCircle(point.Shape.X, point.Shape.Y, 3*px)
		c.SetRGB(1, 1, 1)
		c.Fill()
		label(c, point.Name, point.Shape)
	}
	return c
}

func drawPolygon(c *gg.Context, poly internal.Polygon, px float64) {
	verts := poly.Verts()
	c.MoveTo(verts[0].X, verts[0].Y)
	for _, p := range verts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	if poly.IsSelfIntersecting() {
		c.SetRGBA(0.6, 0, 0, 0.7)
	} else {
		c.SetRGBA(0, 0.5, 0, 0.7)
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 * px)
	c.Stroke()
}

// Write a label centered on a point in scene coordinates.
func label(c *gg.Context, text string, at internal.Point) {
	// We have to go back to identity to draw the text, or it would come out
	// flipped and scaled, so get the point in native coordinates
	x, y := c.TransformPoint(at.X, at.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(text, x, y, 0.5, 0.5)
	c.Pop()
}

func centroid(points []internal.Point) internal.Point {
	var sum internal.Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return internal.Point{X: sum.X / n, Y: sum.Y / n}
}
