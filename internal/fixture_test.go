package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a Polygon. If anything goes wrong,
// it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}

	result, err := NewPolygon(points)
	if err != nil {
		log.Fatalf("Invalid polygon in fixture %q: %v", name, err)
	}
	return result
}

// Some ad hoc code specified fixtures

// A ten pointed star with alternating radii. Simple, but not convex.
func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return mustPolygon(points)
}

// A regular polygon drawn by jumping `step` vertices at a time. With step > 1
// this is a star polygon whose edges cross each other.
func StarPolygon(vertexCount, step int, radius float64) Polygon {
	points := make([]Point, vertexCount)
	for i := range points {
		angle := 2 * math.Pi * float64(i*step) / float64(vertexCount)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return mustPolygon(points)
}

// An L shape made of a 10x4 bar along the bottom and a 4x10 bar up the left.
func LShape() Polygon {
	return mustPolygon([]Point{
		{0, 0},
		{10, 0},
		{10, 4},
		{4, 4},
		{4, 10},
		{0, 10},
	})
}

func mustPolygon(points []Point) Polygon {
	poly, err := NewPolygon(points)
	if err != nil {
		panic(err)
	}
	return poly
}
