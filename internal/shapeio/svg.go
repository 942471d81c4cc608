package shapeio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/polygono/internal"
)

// ReadSVG reads polygon, rect, circle and line elements from an SVG document.
// This is not a full (or even correct) SVG reader: transforms, paths and
// units are ignored. The id attribute, if present, names the shape.
func ReadSVG(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	scene = &Scene{}
	for _, el := range rootEl.FindAll("polygon") {
		poly, err := internal.NewPolygon(parseSVGPoints(el))
		if err != nil {
			wrapf(err, "svg polygon %q", el.Attributes["id"])
		}
		scene.Polygons = append(scene.Polygons, Named[internal.Polygon]{Name: el.Attributes["id"], Shape: poly})
	}

	for _, el := range rootEl.FindAll("rect") {
		upperLeft := internal.Point{
			X: svgFloat(el, "x", true),
			Y: svgFloat(el, "y", true),
		}
		rect, err := internal.NewRectWithSize(upperLeft, svgFloat(el, "width", false), svgFloat(el, "height", false))
		if err != nil {
			wrapf(err, "svg rect %q", el.Attributes["id"])
		}
		scene.Rects = append(scene.Rects, Named[internal.Rect]{Name: el.Attributes["id"], Shape: rect})
	}

	for _, el := range rootEl.FindAll("circle") {
		center := internal.Point{
			X: svgFloat(el, "cx", true),
			Y: svgFloat(el, "cy", true),
		}
		circle, err := internal.NewCircle(center, svgFloat(el, "r", false))
		if err != nil {
			wrapf(err, "svg circle %q", el.Attributes["id"])
		}
		scene.Circles = append(scene.Circles, Named[internal.Circle]{Name: el.Attributes["id"], Shape: circle})
	}

	for _, el := range rootEl.FindAll("line") {
		seg := internal.LineSeg{
			P1: internal.Point{X: svgFloat(el, "x1", true), Y: svgFloat(el, "y1", true)},
			P2: internal.Point{X: svgFloat(el, "x2", true), Y: svgFloat(el, "y2", true)},
		}
		scene.Segments = append(scene.Segments, Named[internal.LineSeg]{Name: el.Attributes["id"], Shape: seg})
	}

	scene.fillNames()
	return scene, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in pairs.
func parseSVGPoints(el *svgparser.Element) []internal.Point {
	numbers := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(numbers)%2 != 0 {
		fatalf("svg polygon %q has an odd number of coordinates", el.Attributes["id"])
	}
	points := make([]internal.Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		points = append(points, internal.Point{
			X: svgNumber(el, "points", numbers[i]),
			Y: svgNumber(el, "points", numbers[i+1]),
		})
	}
	return points
}

// Attributes that SVG defaults to zero are optional, the rest are required
func svgFloat(el *svgparser.Element, name string, optional bool) float64 {
	value, ok := el.Attributes[name]
	if !ok {
		if optional {
			return 0
		}
		fatalf("svg %s %q is missing %s", el.Name, el.Attributes["id"], name)
	}
	return svgNumber(el, name, value)
}

func svgNumber(el *svgparser.Element, name, value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		fatalf("svg %s %q has invalid %s %q", el.Name, el.Attributes["id"], name, value)
	}
	return v
}
