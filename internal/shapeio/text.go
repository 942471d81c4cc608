package shapeio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/polygono/internal"
)

// ReadText reads polygons given as newline separated points in the form
// "x y", with each polygon separated by an extra newline. A line of the form
// "@ x y" is a query point instead, and lines starting with "#" are comments.
//
// Polygons are validated as they are read, so a polygon with too few or
// repeated points fails the whole read.
func ReadText(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	scene = &Scene{}
	// Scan lines
	scanner := bufio.NewScanner(r)
	var points []internal.Point
	lineNumber := 0
	flush := func() {
		if len(points) == 0 {
			return
		}
		poly, err := internal.NewPolygon(points)
		if err != nil {
			wrapf(err, "polygon ending on line %d", lineNumber)
		}
		scene.Polygons = append(scene.Polygons, Named[internal.Polygon]{Shape: poly})
		points = nil
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			// If it's empty, and we collected any points, this is the end of the polygon
			flush()
		case strings.HasPrefix(line, "@"):
			point := parsePoint(strings.TrimPrefix(line, "@"), lineNumber)
			scene.Points = append(scene.Points, Named[internal.Point]{Shape: point})
		default:
			points = append(points, parsePoint(line, lineNumber))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read text scene")
	}

	// Handle trailing polygon if any
	flush()
	scene.fillNames()
	return scene, nil
}

func parsePoint(line string, lineNumber int) internal.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	return internal.Point{
		X: parseFloat(parts[0], "x", lineNumber),
		Y: parseFloat(parts[1], "y", lineNumber),
	}
}

func parseFloat(s, what string, lineNumber int) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("line %d: invalid %s value %q", lineNumber, what, s)
	}
	return v
}
