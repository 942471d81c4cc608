package shapeio

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/osuushi/polygono/internal"
)

// The TOML scene layout. Coordinates are two element arrays.
//
//	[[polygon]]
//	name = "square"
//	points = [[0, 0], [0, 10], [10, 10], [10, 0]]
//
//	[[rect]]
//	upper_left = [0, 0]
//	width = 10
//	height = 5
//
//	[[circle]]
//	center = [3, 3]
//	radius = 2
//
//	[[segment]]
//	from = [0, 0]
//	to = [10, 10]
//
//	[[point]]
//	at = [5, 5]
type tomlScene struct {
	Polygons []struct {
		Name   string      `toml:"name"`
		Points [][]float64 `toml:"points"`
	} `toml:"polygon"`
	Rects []struct {
		Name       string    `toml:"name"`
		UpperLeft  []float64 `toml:"upper_left"`
		LowerRight []float64 `toml:"lower_right"`
		Width      float64   `toml:"width"`
		Height     float64   `toml:"height"`
	} `toml:"rect"`
	Circles []struct {
		Name   string    `toml:"name"`
		Center []float64 `toml:"center"`
		Radius float64   `toml:"radius"`
	} `toml:"circle"`
	Segments []struct {
		Name string    `toml:"name"`
		From []float64 `toml:"from"`
		To   []float64 `toml:"to"`
	} `toml:"segment"`
	Points []struct {
		Name string    `toml:"name"`
		At   []float64 `toml:"at"`
	} `toml:"point"`
}

// ReadTOML reads a scene from a TOML document. Rects may give either
// lower_right or width and height, but not both.
func ReadTOML(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read toml scene")
	}
	var doc tomlScene
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse toml scene")
	}

	scene = &Scene{}
	for i, p := range doc.Polygons {
		points := make([]internal.Point, len(p.Points))
		for j, coords := range p.Points {
			points[j] = tomlPoint(coords, "polygon", i, p.Name)
		}
		poly, err := internal.NewPolygon(points)
		if err != nil {
			wrapf(err, "polygon %d %q", i, p.Name)
		}
		scene.Polygons = append(scene.Polygons, Named[internal.Polygon]{Name: p.Name, Shape: poly})
	}

	for i, rp := range doc.Rects {
		params := internal.RectParams{
			UpperLeft: tomlPoint(rp.UpperLeft, "rect", i, rp.Name),
			Width:     rp.Width,
			Height:    rp.Height,
		}
		if rp.LowerRight != nil {
			lowerRight := tomlPoint(rp.LowerRight, "rect", i, rp.Name)
			params.LowerRight = &lowerRight
		}
		rect, err := params.Build()
		if err != nil {
			wrapf(err, "rect %d %q", i, rp.Name)
		}
		scene.Rects = append(scene.Rects, Named[internal.Rect]{Name: rp.Name, Shape: rect})
	}

	for i, c := range doc.Circles {
		circle, err := internal.NewCircle(tomlPoint(c.Center, "circle", i, c.Name), c.Radius)
		if err != nil {
			wrapf(err, "circle %d %q", i, c.Name)
		}
		scene.Circles = append(scene.Circles, Named[internal.Circle]{Name: c.Name, Shape: circle})
	}

	for i, s := range doc.Segments {
		seg := internal.LineSeg{
			P1: tomlPoint(s.From, "segment", i, s.Name),
			P2: tomlPoint(s.To, "segment", i, s.Name),
		}
		scene.Segments = append(scene.Segments, Named[internal.LineSeg]{Name: s.Name, Shape: seg})
	}

	for i, p := range doc.Points {
		scene.Points = append(scene.Points, Named[internal.Point]{Name: p.Name, Shape: tomlPoint(p.At, "point", i, p.Name)})
	}

	scene.fillNames()
	return scene, nil
}

func tomlPoint(coords []float64, kind string, index int, name string) internal.Point {
	if len(coords) != 2 {
		fatalf("%s %d %q: expected [x, y], got %v", kind, index, name, coords)
	}
	return internal.Point{X: coords[0], Y: coords[1]}
}
