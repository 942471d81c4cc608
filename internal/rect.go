package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Rect is an axis aligned rectangle. It is a Polygon with four vertices, in the
// order upper left, lower left, lower right, upper right, where "lower" means
// the second point's y (or upper left y plus height).
type Rect struct {
	Polygon
	width, height float64
}

// NewRect builds a rect from two opposite corners.
func NewRect(upperLeft, lowerRight Point) (Rect, error) {
	poly, err := NewPolygon([]Point{
		upperLeft,
		{X: upperLeft.X, Y: lowerRight.Y},
		lowerRight,
		{X: lowerRight.X, Y: upperLeft.Y},
	})
	if err != nil {
		return Rect{}, errors.Wrap(err, "degenerate rect")
	}
	return Rect{
		Polygon: poly,
		width:   math.Abs(upperLeft.X - lowerRight.X),
		height:  math.Abs(upperLeft.Y - lowerRight.Y),
	}, nil
}

// NewRectWithSize builds a rect from one corner and a size.
func NewRectWithSize(upperLeft Point, width, height float64) (Rect, error) {
	return NewRect(upperLeft, Point{X: upperLeft.X + width, Y: upperLeft.Y + height})
}

// RectParams describes a rect the way a config file or a set of optional
// arguments would: a corner, plus either the opposite corner or a width and
// height.
type RectParams struct {
	UpperLeft     Point
	LowerRight    *Point
	Width, Height float64
}

func (params RectParams) Build() (Rect, error) {
	hasSize := params.Width != 0 || params.Height != 0
	switch {
	case params.LowerRight != nil && hasSize:
		return Rect{}, ErrConflictingRectParams
	case params.LowerRight != nil:
		return NewRect(params.UpperLeft, *params.LowerRight)
	case params.Width != 0 && params.Height != 0:
		return NewRectWithSize(params.UpperLeft, params.Width, params.Height)
	default:
		return Rect{}, ErrIncompleteRectParams
	}
}

func (r Rect) UpperLeft() Point {
	return r.verts[0]
}

func (r Rect) Width() float64 {
	return r.width
}

func (r Rect) Height() float64 {
	return r.height
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{upperLeft: %s, width: %v, height: %v}", r.UpperLeft(), r.width, r.height)
}
