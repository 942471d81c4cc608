package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Line is an infinite line through an anchor point with a given slope. Lines
// are values; "changing" the slope produces a new line with WithSlope.
type Line struct {
	p     Point
	slope Slope
}

// NewLine creates a line through p. An infinite slope (of either sign) makes a
// vertical line.
func NewLine(p Point, slope float64) Line {
	return Line{p: p, slope: FiniteSlope(slope)}
}

func NewVerticalLine(p Point) Line {
	return Line{p: p, slope: Vertical}
}

// P is the anchor point the line was created with.
func (l Line) P() Point {
	return l.p
}

func (l Line) Slope() Slope {
	return l.slope
}

// WithSlope returns a copy of the line through the same anchor with a new slope.
func (l Line) WithSlope(slope float64) Line {
	return NewLine(l.p, slope)
}

// YIntercept returns the y value where the line crosses x = 0. A vertical line
// only has one if it lies on the y axis, in which case the intercept is +Inf.
// Any other vertical line has no intercept, and ok is false (the value is NaN).
func (l Line) YIntercept() (y float64, ok bool) {
	if l.slope.IsVertical() {
		if l.p.X == 0 {
			return math.Inf(1), true
		}
		return math.NaN(), false
	}
	return l.p.Y - l.slope.Value()*l.p.X, true
}

// PointIsOn checks whether the point lies on the line. Apart from the anchor
// itself, which uses tolerant equality, slopes are compared exactly.
func (l Line) PointIsOn(point Point) bool {
	if point.Equal(l.p) {
		return true
	}
	xDiff := point.X - l.p.X
	if xDiff == 0 {
		return l.slope.IsVertical()
	}
	if l.slope.IsVertical() {
		return false
	}
	return l.slope.Value() == (point.Y-l.p.Y)/xDiff
}

// IsParallelTo is true if both lines are vertical, or their finite slopes are
// exactly equal.
func (l Line) IsParallelTo(other Line) bool {
	if l.slope.IsVertical() {
		return other.slope.IsVertical()
	}
	return !other.slope.IsVertical() && l.slope.Value() == other.slope.Value()
}

// IntersectionPoint solves the two line equations. Parallel lines have no
// intersection, and neither do coincident lines, even though they technically
// share every point.
//
// The solution is plain float arithmetic on Slope.Value and YIntercept, so a
// vertical line participates through infinity (and NaN for a missing
// intercept) rather than through a special case. Callers who care about
// vertical lines should check the coordinates for NaN.
func (l Line) IntersectionPoint(other Line) (Point, bool) {
	if l.IsParallelTo(other) {
		return Point{}, false
	}
	selfIntercept, _ := l.YIntercept()
	otherIntercept, _ := other.YIntercept()
	// b2 - b1 over m1 - m2; the reversed numerator is only right where the lines cross at x = 0
	x := (otherIntercept - selfIntercept) / (l.slope.Value() - other.slope.Value())
	return Point{X: x, Y: l.slope.Value()*x + selfIntercept}, true
}

func (l Line) CreateParallelLine(point Point) Line {
	return Line{p: point, slope: l.slope}
}

// CreateLineSegmentOfLength makes a segment of the given length centered on a
// point of the line. The point defaults to the anchor, and must be on the line.
func (l Line) CreateLineSegmentOfLength(length float64, at ...Point) (LineSeg, error) {
	point := l.p
	if len(at) > 0 {
		point = at[0]
	}
	if !l.PointIsOn(point) {
		return LineSeg{}, errors.Wrapf(ErrPointNotOnLine, "point %s, line %s", point, l)
	}

	halfDistance := length / 2

	if l.slope.IsVertical() {
		return LineSeg{
			P1: Point{X: point.X, Y: point.Y + halfDistance},
			P2: Point{X: point.X, Y: point.Y - halfDistance},
		}, nil
	}

	m := l.slope.Value()
	intercept, _ := l.YIntercept()
	xPart := halfDistance / math.Sqrt(1+m*m)
	x1 := point.X - xPart
	x2 := point.X + xPart
	return LineSeg{
		P1: Point{X: x1, Y: m*x1 + intercept},
		P2: Point{X: x2, Y: m*x2 + intercept},
	}, nil
}

// CreateLinePerpendicular makes the line through point that is perpendicular
// to this one. If the point is already on this line, there is no result.
func (l Line) CreateLinePerpendicular(point Point) (Line, bool) {
	if l.PointIsOn(point) {
		return Line{}, false
	}
	switch {
	case l.slope.IsVertical():
		return NewLine(point, 0), true
	case IsZero(l.slope.Value()):
		return NewVerticalLine(point), true
	default:
		return NewLine(point, -1/l.slope.Value()), true
	}
}

func (l Line) String() string {
	return fmt.Sprintf("Line{p: %s, slope: %s}", l.p, l.slope)
}
