// A small 2d geometry package for Go.
//
// It provides points, infinite lines, line segments, circles, polygons and
// axis aligned rectangles, with the usual distance, rotation, intersection,
// parallelism and containment queries. Coordinate equality is tolerance based
// throughout; see Epsilon.
//
// Nothing here is optimized for large inputs. Self intersection checks compare
// every pair of edges.
package polygono

import "github.com/osuushi/polygono/internal"

type Point = internal.Point
type Slope = internal.Slope
type Line = internal.Line
type LineSeg = internal.LineSeg
type Circle = internal.Circle
type Polygon = internal.Polygon
type Rect = internal.Rect
type RectParams = internal.RectParams

const Epsilon = internal.Epsilon

var Vertical = internal.Vertical

var (
	ErrTooFewPoints          = internal.ErrTooFewPoints
	ErrDuplicatePoint        = internal.ErrDuplicatePoint
	ErrPointNotOnLine        = internal.ErrPointNotOnLine
	ErrPercentOutOfRange     = internal.ErrPercentOutOfRange
	ErrConflictingRectParams = internal.ErrConflictingRectParams
	ErrIncompleteRectParams  = internal.ErrIncompleteRectParams
	ErrNegativeRadius        = internal.ErrNegativeRadius
)

// Equal compares two coordinates the same way points are compared.
func Equal(a, b float64) bool {
	return internal.Equal(a, b)
}

func FiniteSlope(m float64) Slope {
	return internal.FiniteSlope(m)
}

// Create a line through p with the given slope. Pass math.Inf(1) (or use
// NewVerticalLine) for a vertical line.
func NewLine(p Point, slope float64) Line {
	return internal.NewLine(p, slope)
}

func NewVerticalLine(p Point) Line {
	return internal.NewVerticalLine(p)
}

func NewCircle(center Point, radius float64) (Circle, error) {
	return internal.NewCircle(center, radius)
}

// Create a polygon from at least three unique points. The polygon is closed
// automatically.
func NewPolygon(points ...Point) (Polygon, error) {
	return internal.NewPolygon(points)
}

func NewRect(upperLeft, lowerRight Point) (Rect, error) {
	return internal.NewRect(upperLeft, lowerRight)
}

func NewRectWithSize(upperLeft Point, width, height float64) (Rect, error) {
	return internal.NewRectWithSize(upperLeft, width, height)
}
