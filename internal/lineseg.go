package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// LineSeg is the bounded segment between two points. The points are stored in
// the order given, but nothing here depends on that order.
type LineSeg struct {
	P1 Point
	P2 Point
}

// Equal is true if the segments have the same endpoints, in either order.
func (s LineSeg) Equal(other LineSeg) bool {
	return (s.P1.Equal(other.P1) && s.P2.Equal(other.P2)) ||
		(s.P1.Equal(other.P2) && s.P2.Equal(other.P1))
}

func (s LineSeg) Reverse() LineSeg {
	return LineSeg{P1: s.P2, P2: s.P1}
}

// IntersectionPoint finds where two segments cross using the parametric form of
// both segments. Parallel and collinear segments never intersect here, even if
// they overlap.
func (s LineSeg) IntersectionPoint(other LineSeg) (Point, bool) {
	sdx := s.P2.X - s.P1.X
	sdy := s.P2.Y - s.P1.Y
	odx := other.P2.X - other.P1.X
	ody := other.P2.Y - other.P1.Y

	denom := ody*sdx - odx*sdy
	if denom == 0 {
		return Point{}, false
	}

	numA := odx*(s.P1.Y-other.P1.Y) - ody*(s.P1.X-other.P1.X)
	numB := sdx*(s.P1.Y-other.P1.Y) - sdy*(s.P1.X-other.P1.X)
	ua := numA / denom
	ub := numB / denom

	if 0 <= ua && ua <= 1 && 0 <= ub && ub <= 1 {
		return Point{X: s.P1.X + ua*sdx, Y: s.P1.Y + ua*sdy}, true
	}
	return Point{}, false
}

// Intersects reports whether the segments cross. A segment always intersects
// itself. Segments that only meet at an endpoint they share are adjacent
// rather than crossing, and don't count.
func (s LineSeg) Intersects(other LineSeg) bool {
	if s.Equal(other) {
		return true
	}
	intersection, ok := s.IntersectionPoint(other)
	if !ok {
		return false
	}
	if s.hasEndpoint(intersection) && other.hasEndpoint(intersection) {
		return false
	}
	return true
}

func (s LineSeg) hasEndpoint(p Point) bool {
	return s.P1.Equal(p) || s.P2.Equal(p)
}

// PointAlong interpolates between the endpoints. Percent must be in [0, 1].
func (s LineSeg) PointAlong(percent float64) (Point, error) {
	if percent < 0 || percent > 1 {
		return Point{}, errors.Wrapf(ErrPercentOutOfRange, "got %v", percent)
	}
	return Point{
		X: s.P1.X + (s.P2.X-s.P1.X)*percent,
		Y: s.P1.Y + (s.P2.Y-s.P1.Y)*percent,
	}, nil
}

// StepAlong walks the given distance from P1 towards P2. Walking exactly the
// length of the segment gives P2 itself, and walking past it gives nothing.
func (s LineSeg) StepAlong(distance float64) (Point, bool) {
	length := s.Length()
	if distance > length {
		return Point{}, false
	} else if distance == length {
		return s.P2, true
	}
	t := distance / length
	return Point{
		X: (1-t)*s.P1.X + t*s.P2.X,
		Y: (1-t)*s.P1.Y + t*s.P2.Y,
	}, true
}

func (s LineSeg) Length() float64 {
	return s.P1.DistanceTo(s.P2)
}

func (s LineSeg) String() string {
	return fmt.Sprintf("%s-%s", s.P1, s.P2)
}
