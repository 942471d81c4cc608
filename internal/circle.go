package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

type Circle struct {
	Center Point
	Radius float64
}

// NewCircle validates the radius. A zero radius circle is allowed and behaves
// like a point.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius < 0 || math.IsNaN(radius) {
		return Circle{}, errors.Wrapf(ErrNegativeRadius, "got %v", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Intersects is true whenever the circles touch or overlap at all, including
// when one contains the other.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.DistanceTo(other.Center) <= c.Radius+other.Radius
}

// PointInside is boundary inclusive.
func (c Circle) PointInside(point Point) bool {
	return c.Center.DistanceTo(point) <= c.Radius
}

// MakeCircleWhichTouches creates a circle of the given radius touching this one
// from the outside, with its center in the direction of angleDegrees from this
// circle's center.
func (c Circle) MakeCircleWhichTouches(angleDegrees, radius float64) Circle {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180)
	distance := c.Radius + radius
	return Circle{
		Center: Point{
			X: c.Center.X + cos*distance,
			Y: c.Center.Y + sin*distance,
		},
		Radius: radius,
	}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{center: %s, radius: %v}", c.Center, c.Radius)
}
