package internal

import (
	"fmt"
	"math"
)

// Point is an immutable 2d coordinate.
type Point struct {
	X float64
	Y float64
}

// Equal compares points axis by axis using the package tolerance. This is not
// a distance check: a point can be "equal" to two points that are not equal to
// each other.
func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) DistanceTo(other Point) float64 {
	xDiff := p.X - other.X
	yDiff := p.Y - other.Y
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

func (p Point) Unpack() (x, y float64) {
	return p.X, p.Y
}

// RotateAbout rotates the point counterclockwise around the pivot by the given
// number of degrees. Any angle is accepted, negative angles rotate clockwise.
func (p Point) RotateAbout(pivot Point, degrees float64) Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	xDiff := p.X - pivot.X
	yDiff := p.Y - pivot.Y
	return Point{
		X: pivot.X + cos*xDiff - sin*yDiff,
		Y: pivot.Y + sin*xDiff + cos*yDiff,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Index of the first point in the list equal to p, or -1
func indexOfPoint(points []Point, p Point) int {
	for i, other := range points {
		if other.Equal(p) {
			return i
		}
	}
	return -1
}
