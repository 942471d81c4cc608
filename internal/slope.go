package internal

import (
	"fmt"
	"math"
)

// Slope is the slope of a line. Vertical lines have no numeric slope, so they
// are tagged explicitly instead of relying on comparisons against infinity.
type Slope struct {
	value    float64
	vertical bool
}

// Vertical is the slope of a vertical line.
var Vertical = Slope{value: math.Inf(1), vertical: true}

// FiniteSlope wraps m. Infinite values of either sign produce Vertical.
func FiniteSlope(m float64) Slope {
	if math.IsInf(m, 0) {
		return Vertical
	}
	return Slope{value: m}
}

func (s Slope) IsVertical() bool {
	return s.vertical
}

// Value is the numeric slope. For vertical lines it is +Inf, which lets the
// line equations run on plain float arithmetic.
func (s Slope) Value() float64 {
	if s.vertical {
		return math.Inf(1)
	}
	return s.value
}

func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return fmt.Sprint(s.value)
}
