package internal

import "math"

// Epsilon is the threshold used for approximate comparisons. Note that for
// coordinates it is compared against the squared difference, not the
// difference itself, so two values are equal when they are within roughly
// 0.00316 of each other.
const Epsilon = 1e-5

// To compensate for imprecision in floats, coordinate equality is tolerance
// based. This is the one place the tolerance is applied to coordinates; point
// equality, duplicate vertex detection and shared endpoint detection all go
// through here.
func Equal(a, b float64) bool {
	diff := a - b
	return diff*diff < Epsilon
}

// IsZero reports whether v is within Epsilon of zero. Unlike Equal, this is a
// plain absolute threshold.
func IsZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
