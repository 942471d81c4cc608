package internal

import "github.com/pkg/errors"

// Errors returned when a shape can't be built or an operation's precondition
// isn't met. They are usually wrapped with more context, so compare with
// errors.Is.
var (
	ErrTooFewPoints          = errors.New("polygon needs at least 3 points")
	ErrDuplicatePoint        = errors.New("polygon points must be unique (the polygon is closed for you, no need to repeat the first point as the last)")
	ErrPointNotOnLine        = errors.New("point must be on the line")
	ErrPercentOutOfRange     = errors.New("percent along must be between 0 and 1 inclusive")
	ErrConflictingRectParams = errors.New("too many rect params, pass either two points or a single point with width and height")
	ErrIncompleteRectParams  = errors.New("rect needs either a lower right point or both width and height")
	ErrNegativeRadius        = errors.New("circle radius must not be negative")
)
