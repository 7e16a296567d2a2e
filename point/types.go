package point

import (
	"errors"
	"fmt"
)

// MaxCoordinate bounds the absolute value of each coordinate so that
// dx²+dy²+dz² always fits in a uint64.
const MaxCoordinate int64 = 1 << 30

// Sentinel errors for parsing and loading points.
var (
	// ErrWrongDimensions indicates a line that does not hold exactly three fields.
	ErrWrongDimensions = errors.New("point: expected three comma-separated coordinates")

	// ErrBadCoordinate indicates a field that is not a base-10 integer.
	ErrBadCoordinate = errors.New("point: coordinate is not an integer")

	// ErrCoordinateRange indicates a coordinate outside [-MaxCoordinate, MaxCoordinate].
	ErrCoordinateRange = errors.New("point: coordinate out of range")

	// ErrTooManyPoints indicates the input exceeds the configured point limit.
	ErrTooManyPoints = errors.New("point: too many points")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("point: invalid option supplied")
)

// Point is a position in 3D integer space.
type Point struct {
	X, Y, Z int64
}

// String renders p in the input format "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// LineError reports which input line failed to parse.
type LineError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Text is the raw line content.
	Text string

	// Err is the underlying sentinel-wrapping error.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("point: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Options configures Load.
type Options struct {
	// MaxPoints, if > 0, rejects inputs holding more points.
	// A value of 0 disables the limit.
	MaxPoints int

	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no point limit.
func DefaultOptions() Options {
	return Options{MaxPoints: 0}
}

// WithMaxPoints caps the number of points Load accepts.
//
//	n > 0: limit to n points
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPoints cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPoints = n
	}
}
