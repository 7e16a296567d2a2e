package pairs

import (
	"errors"
	"fmt"
)

// Sentinel errors for pair ranking.
var (
	// ErrTooManyPoints indicates the input exceeds MaxPoints; the O(N²) pair
	// list would not fit the configured memory bound.
	ErrTooManyPoints = errors.New("pairs: too many points to rank")

	// ErrCoordinateRange indicates a point with a coordinate outside
	// [-point.MaxCoordinate, point.MaxCoordinate]; its squared distances
	// would overflow uint64.
	ErrCoordinateRange = errors.New("pairs: coordinate out of range")

	// ErrUnknownMethod indicates an unsupported ranking Method.
	ErrUnknownMethod = errors.New("pairs: unknown ranking method")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pairs: invalid option supplied")
)

// DefaultMaxPoints is the default point limit: 4096 points rank about
// 8.4M pairs.
const DefaultMaxPoints = 4096

// Method selects how the ranker orders pairs.
type Method string

const (
	// MethodSort materializes and stable-sorts every pair up front.
	MethodSort Method = "sort"

	// MethodHeap keeps every pair in a binary min-heap and pops lazily.
	MethodHeap Method = "heap"
)

// Pair is an unordered pair of point indices with their squared distance.
// I < J always holds.
type Pair struct {
	I, J int
	Dist uint64
}

// less is the ranking order: Dist, then I, then J.
func less(a, b Pair) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.J < b.J
}

// Options configures NewRanker.
type Options struct {
	// Method is MethodSort or MethodHeap.
	Method Method

	// MaxPoints is the largest point count accepted. Must be > 0.
	MaxPoints int

	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns MethodSort with DefaultMaxPoints.
func DefaultOptions() Options {
	return Options{
		Method:    MethodSort,
		MaxPoints: DefaultMaxPoints,
	}
}

// WithMethod selects the ranking Method.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithMaxPoints sets the point limit; n ≤ 0 → ErrOptionViolation.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPoints must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPoints = n
	}
}
