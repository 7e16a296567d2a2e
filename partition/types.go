package partition

import "errors"

// Sentinel errors for contract violations.
var (
	// ErrAlreadyGrouped indicates a point that already belongs to a group.
	ErrAlreadyGrouped = errors.New("partition: point already grouped")

	// ErrSamePoint indicates CreateGroup was asked to pair a point with itself.
	ErrSamePoint = errors.New("partition: group needs two distinct points")

	// ErrNegativePoint indicates a negative point index.
	ErrNegativePoint = errors.New("partition: negative point index")

	// ErrUnknownGroup indicates a GroupID that was never allocated.
	ErrUnknownGroup = errors.New("partition: unknown group")

	// ErrTombstone indicates a GroupID emptied by an earlier merge.
	ErrTombstone = errors.New("partition: group was merged away")

	// ErrInconsistent is returned by Validate when an invariant is broken.
	ErrInconsistent = errors.New("partition: inconsistent state")
)

// GroupID identifies a group. Ids are dense, start at 0 and are never reused.
type GroupID int
