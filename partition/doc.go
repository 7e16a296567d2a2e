// Package partition tracks a growing partition of point indices into groups.
//
// A Tracker is a bidirectional index kept in sync by its own methods only:
//
//	membership: point index → GroupID   (absent if the point was never placed)
//	groups:     GroupID     → members   (arena slot, tombstoned when merged away)
//
// Group ids are dense integers handed out in creation order. They are never
// reused: when MergeGroups folds one group into another the losing slot stays
// allocated but empty (a tombstone), and every later operation on it fails
// with ErrTombstone.
//
// Merge rule: the lower GroupID survives. Because ids are allocated in
// creation order, this is the group seen first.
//
// Invariants (checked by Validate):
//
//   - every point index belongs to at most one group;
//   - the union of all member lists equals the key set of the membership map;
//   - every active group is non-empty, every tombstone is empty.
//
// Operations called outside their precondition (grouping an already grouped
// point, touching an unknown id) return a sentinel error and leave the
// Tracker unchanged.
package partition
