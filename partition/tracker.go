package partition

import (
	"fmt"
	"sort"
)

// Tracker maintains the point→group and group→members mappings.
// The zero value is not usable; call New or NewWithCapacity.
type Tracker struct {
	membership map[int]GroupID
	groups     [][]int // arena indexed by GroupID; empty slice = tombstone
	active     int
}

// New returns an empty Tracker.
func New() *Tracker {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty Tracker sized for about n points.
func NewWithCapacity(n int) *Tracker {
	if n < 0 {
		n = 0
	}

	return &Tracker{
		membership: make(map[int]GroupID, n),
		groups:     make([][]int, 0, n/2),
	}
}

// Lookup returns the group of point p, if any.
func (t *Tracker) Lookup(p int) (GroupID, bool) {
	g, ok := t.membership[p]
	return g, ok
}

// CreateGroup allocates a new group holding exactly a and b.
// Both points must be ungrouped and distinct.
func (t *Tracker) CreateGroup(a, b int) (GroupID, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrNegativePoint, a, b)
	}
	if a == b {
		return 0, fmt.Errorf("%w: %d", ErrSamePoint, a)
	}
	for _, p := range [2]int{a, b} {
		if g, ok := t.membership[p]; ok {
			return 0, fmt.Errorf("%w: point %d in group %d", ErrAlreadyGrouped, p, g)
		}
	}

	id := GroupID(len(t.groups))
	t.groups = append(t.groups, []int{a, b})
	t.membership[a] = id
	t.membership[b] = id
	t.active++

	return id, nil
}

// AddToGroup appends the ungrouped point p to the active group g.
func (t *Tracker) AddToGroup(g GroupID, p int) error {
	if err := t.checkActive(g); err != nil {
		return err
	}
	if p < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePoint, p)
	}
	if cur, ok := t.membership[p]; ok {
		return fmt.Errorf("%w: point %d in group %d", ErrAlreadyGrouped, p, cur)
	}

	t.groups[g] = append(t.groups[g], p)
	t.membership[p] = g

	return nil
}

// MergeGroups unifies groups a and b and returns the surviving id.
//
// a == b is a no-op. Otherwise the lower id survives: the other group's
// members are appended to it, their membership entries are rewritten, and
// the other slot becomes a tombstone.
//
// Complexity: O(size of the absorbed group).
func (t *Tracker) MergeGroups(a, b GroupID) (GroupID, error) {
	if err := t.checkActive(a); err != nil {
		return 0, err
	}
	if a == b {
		return a, nil
	}
	if err := t.checkActive(b); err != nil {
		return 0, err
	}

	keep, drop := a, b
	if drop < keep {
		keep, drop = drop, keep
	}

	moved := t.groups[drop]
	for _, p := range moved {
		t.membership[p] = keep
	}
	t.groups[keep] = append(t.groups[keep], moved...)
	t.groups[drop] = nil
	t.active--

	return keep, nil
}

// GroupSizes returns the sizes of all non-empty groups in ascending
// GroupID order. Tombstones and ungrouped points are not represented.
func (t *Tracker) GroupSizes() []int {
	sizes := make([]int, 0, t.active)
	for _, members := range t.groups {
		if len(members) > 0 {
			sizes = append(sizes, len(members))
		}
	}

	return sizes
}

// Members returns a copy of group g's members, sorted ascending.
func (t *Tracker) Members(g GroupID) ([]int, error) {
	if err := t.checkActive(g); err != nil {
		return nil, err
	}
	out := append([]int(nil), t.groups[g]...)
	sort.Ints(out)

	return out, nil
}

// Groups returns every active group's members keyed by GroupID.
func (t *Tracker) Groups() map[GroupID][]int {
	out := make(map[GroupID][]int, t.active)
	for id, members := range t.groups {
		if len(members) == 0 {
			continue
		}
		cp := append([]int(nil), members...)
		sort.Ints(cp)
		out[GroupID(id)] = cp
	}

	return out
}

// NumGroups returns the number of active (non-empty) groups.
func (t *Tracker) NumGroups() int { return t.active }

// NumCreated returns how many group ids have ever been allocated,
// tombstones included.
func (t *Tracker) NumCreated() int { return len(t.groups) }

// Placed returns the number of points that belong to some group.
func (t *Tracker) Placed() int { return len(t.membership) }

// Validate checks the Tracker invariants and returns ErrInconsistent
// describing the first violation found.
func (t *Tracker) Validate() error {
	seen := make(map[int]GroupID, len(t.membership))
	active := 0
	for i, members := range t.groups {
		id := GroupID(i)
		if len(members) > 0 {
			active++
		}
		if len(members) == 1 {
			return fmt.Errorf("%w: group %d has a single member", ErrInconsistent, id)
		}
		for _, p := range members {
			if prev, dup := seen[p]; dup {
				return fmt.Errorf("%w: point %d in groups %d and %d", ErrInconsistent, p, prev, id)
			}
			seen[p] = id
			if g, ok := t.membership[p]; !ok || g != id {
				return fmt.Errorf("%w: point %d listed in group %d but mapped to %d", ErrInconsistent, p, id, g)
			}
		}
	}
	if len(seen) != len(t.membership) {
		return fmt.Errorf("%w: %d mapped points, %d listed members", ErrInconsistent, len(t.membership), len(seen))
	}
	if active != t.active {
		return fmt.Errorf("%w: active count %d, counted %d", ErrInconsistent, t.active, active)
	}

	return nil
}

// checkActive reports whether g names a live group.
func (t *Tracker) checkActive(g GroupID) error {
	if g < 0 || int(g) >= len(t.groups) {
		return fmt.Errorf("%w: %d", ErrUnknownGroup, g)
	}
	if len(t.groups[g]) == 0 {
		return fmt.Errorf("%w: %d", ErrTombstone, g)
	}

	return nil
}
