package point

// Store is an ordered, indexable, read-only collection of points.
// The index of a point is its identity.
type Store struct {
	points []Point
}

// NewStore copies pts into a new Store.
func NewStore(pts []Point) *Store {
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return &Store{points: cp}
}

// Len returns the number of points.
func (s *Store) Len() int { return len(s.points) }

// At returns the point at index i. It panics if i is out of range,
// like a slice index.
func (s *Store) At(i int) Point { return s.points[i] }

// Points returns a copy of all points in index order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)

	return out
}
