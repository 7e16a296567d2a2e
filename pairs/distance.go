package pairs

import "github.com/katalvlaran/nearpair/point"

// SquaredDistance returns dx²+dy²+dz² between a and b.
// With coordinates bounded by point.MaxCoordinate the result cannot overflow.
func SquaredDistance(a, b point.Point) uint64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)

	return dx*dx + dy*dy + dz*dz
}

func inRange(c int64) bool {
	return c >= -point.MaxCoordinate && c <= point.MaxCoordinate
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
