// Package nearpair clusters 3D integer points by repeatedly joining the
// currently nearest pair, for a fixed number of steps.
//
// What is it?
//
//	Rank every unordered pair of points by squared Euclidean distance, then
//	walk the ranking nearest-first. Each pair either starts a new group,
//	pulls a lone point into an existing group, merges two groups, or (when
//	both points already share a group) changes nothing. After the step
//	budget the sizes of the groups are the result.
//
// Under the hood, everything is organized in small packages:
//
//	point/     - Point type, "x,y,z" line parser, bounded loader
//	pairs/     - all-pairs ranking by squared distance (sort or heap)
//	partition/ - arena-backed point↔group index with tombstoned merges
//	cluster/   - the step engine: four-case merge policy, budget, hooks
//	report/    - ranking of sizes, product of the largest, statistics
//	config/    - YAML configuration and the budget heuristic
//	store/     - SQLite run history
//	cmd/nearpair/ - command line front end
//
// Quick example:
//
//	pts := []point.Point{{X: 0}, {X: 1}, {Y: 5}, {Y: 6}, {X: 100, Y: 100, Z: 100}}
//	sizes, err := cluster.Cluster(pts, 4)
//	// sizes == [4]; the outlier is in no group at all.
//
// The budget is a deliberate approximation: the engine never runs to full
// connectivity, and squared distances are compared as integers so no
// rounding ever reorders two pairs.
package nearpair
