package cluster_test

import (
	"testing"

	"github.com/katalvlaran/nearpair/cluster"
)

// BenchmarkCluster ranks 1000 random points and runs the 1000-step budget
// used for large inputs.
func BenchmarkCluster(b *testing.B) {
	pts := randomPoints(1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.Cluster(pts, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
