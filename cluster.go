package vpdbscan

import (
	"math/rand"

	"github.com/katalvlaran/vpdbscan/dbscan"
	"github.com/katalvlaran/vpdbscan/metricspace"
)

// Outlier is the label assigned to items that belong to no cluster.
const Outlier = dbscan.Outlier

// Option configures Cluster; see dbscan.WithProgress and dbscan.WithRand.
type Option = dbscan.Option

// WithProgress installs a per-item progress callback, called once per item
// visited during the main expansion loop. It is a pure side channel and
// never affects the returned labels.
func WithProgress(fn func(done, total int)) Option {
	return dbscan.WithProgress(fn)
}

// WithRand installs a deterministic random source for the backing
// vantage-point tree's shuffle-and-retry construction step.
func WithRand(r *rand.Rand) Option {
	return dbscan.WithRand(r)
}

// Cluster groups items into clusters using DBSCAN, querying neighborhoods
// through a vantage-point tree built once over items. It returns a label
// vector of len(items): each entry is Outlier (-1) or a cluster id in
// [0, K-1], with cluster 0 the largest non-outlier cluster. It does not
// mutate items and carries no state across calls.
//
// minPts <= 1 fails with dbscan.ErrInvalidMinPts; eps <= 0 fails with
// dbscan.ErrInvalidEps. Any error returned by metric propagates unchanged
// as a *metricspace.FailureError.
func Cluster[T any](items []T, metric metricspace.Func[T], minPts int, eps float64, opts ...Option) ([]int, error) {
	return dbscan.Cluster(items, metric, minPts, eps, opts...)
}
