// Package dbscan implements density-based clustering (DBSCAN) over an
// arbitrary metric space, using a github.com/katalvlaran/vpdbscan/vptree
// as its neighborhood oracle instead of a precomputed distance matrix.
//
// Cluster assigns every item either a non-negative cluster id or Outlier
// (-1). An item is a core item once its closed eps-neighborhood (itself
// included) holds at least minPts items; a non-core item reachable from a
// core item's neighborhood becomes a border item of that cluster; anything
// reachable from no core item is an outlier.
//
// Complexity:
//
//   - Time: each item joins at most one cluster's expansion frontier once,
//     guarded by a per-cluster seen-set, so the algorithm issues at most N
//     neighbor queries against the oracle. Each query costs whatever the
//     backing vptree.Tree costs (O(log N) expected).
//   - Space: O(N) for labels and the per-cluster seen-set.
//
// Options:
//
//   - WithProgress(fn) — optional per-item tick during the main expansion
//     loop. A side channel; never affects the returned labels.
//   - WithRand(r)       — threads a deterministic random source through to
//     the backing vptree's shuffle-and-retry construction step.
//
// Errors:
//
//   - ErrInvalidMinPts — minPts <= 1.
//   - ErrInvalidEps    — eps <= 0.
//   - any error returned by the caller's metric, propagated unchanged as
//     a *metricspace.FailureError.
package dbscan
