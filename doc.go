// Package vpdbscan clusters items from an arbitrary metric space using
// DBSCAN, backed by a vantage-point tree instead of a precomputed
// distance matrix.
//
// 🚀 What is vpdbscan?
//
//	A small, dependency-free library for density-based clustering when
//	your items are not Euclidean points — edit-distance strings, graph
//	distances, custom similarity functions — and N is too large for an
//	N×N distance matrix to be practical.
//
// ✨ Why choose vpdbscan?
//
//   - Metric-space generic — works over any type T plus any distance
//     function satisfying the metric axioms, not just float vectors.
//   - Sub-linear neighbor queries — a vantage-point tree prunes using
//     only the triangle inequality, so clustering doesn't cost O(N^2).
//   - Defensive construction — degenerate metrics (constant distance,
//     heavy ties, low-cardinality distributions) degrade to oversized
//     leaves instead of failing.
//
// Everything lives under five subpackages:
//
//	metricspace/ — the Func[T] metric contract and failure wrapping
//	identity/    — stable integer ids paired with items
//	vptree/      — the vantage-point tree spatial index
//	dbscan/      — the DBSCAN expansion loop and label canonicalization
//	dtw/         — Dynamic Time Warping distance, usable as a metric via AsMetric
//
// Quick example:
//
//	labels, err := vpdbscan.Cluster(
//	    points,
//	    metricspace.Lift(func(a, b float64) float64 { return math.Abs(a - b) }),
//	    5,   // minPts
//	    4.0, // eps
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// labels[i] is vpdbscan.Outlier or a cluster id in [0, K-1]
//
//	go get github.com/katalvlaran/vpdbscan
package vpdbscan
