package dtw

import "github.com/katalvlaran/vpdbscan/metricspace"

// AsMetric adapts DTW into a metricspace.Func[[]float64]: a real, non-toy
// distance function over variable-length time-series sequences, suitable
// for clustering waveforms, sensor traces, or any other sequence data with
// vpdbscan.Cluster. opts is validated once per call; an invalid
// combination (see Options.Validate) surfaces as the metric's error and
// is propagated by the caller unchanged, per metricspace's failure
// contract.
//
// Path reconstruction is irrelevant to a distance-only metric, so AsMetric
// forces opts.ReturnPath = false and opts.MemoryMode = TwoRows regardless
// of what the caller passed, keeping every comparison at O(len(b))
// memory instead of the O(N*M) a full alignment matrix would cost per
// pairwise distance computation inside a vantage-point tree build.
func AsMetric(opts Options) metricspace.Func[[]float64] {
	opts.ReturnPath = false
	opts.MemoryMode = TwoRows

	return func(a, b []float64) (float64, error) {
		dist, _, err := DTW(a, b, &opts)
		return dist, err
	}
}
