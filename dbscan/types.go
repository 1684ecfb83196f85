package dbscan

import (
	"errors"
	"math"
	"math/rand"
)

// Label is a per-item cluster assignment: Outlier, or a cluster id in
// [0, K-1] after canonicalization.
type Label = int

// Outlier is the label assigned to items that belong to no cluster.
const Outlier Label = -1

// unset marks a label slot that the expansion loop has not yet visited.
// It is distinct from both Outlier and any valid cluster id so the driver
// can tell "not looked at yet" apart from "looked at and rejected."
const unset Label = math.MinInt32

// Sentinel errors returned by Cluster's parameter validation. These run
// before any neighbor query or tree construction is attempted.
var (
	// ErrInvalidMinPts indicates minPts <= 1: a cluster must require at
	// least two members (the core item plus one neighbor) to mean anything.
	ErrInvalidMinPts = errors.New("dbscan: minimum cluster size must be at least 2")

	// ErrInvalidEps indicates eps <= 0: a non-positive neighborhood radius
	// cannot define a meaningful neighborhood.
	ErrInvalidEps = errors.New("dbscan: maximum neighbor distance must be positive")
)

// Options configures Cluster. Use DefaultOptions and override via Option
// functions, matching dijkstra.Options/prim_kruskal.MSTOptions.
type Options struct {
	// Progress, if set, is called once per item visited by the main
	// expansion loop (done, total), plus a final call with done==total.
	Progress func(done, total int)

	// Rand, if set, is threaded through to the backing vptree's
	// construction step for reproducible shuffle-and-retry behavior.
	Rand *rand.Rand
}

// Option configures Options.
type Option func(*Options)

// WithProgress installs a per-item progress callback. It is a pure side
// channel: it never influences the returned labels.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithRand installs a deterministic random source for the backing
// vptree's shuffle-and-retry construction step.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// DefaultOptions returns Options with no progress callback and no fixed
// random source (the backing vptree seeds its own from the current time).
func DefaultOptions() Options {
	return Options{}
}
