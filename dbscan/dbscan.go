package dbscan

import (
	"math/rand"

	"github.com/katalvlaran/vpdbscan/identity"
	"github.com/katalvlaran/vpdbscan/metricspace"
	"github.com/katalvlaran/vpdbscan/vptree"
)

// Cluster groups items into clusters using DBSCAN. It returns a label
// vector parallel to items: each entry is Outlier or a cluster id in
// [0, K-1], with cluster 0 the largest (see remapBySize). It does not
// mutate items and holds no state across calls.
//
// Validation runs before any neighbor query:
//
//	minPts <= 1 -> ErrInvalidMinPts
//	eps <= 0    -> ErrInvalidEps
//
// Cluster builds one vptree.Tree over items (wrapped with stable integer
// ids via package identity) and uses it as a neighborhood oracle for the
// expansion loop below, which follows the DBSCAN algorithm from Wikipedia
// with one guard added: a per-cluster seen-set that keeps dense clusters
// from re-enqueuing the same item.
func Cluster[T any](items []T, metric metricspace.Func[T], minPts int, eps float64, opts ...Option) ([]Label, error) {
	if minPts <= 1 {
		return nil, ErrInvalidMinPts
	}
	if eps <= 0 {
		return nil, ErrInvalidEps
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(items)
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = unset
	}

	neighbors, err := buildNeighborOracle(items, metric, eps, cfg.Rand)
	if err != nil {
		return nil, err
	}

	nextClusterID := 0
	for i := 0; i < n; i++ {
		if cfg.Progress != nil {
			cfg.Progress(i, n)
		}

		if labels[i] != unset {
			continue
		}

		seeds, err := neighbors(i)
		if err != nil {
			return nil, err
		}
		if len(seeds) < minPts {
			labels[i] = Outlier
			continue
		}

		clusterID := nextClusterID
		nextClusterID++
		labels[i] = clusterID

		if err := expand(i, clusterID, seeds, minPts, labels, neighbors); err != nil {
			return nil, err
		}
	}

	if cfg.Progress != nil {
		cfg.Progress(n, n)
	}

	return remapBySize(labels), nil
}

// expand grows cluster clusterID outward from the core item root using a
// frontier of candidate items and a per-cluster seen-set that guards
// against re-enqueuing the same item twice under a dense cluster. The
// order in which the frontier drains is unspecified (a plain Go map
// iterates in effectively random order) — this is the documented source
// of nondeterminism in border-item assignment: a border item reachable
// from two different cores keeps whichever core's expansion reached it
// first.
func expand(root, clusterID int, seeds []int, minPts int, labels []Label, neighbors func(int) ([]int, error)) error {
	frontier := make(map[int]struct{}, len(seeds))
	seen := map[int]struct{}{root: {}}
	for _, s := range seeds {
		if s != root {
			frontier[s] = struct{}{}
		}
	}

	for len(frontier) > 0 {
		j := popArbitrary(frontier)
		seen[j] = struct{}{}

		switch {
		case labels[j] == Outlier:
			// Not noise after all: a border item of clusterID.
			labels[j] = clusterID
		case labels[j] != unset:
			// Already assigned (possibly to this same cluster, reached via
			// another core's neighborhood); first assignment wins.
		default:
			labels[j] = clusterID
			more, err := neighbors(j)
			if err != nil {
				return err
			}
			if len(more) >= minPts {
				for _, m := range more {
					if _, ok := seen[m]; !ok {
						frontier[m] = struct{}{}
					}
				}
			}
		}
	}

	return nil
}

// popArbitrary removes and returns an arbitrary key from m.
func popArbitrary(m map[int]struct{}) int {
	var k int
	for k = range m {
		break
	}
	delete(m, k)

	return k
}

// buildNeighborOracle wraps items with stable ids, builds a vptree.Tree
// over the wrapped items and wrapped metric, and returns a function from
// item index to the indices of every item within the closed eps-ball
// (the query center is items[i] itself, so the result always includes i).
func buildNeighborOracle[T any](items []T, metric metricspace.Func[T], eps float64, r *rand.Rand) (func(int) ([]int, error), error) {
	wrapped := identity.Wrap(items)
	wrappedMetric := identity.WrapMetric(metric)

	var treeOpts []vptree.Option
	if r != nil {
		treeOpts = append(treeOpts, vptree.WithRand(r))
	}

	tree, err := vptree.Construct(wrappedMetric, wrapped, treeOpts...)
	if err != nil {
		return nil, err
	}

	return func(i int) ([]int, error) {
		near, err := tree.RangeQuery(wrapped[i], eps, true)
		if err != nil {
			return nil, err
		}

		ids := make([]int, len(near))
		for j, item := range near {
			ids[j] = item.ID
		}

		return ids, nil
	}, nil
}
