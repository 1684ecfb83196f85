package vptree

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/vpdbscan/metricspace"
)

// Tree is a vantage-point tree over a fixed collection of items of type T,
// built once by Construct and queried with RangeQuery or KNearest. A Tree
// is immutable once populated.
type Tree[T any] struct {
	metric    metricspace.Func[T]
	params    Params
	nodes     []node[T]
	root      int
	size      int
	populated bool
}

// Construct builds a vantage-point tree over items using metric, applying
// any Options on top of DefaultParams. It validates parameters before
// doing any work: MaxItemsPerNode < 3 fails with ErrInvalidParameter.
//
// Construct is total: for any finite items slice and any metric, it
// terminates and produces a tree with Size() == len(items), falling back
// to oversized leaves rather than failing when the metric's distance
// distribution resists balanced partitioning (constant metrics, heavy
// ties, and similar pathological cases).
func Construct[T any](metric metricspace.Func[T], items []T, opts ...Option) (*Tree[T], error) {
	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	if params.MaxItemsPerNode < 3 {
		return nil, fmt.Errorf("%w: MaxItemsPerNode must be at least 3, got %d", ErrInvalidParameter, params.MaxItemsPerNode)
	}

	t := &Tree[T]{metric: metric, params: params}
	if err := t.Insert(items); err != nil {
		return nil, err
	}

	return t, nil
}

// Insert populates an empty Tree with items. It is the only way items
// enter a Tree (Construct calls it once); calling it again on a populated
// tree fails with ErrAlreadyPopulated. Incremental insertion into a
// populated tree is out of scope for this package.
func (t *Tree[T]) Insert(items []T) error {
	if t.populated {
		return ErrAlreadyPopulated
	}

	if t.params.Rand == nil {
		t.params.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	working := make([]T, len(items))
	copy(working, items)

	root, err := t.build(working, 0)
	if err != nil {
		return err
	}

	t.root = root
	t.size = len(items)
	t.populated = true

	return nil
}

// Clear resets the Tree to an empty, unpopulated state so it can, in
// principle, be repopulated via Insert. Per the package contract this is
// meant to be called before any query is issued against the tree.
func (t *Tree[T]) Clear() {
	t.nodes = nil
	t.root = 0
	t.size = 0
	t.populated = false
}

// Size returns the total number of items held by the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// build recursively partitions items into the arena, returning the index
// of the node just created. It implements the construction algorithm:
// leaf bailout on depth/count, median-vs-mean split selection by balance
// ratio (ties favor the median), shuffle-and-retry on an unacceptable
// split, and a final oversized-leaf fallback.
func (t *Tree[T]) build(items []T, depth int) (int, error) {
	if depth > t.params.MaxDepth || len(items) < t.params.MaxItemsPerNode {
		return t.appendLeaf(items, depth), nil
	}

	shuffleCount := 0
	for {
		anchor := items[0]
		rest := items[1:]

		near, far, threshold, err := t.splitNearbyDistant(anchor, rest)
		if err != nil {
			return 0, err
		}

		minSplitCount := float64(len(items)) * t.params.MinSplitFraction
		if float64(len(near)) >= minSplitCount && float64(len(far)) >= minSplitCount {
			nearIdx, err := t.build(near, depth+1)
			if err != nil {
				return 0, err
			}
			farIdx, err := t.build(far, depth+1)
			if err != nil {
				return 0, err
			}

			return t.appendInner(anchor, threshold, nearIdx, farIdx, depth), nil
		}

		shuffleCount++
		if shuffleCount >= t.params.MaxShuffleAttempts {
			log.Printf("vptree: cannot split %d items acceptably at depth %d after %d shuffle attempts; storing as one oversized leaf", len(items), depth, shuffleCount)

			return t.appendLeaf(items, depth), nil
		}

		t.params.Rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	}
}

// splitNearbyDistant partitions items by distance from anchor, choosing
// whichever of the median-split or mean-split candidate gives the better
// balance ratio min(|near|,|far|)/max(|near|,|far|); ties favor the
// median split.
func (t *Tree[T]) splitNearbyDistant(anchor T, items []T) (near, far []T, threshold float64, err error) {
	distances := make([]float64, len(items))
	for i, item := range items {
		d, derr := t.metric(anchor, item)
		if derr != nil {
			return nil, nil, 0, metricspace.NewFailureError(derr)
		}
		distances[i] = d
	}

	sortedDistances := append([]float64(nil), distances...)
	sort.Float64s(sortedDistances)
	median := medianOf(sortedDistances)
	mean := meanOf(sortedDistances)

	medianNear, medianFar := partitionByThreshold(items, distances, median)
	meanNear, meanFar := partitionByThreshold(items, distances, mean)

	medianRatio := balanceRatio(len(medianNear), len(medianFar))
	meanRatio := balanceRatio(len(meanNear), len(meanFar))

	if meanRatio > medianRatio {
		return meanNear, meanFar, mean, nil
	}

	return medianNear, medianFar, median, nil
}

// partitionByThreshold splits items into those at distance <= threshold
// (near) and > threshold (far) from some anchor, given distances[i] is
// the precomputed distance for items[i].
func partitionByThreshold[T any](items []T, distances []float64, threshold float64) (near, far []T) {
	for i, item := range items {
		if distances[i] <= threshold {
			near = append(near, item)
		} else {
			far = append(far, item)
		}
	}

	return near, far
}

// balanceRatio is min(a,b)/max(a,b), the quality score for a candidate
// split: 1.0 is a perfectly even split, 0.0 means everything landed on
// one side.
func balanceRatio(a, b int) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 0
	}

	return float64(lo) / float64(hi)
}

// medianOf returns the median of a slice already sorted ascending,
// averaging the two middle elements for an even-length slice.
func medianOf(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// meanOf returns the arithmetic mean of a slice of distances.
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func (t *Tree[T]) appendLeaf(items []T, depth int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{leaf: true, items: items, depth: depth})

	return idx
}

func (t *Tree[T]) appendInner(anchor T, threshold float64, near, far, depth int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{
		leaf:      false,
		anchor:    anchor,
		threshold: threshold,
		near:      near,
		far:       far,
		depth:     depth,
	})

	return idx
}
