package vptree

import (
	"math"
	"reflect"
	"sort"

	"github.com/katalvlaran/vpdbscan/metricspace"
)

// distValue pairs a distance-to-center with the item it was measured
// from, the unit this package's bounded best-first buffer sorts on.
type distValue[T any] struct {
	dist  float64
	value T
}

// KNearest returns up to k items nearest center, sorted ascending by
// distance, never including an item identical to center. Identity is
// decided by deep equality (reflect.DeepEqual) rather than a comparable
// constraint, since Tree is generic over any T: this lets a query center
// that happens to equal one of the tree's items correctly exclude itself.
//
// KNearest is part of this package's own contract; the DBSCAN driver in
// package dbscan never calls it; Non-goals in the clustering product
// surface do not apply here.
func (t *Tree[T]) KNearest(center T, k int) ([]T, error) {
	if k <= 0 || !t.populated || t.size == 0 {
		return nil, nil
	}

	buf := make([]distValue[T], 0, k)
	if err := t.knn(t.root, center, k, &buf); err != nil {
		return nil, err
	}

	result := make([]T, len(buf))
	for i, dv := range buf {
		result[i] = dv.value
	}

	return result, nil
}

func (t *Tree[T]) knn(idx int, center T, k int, buf *[]distValue[T]) error {
	n := &t.nodes[idx]

	if n.leaf {
		for _, item := range n.items {
			if reflect.DeepEqual(center, item) {
				continue
			}
			d, err := t.metric(center, item)
			if err != nil {
				return metricspace.NewFailureError(err)
			}
			insertBounded(buf, k, distValue[T]{dist: d, value: item})
		}

		return nil
	}

	farthest := currentFarthest(*buf, k)

	var centerAnchorDist float64
	if !reflect.DeepEqual(center, n.anchor) {
		d, err := t.metric(center, n.anchor)
		if err != nil {
			return metricspace.NewFailureError(err)
		}
		centerAnchorDist = d
		if d < farthest {
			insertBounded(buf, k, distValue[T]{dist: d, value: n.anchor})
			farthest = currentFarthest(*buf, k)
		}
	}

	// Could the near subtree contain something closer than our current
	// k-th best? If so, it's worth descending.
	if n.threshold+farthest >= centerAnchorDist {
		if err := t.knn(n.near, center, k, buf); err != nil {
			return err
		}
		farthest = currentFarthest(*buf, k)
	}

	// Descend into the far subtree unless we already have k neighbors and
	// they're all guaranteed closer than anything the far side could hold.
	if len(*buf) < k || centerAnchorDist+farthest >= n.threshold {
		if err := t.knn(n.far, center, k, buf); err != nil {
			return err
		}
	}

	return nil
}

// currentFarthest returns the distance to the farthest-kept neighbor once
// the buffer holds k of them, or +Inf while it is still filling up (in
// which case no pruning is valid yet).
func currentFarthest[T any](buf []distValue[T], k int) float64 {
	if len(buf) < k {
		return math.Inf(1)
	}

	return buf[len(buf)-1].dist
}

// insertBounded inserts dv into buf, keeping buf sorted ascending by
// distance and capped at k entries.
func insertBounded[T any](buf *[]distValue[T], k int, dv distValue[T]) {
	s := append(*buf, dv)
	sort.Slice(s, func(i, j int) bool { return s[i].dist < s[j].dist })
	if len(s) > k {
		s = s[:k]
	}
	*buf = s
}
