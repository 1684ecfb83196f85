package vptree

import "github.com/katalvlaran/vpdbscan/metricspace"

// RangeQuery returns every indexed item whose distance to center is less
// than radius (includeBoundary == false) or less than or equal to radius
// (includeBoundary == true). center need not be one of the tree's items.
// The order of results is unspecified.
//
// The two descent tests below are symmetric consequences of the triangle
// inequality: together they never discard a true neighbor (the search is
// sound) while pruning subtrees that provably cannot intersect the query
// ball.
func (t *Tree[T]) RangeQuery(center T, radius float64, includeBoundary bool) ([]T, error) {
	if !t.populated || t.size == 0 {
		return nil, nil
	}

	var result []T
	if err := t.rangeQuery(t.root, center, radius, includeBoundary, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (t *Tree[T]) rangeQuery(idx int, center T, radius float64, includeBoundary bool, out *[]T) error {
	n := &t.nodes[idx]

	if n.leaf {
		for _, item := range n.items {
			d, err := t.metric(center, item)
			if err != nil {
				return metricspace.NewFailureError(err)
			}
			if withinBall(d, radius, includeBoundary) {
				*out = append(*out, item)
			}
		}

		return nil
	}

	delta, err := t.metric(center, n.anchor)
	if err != nil {
		return metricspace.NewFailureError(err)
	}

	if withinBall(delta, radius, includeBoundary) {
		*out = append(*out, n.anchor)
	}

	// Does the query ball overlap the near shell (everything <= threshold
	// from the anchor)?
	if delta <= n.threshold+radius {
		if err := t.rangeQuery(n.near, center, radius, includeBoundary, out); err != nil {
			return err
		}
	}

	// Is the query ball NOT strictly contained within the near shell, i.e.
	// could it reach into the far side?
	if delta+radius >= n.threshold {
		if err := t.rangeQuery(n.far, center, radius, includeBoundary, out); err != nil {
			return err
		}
	}

	return nil
}

func withinBall(distance, radius float64, includeBoundary bool) bool {
	if distance < radius {
		return true
	}

	return includeBoundary && distance == radius
}
