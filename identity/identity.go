// Package identity pairs items with a stable integer id so that results
// from a spatial index can be translated back into positions in the
// caller's original input sequence.
//
// This mirrors original_source's locator/wrapping.py: add_item_ids assigns
// each item its position (0..N-1) in the input slice; wrap_distance_function
// lifts a metric over items into a metric over (item, id) pairs that ignores
// the id; item_id reads the id back out. Wrapping the same slice twice
// produces the same ids, because the id is purely a function of position.
package identity

import "github.com/katalvlaran/vpdbscan/metricspace"

// Item pairs a value of type T with its position in the sequence it came
// from. ID is stable: it never changes once assigned, and wrapping the
// same input slice again assigns the same ids.
type Item[T any] struct {
	Value T
	ID    int
}

// Wrap assigns each item in items its index (0..len(items)-1) as a stable
// id. It does not mutate items and does not copy item contents beyond the
// shallow copy implied by appending T values into the result slice.
func Wrap[T any](items []T) []Item[T] {
	wrapped := make([]Item[T], len(items))
	for i, v := range items {
		wrapped[i] = Item[T]{Value: v, ID: i}
	}

	return wrapped
}

// WrapMetric lifts a metric over T into a metric over Item[T] that ignores
// ids and calls the underlying metric on the wrapped values.
func WrapMetric[T any](metric metricspace.Func[T]) metricspace.Func[Item[T]] {
	return func(a, b Item[T]) (float64, error) {
		return metric(a.Value, b.Value)
	}
}
