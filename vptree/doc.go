// Package vptree implements a vantage-point tree: a spatial index over a
// fixed collection of items drawn from an arbitrary metric space, built
// once and queried many times for ε-radius range queries and k-nearest-
// neighbor queries.
//
// A vantage-point tree requires nothing of its items beyond a caller-
// supplied distance function satisfying the metric axioms (non-negativity,
// identity of indiscernibles, symmetry, triangle inequality). It exploits
// only the triangle inequality for pruning, so it works for Euclidean
// points, strings under edit distance, graphs under a custom similarity,
// or anything else a metric can be defined over.
//
// Construction is defensive against degenerate metrics: low-cardinality
// distance distributions (e.g. short-string edit distance) or heavy ties
// can make a node impossible to split evenly. Construct computes both a
// median split and a mean split and keeps the better-balanced one; if
// that split is still unacceptable it shuffles and retries, and finally
// stores an oversized leaf if nothing works — it always produces a valid
// tree, never fails on pathological input.
//
// Complexity:
//
//   - Construction: O(N log N) expected, O(N^2) worst case on adversarial
//     or constant metrics (every item lands in one oversized leaf).
//   - RangeQuery / KNearest: O(log N) expected, bounded by MaxDepth.
//   - Space: O(N) for the arena plus O(log N) expected recursion depth.
//
// Errors:
//
//   - ErrInvalidParameter — MaxItemsPerNode < 3, returned by Construct
//     before any work is done.
//   - ErrAlreadyPopulated — Insert called on a tree that already holds
//     items.
//
// A tree is immutable once populated: RangeQuery and KNearest never
// mutate it, so a populated *Tree is safe for concurrent readers even
// though this package does not itself spawn goroutines.
package vptree
