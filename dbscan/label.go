package dbscan

import "sort"

// remapBySize canonicalizes cluster labels so cluster 0 is the largest
// non-outlier cluster, cluster 1 the next largest, and so on. Outlier
// (-1) is always left untouched.
//
// Ties (equal-size clusters) are broken by ascending original cluster id:
// the cluster with the smaller pre-canonicalization id gets the smaller
// new id. This departs from the reference implementation this package is
// grounded on, which breaks ties by descending id; that rule is not
// idempotent. Sorting a tied group by descending id and assigning new ids
// in that order reverses the group's relative order every time the rule
// is applied, so relabeling an already-canonical vector would not be a
// no-op. Ascending tie-break is a fixed point of repeated application:
// re-running remapBySize on its own output never changes anything.
func remapBySize(labels []Label) []Label {
	counts := make(map[Label]int)
	for _, l := range labels {
		if l == Outlier {
			continue
		}
		counts[l]++
	}

	type sizeAndLabel struct {
		size  int
		label Label
	}
	pairs := make([]sizeAndLabel, 0, len(counts))
	for l, c := range counts {
		pairs = append(pairs, sizeAndLabel{size: c, label: l})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].size != pairs[j].size {
			return pairs[i].size > pairs[j].size
		}

		return pairs[i].label < pairs[j].label
	})

	remap := make(map[Label]Label, len(pairs)+1)
	for newLabel, p := range pairs {
		remap[p.label] = newLabel
	}
	remap[Outlier] = Outlier

	result := make([]Label, len(labels))
	for i, l := range labels {
		result[i] = remap[l]
	}

	return result
}
