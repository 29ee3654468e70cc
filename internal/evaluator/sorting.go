package evaluator

import (
	"math"
	"sort"
)

// sortOutcome tells the caller what happened when healing an s-keyed
// sequence, so the rule that invoked it can pick the right diagnostic code.
type sortOutcome int

const (
	outcomeAlreadySorted sortOutcome = iota
	outcomeSortedOnly                // NonSortedList: only out of order, no duplicates
	outcomeDropped                   // NonStrictlySortedList: duplicates/violations, entries dropped
)

// healStrictlyIncreasing decides how to repair a sequence that should be
// strictly increasing in key(i), implementing §4.2's NonSortedList /
// NonStrictlySortedList rules. §4.2 grants the "sort is sufficient"
// shortcut only to laneSection: when allowSortOnly is true and a plain
// stable sort already produces a strictly increasing sequence (no
// duplicate keys), sort is sufficient. Every other entity kind
// (elevation, superelevation, shape, laneOffset) always takes the drop
// path below, even when a plain sort would happen to yield strict order.
func healStrictlyIncreasing(n int, key func(i int) float64, allowSortOnly bool, reorder func(order []int)) (sortOutcome, int) {
	isStrict := func(order []int) bool {
		for i := 1; i < len(order); i++ {
			if key(order[i]) <= key(order[i-1]) {
				return false
			}
		}
		return true
	}

	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	if isStrict(identity) {
		return outcomeAlreadySorted, 0
	}

	if allowSortOnly {
		sorted := append([]int(nil), identity...)
		sort.SliceStable(sorted, func(a, b int) bool { return key(sorted[a]) < key(sorted[b]) })
		if isStrict(sorted) {
			reorder(sorted)
			return outcomeSortedOnly, 0
		}
	}

	// Drop entries that break strict monotonicity, in original order,
	// keeping the earliest survivor.
	var kept []int
	lastKey := math.Inf(-1)
	for _, idx := range identity {
		k := key(idx)
		if k > lastKey {
			kept = append(kept, idx)
			lastKey = k
		}
	}
	dropped := n - len(kept)
	reorder(kept)
	return outcomeDropped, dropped
}
