package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealStrictlyIncreasing_AlreadySorted(t *testing.T) {
	keys := []float64{0, 5, 7}
	outcome, dropped := healStrictlyIncreasing(len(keys), func(i int) float64 { return keys[i] }, true, func([]int) {
		t.Fatal("reorder must not be called when already sorted")
	})
	assert.Equal(t, outcomeAlreadySorted, outcome)
	assert.Equal(t, 0, dropped)
}

// The sort-only shortcut is granted to laneSection alone (§4.2); it
// requires allowSortOnly=true.
func TestHealStrictlyIncreasing_SortOnly_AllowedForLaneSection(t *testing.T) {
	keys := []float64{5, 0, 7}
	var order []int
	outcome, dropped := healStrictlyIncreasing(len(keys), func(i int) float64 { return keys[i] }, true, func(o []int) {
		order = append([]int(nil), o...)
	})
	assert.Equal(t, outcomeSortedOnly, outcome)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, []int{1, 0, 2}, order)
}

// Every other entity kind (elevation, superelevation, shape, laneOffset)
// never takes the sort-only shortcut, even when a plain sort would
// happen to produce strict order: allowSortOnly=false always falls
// through to the drop path.
func TestHealStrictlyIncreasing_SortOnlyDenied_DropsInstead(t *testing.T) {
	keys := []float64{5, 0, 7}
	var order []int
	outcome, dropped := healStrictlyIncreasing(len(keys), func(i int) float64 { return keys[i] }, false, func(o []int) {
		order = append([]int(nil), o...)
	})
	assert.Equal(t, outcomeDropped, outcome)
	assert.Equal(t, 1, dropped)

	healed := make([]float64, len(order))
	for i, idx := range order {
		healed[i] = keys[idx]
	}
	assert.Equal(t, []float64{5, 7}, healed)
}

// §8 scenario 5: s=[0,5,3,7] heals to [0,5,7], one entry dropped, even
// though this is exercised through elevation/superelevation/shape/
// laneOffset (allowSortOnly=false) rather than laneSection.
func TestHealStrictlyIncreasing_DropsViolatingEntries(t *testing.T) {
	keys := []float64{0, 5, 3, 7}
	var order []int
	outcome, dropped := healStrictlyIncreasing(len(keys), func(i int) float64 { return keys[i] }, false, func(o []int) {
		order = append([]int(nil), o...)
	})
	assert.Equal(t, outcomeDropped, outcome)
	assert.Equal(t, 1, dropped)

	healed := make([]float64, len(order))
	for i, idx := range order {
		healed[i] = keys[idx]
	}
	assert.Equal(t, []float64{0, 5, 7}, healed)
}
