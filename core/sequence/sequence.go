// core/sequence/sequence.go
package sequence

import "fizzbuzz-core/classify"

// Range of indexes a full run classifies, inclusive on both ends.
const (
	First = 1
	Last  = 99
	Count = Last - First + 1
)

// Build returns the labels for every index in [First, Last], in ascending
// index order: entry k holds the label for index k+1. The slice is freshly
// allocated on each call and never mutated afterwards.
func Build() []string {
	return BuildRange(First, Last)
}

// BuildRange returns the labels for [lo, hi] inclusive, appending in
// ascending order. An inverted range yields an empty slice.
func BuildRange(lo, hi int) []string {
	if hi < lo {
		return nil
	}
	out := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, classify.Label(i))
	}
	return out
}
