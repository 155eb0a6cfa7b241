// Package bsearch provides bounded binary search over sorted slices.
//
// The search maintains a closed index interval [low, high] and halves
// it until the target is bracketed, giving O(log n) comparisons and
// O(1) auxiliary space:
//
//	idx, ok := bsearch.Find([]int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}, 23)
//	// idx == 5, ok == true
//
// # Contract
//
// The input slice must be sorted in non-decreasing order under the
// comparison used by the search. Sortedness is a precondition, not a
// runtime check: verifying it would cost O(n) and defeat the point of
// a logarithmic lookup. On an unsorted slice the result is
// well-typed but unreliable (it may miss an element that is present).
//
// When the target occurs more than once, Find returns the index of
// some matching element; which one is a consequence of the halving
// order and is deliberately unspecified. Callers that need the first
// or last occurrence must layer a boundary search on top.
//
// Absence is reported through the second return value, never through
// an index sentinel, so a miss can never be confused with a hit at
// index 0.
//
// # Thread safety
//
// Find and FindFunc are pure functions: they never mutate the slice
// and keep no state between calls. Concurrent searches over the same
// slice are safe as long as nothing else mutates it.
package bsearch
