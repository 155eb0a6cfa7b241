package bsearch

import "cmp"

// Find searches a sorted slice for target and returns the index of a
// matching element. ok is false if no element equals target; the
// returned index is meaningless in that case.
//
// The slice must be sorted in non-decreasing order. Empty slices are
// legal and always report a miss.
func Find[S ~[]E, E cmp.Ordered](seq S, target E) (idx int, ok bool) {
	return FindFunc(seq, target, cmp.Compare[E])
}

// FindFunc is Find with a caller-supplied comparator, for element
// types without a natural order or for searching by a key of a
// different type. compare(e, target) must return a negative number if
// e orders before target, zero if they match, and a positive number
// otherwise, and the slice must be sorted consistently with it.
func FindFunc[S ~[]E, E, T any](seq S, target T, compare func(E, T) int) (idx int, ok bool) {
	low, high := 0, len(seq)-1

	// Closed interval [low, high]; an empty slice starts with
	// high < low and falls straight through.
	for low <= high {
		// low + (high-low)/2 cannot overflow, unlike (low+high)/2.
		mid := low + (high-low)/2

		switch c := compare(seq[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return 0, false
}

// Contains reports whether target occurs in the sorted slice.
func Contains[S ~[]E, E cmp.Ordered](seq S, target E) bool {
	_, ok := Find(seq, target)
	return ok
}
