// Package focus implements keyboard focus cycling among toolbar controls.
package focus

// Nth returns the element at index n of a circular view of collection.
// Negative and out-of-range indices wrap, so Nth(s, -1) is the last element
// and Nth(s, len(s)) is the first. It panics on an empty collection.
func Nth[T any](collection []T, n int) T {
	length := len(collection)
	if length == 0 {
		panic("focus: Nth called on an empty collection")
	}
	return collection[((n%length)+length)%length]
}
