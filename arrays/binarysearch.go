package arrays

// Search looks for target in the first length values of s, which must already
// be in ascending order. The order is not checked.
//
// Values compare as unsigned bytes. If target is present the index of a
// matching value is returned; with duplicates it may be any of them. Otherwise
// the result is -(insertionPoint + 1), where insertionPoint is the index at
// which target would keep the range sorted. The result is therefore >= 0 if
// and only if target was found.
//
// length is clamped to [0, s.Len()].
func Search(s Searchable, length int, target byte) int {
	if n := s.Len(); length > n {
		length = n
	}

	low, high := 0, length-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		v := s.At(mid)
		switch {
		case v < target:
			low = mid + 1
		case v > target:
			high = mid - 1
		default:
			return mid
		}
	}
	return -(low + 1)
}

// InsertionPoint decodes a negative Search result. ok is false if r
// represents a found index.
func InsertionPoint(r int) (index int, ok bool) {
	if r >= 0 {
		return r, false
	}
	return -(r + 1), true
}
