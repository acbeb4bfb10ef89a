package skipgram

// ContextRange returns the inclusive bounds [start, end] scanned around
// target. The upper bound is clipped to length rather than length-1, so
// end can point one past the last word; callers only visit positions that
// exist.
func ContextRange(target, window, length int) (start, end int) {
	return max(0, target-window), min(target+window, length)
}

// ContextPositions lists the positions inside ContextRange, excluding the
// target itself.
func ContextPositions(target, window, length int) []int {
	start, end := ContextRange(target, window, length)
	var out []int
	for i := start; i <= end && i < length; i++ {
		if i != target {
			out = append(out, i)
		}
	}
	return out
}
