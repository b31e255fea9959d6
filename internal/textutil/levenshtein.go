package textutil

// Levenshtein computes the edit distance between two strings using
// single-character insertions, deletions, and substitutions. Comparison is
// byte-wise; callers that want case-insensitive distance lowercase first.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(curr[j-1]+1, prev[j]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// Similarity returns the normalized edit-distance similarity between two
// strings: (maxLen - distance) / maxLen. Two empty strings are identical and
// score 1.
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}
