package match

// ratio is the Ratcliff/Obershelp similarity of two strings in [0, 1]:
// twice the number of matching characters divided by the total length.
// Matching characters are counted by recursively taking the longest common
// substring and matching the pieces to its left and right.
func ratio(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 || len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 2.0 * float64(matchingRunes(ra, rb)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	matched := size
	matched += matchingRunes(a[:ai], b[:bi])
	matched += matchingRunes(a[ai+size:], b[bi+size:])
	return matched
}

// longestCommonBlock finds the longest common substring of a and b,
// preferring the leftmost occurrence in a, then in b.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the common-suffix length ending at a[i], b[j]
	prev := make([]int, len(b))
	curr := make([]int, len(b))

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				curr[j] = 0
				continue
			}
			if i == 0 || j == 0 {
				curr[j] = 1
			} else {
				curr[j] = prev[j-1] + 1
			}
			if curr[j] > size {
				size = curr[j]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}
