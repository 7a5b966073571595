package scoring

// patternWindow is the run length the pattern scans look for. Passwords
// shorter than the window never match.
const patternWindow = 3

// hasSequentialRun reports whether s contains a contiguous run of at least
// window characters whose codes are strictly consecutive, ascending or
// descending. The comparison is on raw rune values only ("abc", "cba",
// "123" match; "acb" does not).
func hasSequentialRun(s string, window int) bool {
	runes := []rune(s)
	for i := 0; i+window <= len(runes); i++ {
		ascending := true
		descending := true
		for j := 1; j < window; j++ {
			if runes[i+j]-runes[i+j-1] != 1 {
				ascending = false
			}
			if runes[i+j-1]-runes[i+j] != 1 {
				descending = false
			}
		}
		if ascending || descending {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether s contains a contiguous run of at least
// window identical characters.
func hasRepeatedRun(s string, window int) bool {
	runes := []rune(s)
	for i := 0; i+window <= len(runes); i++ {
		same := true
		for j := 1; j < window; j++ {
			if runes[i+j] != runes[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
