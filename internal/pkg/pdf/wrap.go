package pdf

import "strings"

const (
	// collegeLineBudget bounds each certificate college-name line.
	collegeLineBudget = 38
	// collegeTruncateBudget bounds the single attendance college-name line.
	collegeTruncateBudget = 34
)

// splitCollegeName packs a college name into at most two lines for the
// certificate. Whole words accumulate into the first line while it fits the
// budget, then into a dash-prefixed second line; if words are still left
// over, the second line gains a trailing ellipsis. Words are never split.
func splitCollegeName(name string) (string, string) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", ""
	}

	first, rest := packWords(words, "", collegeLineBudget)
	if len(rest) == 0 {
		return first, ""
	}

	second, rest := packWords(rest, "- ", collegeLineBudget)
	if len(rest) > 0 {
		second += "..."
	}
	return first, second
}

// packWords greedily appends whole words to prefix while the line stays
// within budget. The first word is always taken so oversized words still get
// placed rather than looping forever.
func packWords(words []string, prefix string, budget int) (string, []string) {
	line := prefix
	taken := 0
	for _, w := range words {
		candidate := w
		if line != prefix {
			candidate = line + " " + w
		} else {
			candidate = line + w
		}
		if taken > 0 && len(candidate) > budget {
			break
		}
		line = candidate
		taken++
	}
	return line, words[taken:]
}

// truncateCollegeName cuts a college name to the attendance budget with a
// trailing ellipsis. Plain character truncation, not word wrapping.
func truncateCollegeName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) <= collegeTruncateBudget {
		return string(runes)
	}
	return string(runes[:collegeTruncateBudget]) + "..."
}
