package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCollegeNameShort(t *testing.T) {
	first, second := splitCollegeName("City College")
	require.Equal(t, "City College", first)
	require.Empty(t, second)
}

func TestSplitCollegeNameTwoBuckets(t *testing.T) {
	name := "Government College of Engineering and Textile Technology Berhampore"
	first, second := splitCollegeName(name)

	require.Equal(t, "Government College of Engineering and", first)
	require.Equal(t, "- Textile Technology Berhampore", second)
}

func TestSplitCollegeNameOverflowGainsEllipsis(t *testing.T) {
	name := "Government College of Engineering and Textile Technology Berhampore West Bengal Extended Campus Wing"
	first, second := splitCollegeName(name)

	require.LessOrEqual(t, len(first), collegeLineBudget)
	require.True(t, strings.HasPrefix(second, "- "))
	require.True(t, strings.HasSuffix(second, "..."))
}

func TestSplitCollegeNameIdempotent(t *testing.T) {
	name := "Government College of Engineering and Textile Technology Berhampore"
	f1, s1 := splitCollegeName(name)
	f2, s2 := splitCollegeName(name)
	require.Equal(t, f1, f2)
	require.Equal(t, s1, s2)
}

func TestSplitCollegeNameNeverSplitsWords(t *testing.T) {
	name := "National Institute of Fashion and Apparel Design Technology Campus Bhubaneswar Odisha"
	first, second := splitCollegeName(name)

	second = strings.TrimPrefix(second, "- ")
	second = strings.TrimSuffix(second, "...")

	placed := strings.Fields(first + " " + second)
	original := strings.Fields(name)
	require.LessOrEqual(t, len(placed), len(original))
	for i, w := range placed {
		require.Equal(t, original[i], w)
	}
}

func TestSplitCollegeNameOversizedSingleWord(t *testing.T) {
	word := strings.Repeat("x", collegeLineBudget+10)
	first, second := splitCollegeName(word)
	require.Equal(t, word, first)
	require.Empty(t, second)
}

func TestSplitCollegeNameEmpty(t *testing.T) {
	first, second := splitCollegeName("   ")
	require.Empty(t, first)
	require.Empty(t, second)
}

func TestTruncateCollegeName(t *testing.T) {
	require.Equal(t, "City College", truncateCollegeName("City College"))

	long := "Government College of Engineering and Textile Technology"
	got := truncateCollegeName(long)
	require.Len(t, got, collegeTruncateBudget+3)
	require.True(t, strings.HasSuffix(got, "..."))
	require.Equal(t, long[:collegeTruncateBudget], got[:collegeTruncateBudget])
}
