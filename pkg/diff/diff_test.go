package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	require.Empty(t, Unified("a\nb\n", "a\nb\n", "left", "right"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	result := Unified("0/light\n1/light\n2/light\n", "0/light\n2/light\n2/light\n", "context", "store")

	require.Equal(t, strings.Join([]string{
		"--- context",
		"+++ store",
		"@@ -1,3 +1,3 @@",
		" 0/light",
		"-1/light",
		"+2/light",
		" 2/light",
	}, "\n")+"\n", result)
}

func TestUnifiedDifferentLengths(t *testing.T) {
	result := Unified("a\n", "a\nb\nc\n", "left", "right")
	require.Contains(t, result, "@@ -1,1 +1,3 @@")
	require.Contains(t, result, "+b\n+c\n")
}

func TestUnifiedWithoutTrailingNewline(t *testing.T) {
	result := Unified("a\nb", "a\nc", "left", "right")
	require.Contains(t, result, "-b\n")
	require.Contains(t, result, "+c\n")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	var left, right strings.Builder
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&left, "left %d\n", i)
		fmt.Fprintf(&right, "right %d\n", i)
	}

	result := Unified(left.String(), right.String(), "left", "right")
	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	require.Len(t, lines, maxDiffLines+1)
	require.Equal(t, truncateMessage, lines[len(lines)-1])
}
