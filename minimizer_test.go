package minimizersa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMinimizersEmptyWhenShorterThanWindow(t *testing.T) {
	assert.Nil(t, ExtractMinimizers("ACG", 2, 4))
}

func TestExtractMinimizersSingleWindow(t *testing.T) {
	// spec S3: R="ACGT", k=2, w=4 -> exactly one window, minimum is "AC" at 0.
	got := ExtractMinimizers("ACGT", 2, 4)
	assert.Equal(t, []int{0}, got)
}

func TestExtractMinimizersCollapsesDuplicates(t *testing.T) {
	// spec S2: R="AAAAAAAA", k=2, w=3 collapses to a single anchor at 0.
	got := ExtractMinimizers("AAAAAAAA", 2, 3)
	assert.Equal(t, []int{0}, got)
}

func TestExtractMinimizersNeverStraddlesEnd(t *testing.T) {
	s := "ACGTACGTACGT"
	k, w := 4, 6
	for _, p := range ExtractMinimizers(s, k, w) {
		assert.LessOrEqual(t, p+k, len(s))
	}
}

func TestExtractMinimizersLeftmostTieBreak(t *testing.T) {
	// window "AAAA", k=1: every single character is the minimum "A";
	// leftmost must win.
	got := ExtractMinimizers("AAAA", 1, 4)
	assert.Equal(t, []int{0}, got)
}

func TestExtractMinimizersAdjacentAnchorsDiffer(t *testing.T) {
	// spec P4 check: the sequence is non-empty and no two adjacent anchors
	// name the same k-mer.
	s := "ACGTACGTAC"
	k, w := 3, 4
	pos := ExtractMinimizers(s, k, w)
	assert.NotEmpty(t, pos)
	for i, p := range pos {
		if i > 0 {
			assert.NotEqual(t, s[pos[i-1]:pos[i-1]+k], s[p:p+k])
		}
	}
}
