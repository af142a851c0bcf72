package minimizersa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSuffixArraySortedness(t *testing.T) {
	// P1: sortedness of the minimizer-space SA.
	r := "ACGTACGTACGTACGT"
	k, w := 3, 5
	mpos, sa := BuildSuffixArray(r, k, w, true)
	backing := terminatedBacking(r, k)

	for i := 1; i < len(sa); i++ {
		cmp := CompareMinimizerSuffixes(mpos[sa[i-1]:], mpos[sa[i]:], backing, backing, k)
		assert.NotEqual(t, Greater, cmp, "SA not sorted at index %d", i)
	}
}

func TestBuildSuffixArrayIsPermutation(t *testing.T) {
	// P2: SA is a permutation of [0, m).
	r := "ACGTACGTAC"
	mpos, sa := BuildSuffixArray(r, 3, 4, false)
	seen := make([]bool, len(mpos))
	for _, s := range sa {
		assert.False(t, seen[s])
		seen[s] = true
	}
	for _, b := range seen {
		assert.True(t, b)
	}
}

func TestBuildSuffixArrayAnchorBounds(t *testing.T) {
	// P3: every anchor position p satisfies 0 <= p <= |R|-k.
	r := "ACGTACGTACGTTTT"
	k := 4
	mpos, _ := BuildSuffixArray(r, k, 6, false)
	for _, p := range mpos {
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, len(r)-k)
	}
}

func TestBuildSuffixArrayDuplicateCollapse(t *testing.T) {
	// P4: no two adjacent minimizer positions share a k-mer.
	r := "AAAAAAAAAAAA"
	mpos, _ := BuildSuffixArray(r, 2, 3, false)
	for i := 1; i < len(mpos); i++ {
		assert.NotEqual(t, r[mpos[i-1]:mpos[i-1]+2], r[mpos[i]:mpos[i]+2])
	}
}
