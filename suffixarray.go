package minimizersa

import (
	"sort"
	"strings"
)

// terminatorByte is appended k times to the comparator's backing string
// when a build installs the optional terminal anchor (spec §4.4, DESIGN.md
// open question (a)). It must sort below every byte that can occur in a
// DNA k-mer; '$' (0x24) is below 'A' (0x41).
const terminatorByte = '$'

// terminatedBacking returns the string the comparator and SA builder treat
// as "R" once the optional terminal anchor is installed: r with k copies
// of terminatorByte appended. It is cheap to recompute and is not itself
// persisted — only r, k and the Terminated flag are.
func terminatedBacking(r string, k int) string {
	return r + strings.Repeat(string(terminatorByte), k)
}

// BuildSuffixArray computes M(R) (§4.2) and the permutation SA that sorts
// its suffixes under the symbolic comparator (§4.3/§4.4). When terminate is
// true, a synthetic final anchor at position len(r) is appended to the
// minimizer sequence; its k-mer (read from the terminator-extended backing
// string) sorts below every real k-mer in r, per the open question decided
// in DESIGN.md. The backing string the returned positions must be read
// against is terminatedBacking(r, k) when terminate is true, else r itself.
func BuildSuffixArray(r string, k, w int, terminate bool) (mpos []int, sa []int) {
	mpos = ExtractMinimizers(r, k, w)
	if terminate && len(mpos) > 0 {
		mpos = append(mpos, len(r))
	}

	backing := r
	if terminate {
		backing = terminatedBacking(r, k)
	}

	sa = make([]int, len(mpos))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return CompareMinimizerSuffixes(mpos[sa[i]:], mpos[sa[j]:], backing, backing, k) == Less
	})

	return mpos, sa
}
