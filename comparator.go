package minimizersa

// Ordering is the three-way result of the symbolic comparator (C3).
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// CompareMinimizerSuffixes implements the symbolic comparator of spec §4.3.
// a and b are minimizer-suffixes: tails of two minimizer-position sequences,
// each backed by its own string (sa for a, sb for b). The comparator never
// looks at the integers directly — it walks both suffixes in lockstep,
// comparing the k-mers the positions name against their backing strings.
//
//   - both exhausted                  -> Equal
//   - a exhausted, b isn't            -> Less  (prefix rule)
//   - b exhausted, a isn't            -> Greater
//   - otherwise compare k-mers byte-for-byte; on a tie advance both
func CompareMinimizerSuffixes(a, b []int, sa, sb string, k int) Ordering {
	for {
		aDone := len(a) == 0
		bDone := len(b) == 0
		switch {
		case aDone && bDone:
			return Equal
		case aDone:
			return Less
		case bDone:
			return Greater
		}

		ka := kmerAt(sa, a[0], k)
		kb := kmerAt(sb, b[0], k)

		switch {
		case ka < kb:
			return Less
		case ka > kb:
			return Greater
		}

		a = a[1:]
		b = b[1:]
	}
}

// kmerAt extracts the k-mer anchored at p, clamped to the backing string's
// end per spec §4.3 ("min(A[i_A]+k, |S_A|)") so a position near the tail of
// a transient augmented string never panics on a short slice.
func kmerAt(s string, p, k int) string {
	end := p + k
	if end > len(s) {
		end = len(s)
	}
	if p > end {
		p = end
	}
	return s[p:end]
}
