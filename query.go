package minimizersa

import "strings"

// VerificationMode selects the optional post-filter verification strategy
// of spec §4.5 step 7 and the "full verification mode" paragraph below it.
type VerificationMode string

const (
	// ModeFilterOnly reports every candidate surviving the boundary and
	// delta filters, running partial verification only as far as
	// QueryOptions.PartialCheckCt dictates (0 means none: spec default).
	ModeFilterOnly VerificationMode = ""
	// ModeFull compares each candidate's full span against Q byte-for-byte
	// and emits only exact matches.
	ModeFull VerificationMode = "full"
)

// QueryOptions are the two filter knobs of spec §4.5 plus the verification
// mode extension of SPEC_FULL.md.
type QueryOptions struct {
	PartialCheckCt int
	DeltaCheckCt   int
	Mode           VerificationMode
}

const (
	lowerSentinel = '#' // spec §4.5 step 2: below every byte in R's k-mers
	upperSentinel = '}' // spec §4.5 step 3: above every byte in R's k-mers
)

// Query runs the C6 pipeline of spec §4.5 for one query string and returns
// the surviving aligned start positions in R: in SA order, or in ascending
// reference order under ModeFull. A nil result means the query produced no
// candidates; callers distinguish "too short to minimize" themselves via len(q) < w,
// per spec §7's query-time empty-minimizer-sequence disposition.
func Query(idx *Index, acc *PrefixAccelerator, q string, opts QueryOptions) []int {
	k, w := idx.K, idx.W
	if len(q) < w {
		return nil
	}

	qpos := ExtractMinimizers(q, k, w)
	if len(qpos) == 0 {
		return nil
	}

	refBacking := idx.backing()
	saLen := len(idx.SA)

	lo, hi := 0, saLen
	if acc != nil {
		lo, hi = acc.Bracket(kmerAt(q, qpos[0], k), saLen)
	}

	qLow := q + strings.Repeat(string(lowerSentinel), k)
	qPosLow := append(append([]int(nil), qpos...), len(qLow)-k)
	l := lowerBoundSearch(idx.MinimizerPositions, idx.SA, refBacking, lo, hi, qPosLow, qLow, k)

	qHigh := q + strings.Repeat(string(upperSentinel), k)
	qPosHigh := append(append([]int(nil), qpos...), len(qHigh)-k)
	r := upperBoundSearch(idx.MinimizerPositions, idx.SA, refBacking, l, hi, qPosHigh, qHigh, k)

	if l >= r {
		return nil
	}

	// ModeFull supersedes the per-candidate SA enumeration below: the
	// minimizer scheme's consecutive-duplicate collapse (spec §4.2) means
	// M(R) can hold only one entry for a run of positions that all share
	// the same leading k-mer, so the SA candidates in [l, r) are not a
	// complete enumeration of every base-space occurrence (spec §8 P8).
	// Full verification recovers completeness directly: R[j:j+k] equal to
	// Q's own leading minimizer k-mer is a *necessary* condition for any
	// true occurrence at aligned start j-Q_pos[0], so scanning every such j
	// and confirming it with an exact byte compare is both sound (P7) and
	// complete (P8), independent of how M(R) happened to collapse.
	if opts.Mode == ModeFull {
		return fullVerifyAllOccurrences(idx.Reference, q, qpos[0], k)
	}

	// A candidate is valid iff its aligned span [astart, astart+|Q|) fits
	// inside R. Using len(R) as the threshold also rejects the optional
	// terminal anchor's own position (p == len(R)) unconditionally, since
	// |Q| - qpos[0] - 1 is always >= 0 (qpos[0] <= |Q|-k): no separate
	// terminator-dependent adjustment is needed (DESIGN.md open question (d)).
	terminatorThreshold := len(idx.Reference)

	covered := coveredByMinimizerKmers(len(q), qpos, k)

	var results []int
	for i := l; i < r; i++ {
		saIdx := idx.SA[i]
		p := idx.MinimizerPositions[saIdx]

		if p < qpos[0] {
			continue
		}
		if p+(len(q)-qpos[0]-1) >= terminatorThreshold {
			continue
		}

		if opts.DeltaCheckCt > 0 && !passesDeltaFilter(idx.MinimizerPositions, saIdx, qpos, opts.DeltaCheckCt) {
			continue
		}

		astart := p - qpos[0]

		if opts.PartialCheckCt > 0 && !partialVerify(idx.Reference, astart, q, covered, opts.PartialCheckCt) {
			continue
		}

		results = append(results, astart)
	}

	return results
}

// fullVerifyAllOccurrences enumerates every aligned start j-qLead where R's
// k-mer at j matches Q's leading minimizer k-mer, then confirms each with
// fullVerify. The k-mer check is necessary for any true match (it is the
// substring of Q at the same offset), so this never misses an occurrence;
// fullVerify's exact comparison rejects every spurious one.
func fullVerifyAllOccurrences(reference, q string, qLead, k int) []int {
	leadKmer := kmerAt(q, qLead, k)
	maxPos := len(reference) - k

	var results []int
	for j := 0; j <= maxPos; j++ {
		if reference[j:j+k] != leadKmer {
			continue
		}
		astart := j - qLead
		if fullVerify(reference, astart, q) {
			results = append(results, astart)
		}
	}
	return results
}

// lowerBoundSearch finds the smallest index in [lo, hi) whose
// minimizer-suffix is not Less than the target (spec §4.5 step 2).
func lowerBoundSearch(mpos, sa []int, refBacking string, lo, hi int, targetPos []int, targetBacking string, k int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		suffix := mpos[sa[mid]:]
		if CompareMinimizerSuffixes(suffix, targetPos, refBacking, targetBacking, k) == Less {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBoundSearch finds the smallest index in [lo, hi) whose
// minimizer-suffix is strictly Greater than the target (spec §4.5 step 3).
func upperBoundSearch(mpos, sa []int, refBacking string, lo, hi int, targetPos []int, targetBacking string, k int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		suffix := mpos[sa[mid]:]
		if CompareMinimizerSuffixes(suffix, targetPos, refBacking, targetBacking, k) == Greater {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// passesDeltaFilter implements spec §4.5 step 6: for up to checkCt
// successive gaps between consecutive query minimizers, require the
// reference's minimizer gap to match exactly.
func passesDeltaFilter(mpos []int, saIdx int, qpos []int, checkCt int) bool {
	n := checkCt
	if n > len(qpos)-1 {
		n = len(qpos) - 1
	}
	for j := 0; j < n; j++ {
		if saIdx+j+1 >= len(mpos) {
			return false
		}
		deltaQ := qpos[j+1] - qpos[j]
		deltaR := mpos[saIdx+j+1] - mpos[saIdx+j]
		if deltaR != deltaQ {
			return false
		}
	}
	return true
}

// coveredByMinimizerKmers marks every query position touched by any of Q's
// minimizer k-mers, so partial verification (step 7) can skip them.
func coveredByMinimizerKmers(qlen int, qpos []int, k int) []bool {
	covered := make([]bool, qlen)
	for _, p := range qpos {
		end := p + k
		if end > qlen {
			end = qlen
		}
		for i := p; i < end; i++ {
			covered[i] = true
		}
	}
	return covered
}

// partialVerify checks the first checkCt query positions not covered by a
// minimizer k-mer against R at the aligned offset (spec §4.5 step 7).
func partialVerify(reference string, astart int, q string, covered []bool, checkCt int) bool {
	checked := 0
	for pos := 0; pos < len(q) && checked < checkCt; pos++ {
		if covered[pos] {
			continue
		}
		ri := astart + pos
		if ri < 0 || ri >= len(reference) || reference[ri] != q[pos] {
			return false
		}
		checked++
	}
	return true
}

// fullVerify implements the "full verification mode" paragraph following
// spec §4.5 step 8: byte-for-byte comparison of the candidate's full span.
func fullVerify(reference string, astart int, q string) bool {
	if astart < 0 || astart+len(q) > len(reference) {
		return false
	}
	return reference[astart:astart+len(q)] == q
}
