package minimizersa

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// InspectionReport is the output of the C5 sidecar of spec §4.6: it is
// computed over a classical *base-space* suffix array of R, which is
// built here purely for this diagnostic — it plays no part in the
// minimizer-space query path (C6).
type InspectionReport struct {
	MeanLCP   float64
	MedianLCP float64
	MaxLCP    float64
	Samples   []int
}

// Inspect builds a base-space suffix array over reference (via the
// SA-IS construction below) and reports LCP mean/median/max plus an SA
// sample taken every sampleRate entries, per spec §4.6.
func Inspect(reference string, sampleRate int) (*InspectionReport, error) {
	if sampleRate < 1 {
		return nil, errors.New("sample rate must be >= 1")
	}
	if len(reference) == 0 {
		return nil, errors.New("cannot inspect an empty reference")
	}

	encoded, alphabetSize := encodeForSAIS(reference)
	sa := saisEntryPoint(encoded, alphabetSize)

	// computeBaseLCP walks the sentinel-terminated string, so the suffix
	// array it's given must be the one built over that same string.
	lcp := computeBaseLCP(reference+string(baseSASentinel), sa)

	// sa[0] is always the sentinel-only suffix; it has no predecessor to
	// share a meaningful LCP with and is excluded from the statistics. The
	// sample below still starts at sa[0], so it includes that suffix.
	lcpVals := make([]float64, 0, len(sa)-1)
	for i := 1; i < len(sa); i++ {
		lcpVals = append(lcpVals, float64(lcp[i]))
	}

	samples := make([]int, 0, len(sa)/sampleRate+1)
	for idx := 0; idx < len(sa); idx++ {
		if idx%sampleRate == 0 {
			samples = append(samples, sa[idx])
		}
	}

	sorted := append([]float64(nil), lcpVals...)
	sort.Float64s(sorted)

	return &InspectionReport{
		MeanLCP:   stat.Mean(lcpVals, nil),
		MedianLCP: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		MaxLCP:    floats.Max(lcpVals),
		Samples:   samples,
	}, nil
}

// --- base-space SA-IS construction, adapted from the teacher's sais.go ---
// (kept for this diagnostic role only; the query path's minimizer-space SA
// is built by suffixarray.go's symbolic-comparator sort instead, since
// SA-IS needs a linear alphabet, not a cross-string k-mer comparator.)

const baseSASentinel = '\x00'

func encodeForSAIS(s string) ([]int, int) {
	n := len(s)
	encoded := make([]int, n+1)
	maxVal := 0
	for i := 0; i < n; i++ {
		encoded[i] = int(s[i]) + 1
		if encoded[i] > maxVal {
			maxVal = encoded[i]
		}
	}
	encoded[n] = 0
	return encoded, maxVal + 1
}

func saisEntryPoint(s []int, alphabetSize int) []int {
	n := len(s)
	return saisBuild(s, alphabetSize, n, make([]int, n), make([]int, n))
}

func saisBuild(s []int, alphabetSize, n int, sa, lmsNames []int) []int {
	sa = sa[:n]
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	sType := make([]bool, n)
	sType[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			sType[i] = true
		case s[i] > s[i+1]:
			sType[i] = false
		default:
			sType[i] = sType[i+1]
		}
	}

	var lmsPositions []int
	for i := 1; i < n; i++ {
		if sType[i] && !sType[i-1] {
			lmsPositions = append(lmsPositions, i)
		}
	}

	sa = induceSortLMS(s, sa, sType, alphabetSize, lmsPositions)

	var sortedLMS []int
	for _, pos := range sa {
		if pos > 0 && sType[pos] && !sType[pos-1] {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	lmsNames = lmsNames[:n]
	for i := range lmsNames {
		lmsNames[i] = -1
	}
	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev != -1 && !lmsSubstringEqual(s, sType, prev, pos) {
			name++
		}
		lmsNames[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, 0, len(lmsPositions))
	for _, pos := range lmsPositions {
		reduced = append(reduced, lmsNames[pos])
	}

	var reducedSA []int
	if numNames < len(reduced) {
		reducedSA = saisBuild(reduced, numNames, len(reduced), sa, lmsNames)
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		orderedLMS[i] = lmsPositions[idx]
	}
	for i := range sa {
		sa[i] = -1
	}
	return induceSortLMS(s, sa, sType, alphabetSize, orderedLMS)
}

func induceSortLMS(s, sa []int, sType []bool, alphabetSize int, lms []int) []int {
	bucketSizes := make([]int, alphabetSize)
	for _, c := range s {
		bucketSizes[c]++
	}

	tails := bucketTails(bucketSizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(bucketSizes)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !sType[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(bucketSizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && sType[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
	return sa
}

func bucketHeads(bucketSizes []int) []int {
	heads := make([]int, len(bucketSizes))
	sum := 0
	for i, v := range bucketSizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(bucketSizes []int) []int {
	tails := make([]int, len(bucketSizes))
	sum := 0
	for i, v := range bucketSizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

func lmsSubstringEqual(s []int, sType []bool, i, j int) bool {
	n := len(s)
	for step := 0; ; step++ {
		if s[i] != s[j] || sType[i] != sType[j] {
			return false
		}
		iIsLMS := i > 0 && sType[i] && !sType[i-1]
		jIsLMS := j > 0 && sType[j] && !sType[j-1]
		if step > 0 && iIsLMS && jIsLMS {
			return true
		}
		if step > 0 && iIsLMS != jIsLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}

// computeBaseLCP is Kasai's algorithm, adapted from the teacher's lcs.go.
func computeBaseLCP(s string, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	rank := make([]int, n)
	for i, pos := range sa {
		if pos < n {
			rank[pos] = i
		}
	}
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := sa[rank[i]-1]
			for i+h < len(s) && j+h < len(s) && s[i+h] == s[j+h] {
				h++
			}
			lcp[rank[i]] = h
			if h > 0 {
				h--
			}
		} else {
			lcp[rank[i]] = 0
		}
	}
	return lcp
}
