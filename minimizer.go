package minimizersa

// ExtractMinimizers computes M(S) as defined in spec §3/§4.2: slide a
// window of length w across S, take the position of the lexicographically
// smallest k-mer in each window (leftmost on ties), and collapse
// consecutive duplicate k-mers.
//
// Returns an empty slice if len(S) < w. Never returns a position p with
// p+k > len(S).
func ExtractMinimizers(s string, k, w int) []int {
	if len(s) < w {
		return nil
	}

	positions := make([]int, 0, len(s)-w+1)
	var lastKmer string
	haveLast := false

	for i := 0; i+w <= len(s); i++ {
		window := s[i : i+w]
		minStart := 0
		minKmer := window[0:k]
		for j := 1; j+k <= len(window); j++ {
			cand := window[j : j+k]
			if cand < minKmer {
				minKmer = cand
				minStart = j
			}
		}

		p := i + minStart
		kmer := s[p : p+k]
		if haveLast && kmer == lastKmer {
			continue
		}
		positions = append(positions, p)
		lastKmer = kmer
		haveLast = true
	}

	return positions
}
