package minimizersa

// trieNode is the teacher's TrieNode generalized from a free-text,
// multi-pattern substring matcher into a query-bracket accelerator: each
// inserted key is a k-mer, and the node at the end of a key's path carries
// the half-open SA range of minimizer-suffixes whose leading k-mer equals
// that key (see SPEC_FULL.md "Prefix-accelerated query").
type trieNode struct {
	children map[byte]*trieNode
	hasRange bool
	lo, hi   int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// insert records that SA[lo:hi] is exactly the run of entries whose
// leading k-mer is kmer.
func (n *trieNode) insert(kmer string, lo, hi int) {
	cur := n
	for i := 0; i < len(kmer); i++ {
		ch := kmer[i]
		next, ok := cur.children[ch]
		if !ok {
			next = newTrieNode()
			cur.children[ch] = next
		}
		cur = next
	}
	cur.hasRange = true
	cur.lo, cur.hi = lo, hi
}

// lookup returns the SA range registered for kmer, if any.
func (n *trieNode) lookup(kmer string) (lo, hi int, ok bool) {
	cur := n
	for i := 0; i < len(kmer); i++ {
		next, exists := cur.children[kmer[i]]
		if !exists {
			return 0, 0, false
		}
		cur = next
	}
	if !cur.hasRange {
		return 0, 0, false
	}
	return cur.lo, cur.hi, true
}

// PrefixAccelerator narrows the initial [l, r) bracket the query engine
// binary-searches in (C6 step 2/3) by the query's leading minimizer k-mer,
// so a reference with many distinct leading k-mers doesn't force every
// query to start its binary search over the full SA.
type PrefixAccelerator struct {
	root *trieNode
	k    int
}

// BuildPrefixAccelerator scans idx.SA once (it is already sorted, so every
// run of entries sharing a leading k-mer is contiguous) and records each
// run's [lo, hi) range in a trie keyed by that k-mer.
func BuildPrefixAccelerator(idx *Index) *PrefixAccelerator {
	acc := &PrefixAccelerator{root: newTrieNode(), k: idx.K}
	backing := idx.backing()
	sa := idx.SA
	mpos := idx.MinimizerPositions

	runStart := 0
	for i := 1; i <= len(sa); i++ {
		var boundary bool
		if i == len(sa) {
			boundary = true
		} else {
			boundary = kmerAt(backing, mpos[sa[i]], idx.K) != kmerAt(backing, mpos[sa[runStart]], idx.K)
		}
		if boundary {
			acc.root.insert(kmerAt(backing, mpos[sa[runStart]], idx.K), runStart, i)
			runStart = i
		}
	}
	return acc
}

// Bracket returns the narrowest [lo, hi) known to contain every SA index
// whose minimizer-suffix begins with leadingKmer, or the full [0, len(SA))
// range if the k-mer was never seen in the reference (in which case both
// binary searches below will simply find an empty interval).
func (acc *PrefixAccelerator) Bracket(leadingKmer string, saLen int) (lo, hi int) {
	if lo, hi, ok := acc.root.lookup(leadingKmer); ok {
		return lo, hi
	}
	return 0, saLen
}
