package minimizersa

import (
	"bytes"
	"encoding/gob"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Index is the persistable artifact I of spec §3: {R, M(R), SA, k, w},
// plus the Terminated flag recording whether the optional terminal anchor
// of §4.4 was installed at build time (DESIGN.md open question (a)).
type Index struct {
	Reference          string
	MinimizerPositions []int
	SA                 []int
	K                  int
	W                  int
	Terminated         bool
}

// ErrEmptyMinimizerSequence is returned by BuildIndex when the reference is
// shorter than the window, per spec §7 ("Empty minimizer sequence... build
// emits a diagnostic and exits nonzero").
var ErrEmptyMinimizerSequence = errors.New("minimizer sequence is empty: reference shorter than window w")

// ErrBadParameters is returned for k < 1 or w < k, spec §3 invariant I4.
var ErrBadParameters = errors.New("minimizer parameters invalid: require w >= k >= 1")

// ErrReservedByte is returned when the reference contains one of the bytes
// the build terminator or query-time sentinels reserve for ordering
// (spec §9: implementations must reject such references, choose different
// sentinels, or encode them out-of-band in the comparator; this one rejects).
var ErrReservedByte = errors.New("reference contains a reserved sentinel byte ('$', '#', or '}')")

// BuildIndex runs the full build pipeline (C1 is the caller's job; this
// takes the already-loaded reference string): C2 then C4, bound into an
// Index (C5). terminate selects the optional terminal anchor of §4.4.
func BuildIndex(reference string, k, w int, terminate bool) (*Index, error) {
	if k < 1 || w < k {
		return nil, ErrBadParameters
	}
	if strings.ContainsAny(reference, string([]byte{terminatorByte, lowerSentinel, upperSentinel})) {
		return nil, ErrReservedByte
	}

	mpos, sa := BuildSuffixArray(reference, k, w, terminate)
	if len(mpos) == 0 {
		return nil, ErrEmptyMinimizerSequence
	}

	return &Index{
		Reference:          reference,
		MinimizerPositions: mpos,
		SA:                 sa,
		K:                  k,
		W:                  w,
		Terminated:         terminate,
	}, nil
}

// backing returns the string comparator lookups against this index's
// minimizer positions must read from (see terminatedBacking).
func (idx *Index) backing() string {
	if idx.Terminated {
		return terminatedBacking(idx.Reference, idx.K)
	}
	return idx.Reference
}

// Save persists the index to path as gzip-compressed gob, a stable
// self-describing binary encoding per spec §6. Field order in the gob
// stream follows struct declaration order: R, M(R), SA, k, w, terminated.
func (idx *Index) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create index file %q", path)
	}
	defer f.Close()

	gz, err := gzip.NewWriterLevel(f, gzip.BestSpeed)
	if err != nil {
		return errors.Wrap(err, "open gzip writer")
	}

	if err := gob.NewEncoder(gz).Encode(idx); err != nil {
		gz.Close()
		return errors.Wrap(err, "encode index")
	}
	if err := gz.Close(); err != nil {
		return errors.Wrap(err, "flush index file")
	}
	return nil
}

// LoadIndex deserializes an index previously written by Save. Any
// structural mismatch (bad gzip stream, truncated gob, wrong schema) is
// reported as an I/O error per spec §7 ("index/version mismatch on load:
// treated as I/O error").
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open index file %q", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "open gzip reader")
	}
	defer gz.Close()

	var idx Index
	if err := gob.NewDecoder(gz).Decode(&idx); err != nil {
		return nil, errors.Wrap(err, "decode index")
	}

	if err := idx.validate(); err != nil {
		return nil, errors.Wrap(err, "loaded index failed validation")
	}

	return &idx, nil
}

// validate re-checks the invariants of spec §3 that are cheap on load (I1,
// I2, I4, plus SA being a permutation; I3 sortedness is not checked),
// catching a corrupt or foreign file early rather than
// failing obscurely deep inside the query engine.
func (idx *Index) validate() error {
	if idx.K < 1 || idx.W < idx.K {
		return ErrBadParameters
	}
	if len(idx.SA) != len(idx.MinimizerPositions) { // I1
		return errors.New("len(SA) != len(M(R))")
	}
	maxPos := len(idx.Reference) - idx.K
	for _, p := range idx.MinimizerPositions {
		if idx.Terminated && p == len(idx.Reference) {
			continue // the synthetic terminal anchor, not a real k-mer
		}
		if p < 0 || p > maxPos { // I2
			return errors.New("minimizer position out of bounds")
		}
	}
	seen := make([]bool, len(idx.SA))
	for _, s := range idx.SA {
		if s < 0 || s >= len(idx.SA) || seen[s] { // I... permutation check (P2)
			return errors.New("SA is not a permutation of [0, m)")
		}
		seen[s] = true
	}
	return nil
}

// encodeForTest is a small helper used by index_test.go to exercise the
// in-memory encode/decode path without touching the filesystem.
func encodeForTest(idx *Index) (*Index, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(idx); err != nil {
		return nil, err
	}
	var out Index
	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
