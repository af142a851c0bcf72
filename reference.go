package minimizersa

import (
	"bufio"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// mmapThreshold is the file size above which LoadReference prefers a
// memory-mapped read over os.ReadFile. Below it the syscall overhead of
// mmap isn't worth it.
const mmapThreshold = 32 << 20 // 32MiB

// LoadReference reads a single-record FASTA-like file and returns the
// concatenated reference string R. The first line (the FASTA header) is
// discarded; every remaining line is concatenated verbatim, with no
// trailing newline and no case normalization.
func LoadReference(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "stat reference %q", path)
	}

	if info.Size() >= mmapThreshold {
		s, err := loadReferenceMmap(path)
		if err == nil {
			return s, nil
		}
		// Fall through to the plain path on any mmap-specific failure
		// (e.g. the file system doesn't support mmap); same semantics,
		// just slower.
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open reference %q", path)
	}
	defer f.Close()

	return concatBodyLines(bufio.NewScanner(f))
}

func loadReferenceMmap(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open reference %q", path)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", errors.Wrapf(err, "mmap reference %q", path)
	}
	defer m.Unmap()

	return concatBodyLines(bufio.NewScanner(strings.NewReader(string(m))))
}

// concatBodyLines discards the scanner's first line and concatenates the
// rest, which is the shared tail of both the mmap and plain-file paths.
func concatBodyLines(sc *bufio.Scanner) (string, error) {
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errors.Wrap(err, "read reference header")
		}
		return "", nil // empty file: header line absent, body empty
	}

	var b strings.Builder
	for sc.Scan() {
		b.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", errors.Wrap(err, "read reference body")
	}
	return b.String(), nil
}
