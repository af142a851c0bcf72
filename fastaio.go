package minimizersa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// QueryRecord is one record of a multi-record FASTA queries file (spec §6):
// Name is the header line with '>' stripped, Sequence is every following
// line up to the next '>' concatenated.
type QueryRecord struct {
	Name     string
	Sequence string
}

// ReadQueryRecords parses a multi-record FASTA file, ignoring any lines
// before the first '>' record header, and returns records in file order.
func ReadQueryRecords(r io.Reader) ([]QueryRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	var records []QueryRecord
	var name string
	var seq strings.Builder
	haveRecord := false

	flush := func() {
		if haveRecord {
			records = append(records, QueryRecord{Name: name, Sequence: seq.String()})
		}
		seq.Reset()
	}

	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			name = strings.TrimPrefix(line, ">")
			haveRecord = true
		} else if haveRecord {
			seq.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read queries file")
	}
	flush()

	return records, nil
}

// WriteMatchLine writes one line of the output format in spec §6:
// "<query_name>\t<num_candidates>[\t<pos>]*".
func WriteMatchLine(w io.Writer, name string, positions []int) error {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(len(positions)))
	for _, p := range positions {
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('\n')

	if _, err := fmt.Fprint(w, b.String()); err != nil {
		return errors.Wrap(err, "write match line")
	}
	return nil
}
