package minimizersa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQueryRecordsMultiRecord(t *testing.T) {
	input := "ignored preamble\n>q1\nACGT\nAC\n>q2\nGGTT\n"
	records, err := ReadQueryRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, QueryRecord{Name: "q1", Sequence: "ACGTAC"}, records[0])
	assert.Equal(t, QueryRecord{Name: "q2", Sequence: "GGTT"}, records[1])
}

func TestReadQueryRecordsStripsAngleBracket(t *testing.T) {
	records, err := ReadQueryRecords(strings.NewReader(">name with spaces\nACGT\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "name with spaces", records[0].Name)
}

func TestWriteMatchLineFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatchLine(&buf, "q1", []int{3, 7}))
	assert.Equal(t, "q1\t2\t3\t7\n", buf.String())
}

func TestWriteMatchLineNoCandidates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatchLine(&buf, "q1", nil))
	assert.Equal(t, "q1\t0\n", buf.String())
}
