package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	input := "groupNo,courseCode,studentEmail\n1,IT501,a@s.edu\n2,IT501, b@s.edu\n"

	rows, err := DecodeRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0]["groupNo"])
	assert.Equal(t, "IT501", rows[0]["courseCode"])
	assert.Equal(t, "a@s.edu", rows[0]["studentEmail"])

	// Leading space after the delimiter is trimmed by the reader.
	assert.Equal(t, "b@s.edu", rows[1]["studentEmail"])
}

func TestDecodeRowsEmptyFile(t *testing.T) {
	rows, err := DecodeRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeRowsHeaderOnly(t *testing.T) {
	rows, err := DecodeRows(strings.NewReader("groupNo,courseCode,studentEmail\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeRowsMalformed(t *testing.T) {
	// Ragged row: field count doesn't match the header.
	input := "groupNo,courseCode,studentEmail\n1,IT501\n"

	rows, err := DecodeRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, rows)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeRowsMalformedTailDropsEverything(t *testing.T) {
	// A malformed tail aborts the whole file, including rows that decoded fine.
	input := "groupNo,courseCode,studentEmail\n1,IT501,a@s.edu\n\"broken\n"

	rows, err := DecodeRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, rows)
}
