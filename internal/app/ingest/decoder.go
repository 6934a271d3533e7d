package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one data row of the uploaded file, keyed by raw header text. Header
// aliasing is the normalizer's job; the decoder preserves headers unmodified.
type Row map[string]string

// DecodeError indicates a structurally malformed file. No rows from a file
// that fails to decode are ever processed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode roster file: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeRows parses a comma-separated stream with a header row into an ordered
// sequence of field mappings, one per data row. The whole file is read before
// any row is returned, so a malformed tail aborts the upload with nothing
// partially decoded.
func DecodeRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DecodeError{Err: err}
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
