package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
)

// ReadCSV reads one source grid from r. Ragged rows are allowed; the
// per-row column check happens during parsing, not here.
func ReadCSV(name string, r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read source %s: %w", name, err)
	}
	return Table{Name: filepath.Base(name), Rows: rows}, nil
}
