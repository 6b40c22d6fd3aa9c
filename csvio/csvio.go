// Package csvio reads and writes the CSV files passed between pipeline
// stages. Reading is header-keyed so a stage never depends on the column
// order of the stage before it, only on column names.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// ReadRows reads a CSV file into one map per data row, keyed by the header
// row. Rows shorter than the header leave the trailing columns absent from
// the map, so a missing column and a missing cell look the same to
// callers.
func ReadRows(filename string) ([]map[string]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteRows writes a header and data rows to filename, creating the
// directory if needed.
func WriteRows(filename string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o777); err != nil {
		return fmt.Errorf("create path: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
