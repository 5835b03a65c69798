package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Relation is a header-addressed table loaded from (or bound for) a flat
// tabular file.
type Relation struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a named column, or -1.
func (rel Relation) ColumnIndex(name string) int {
	for i, h := range rel.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ReadCSV loads a delimited file into a Relation. Rows are allowed to vary
// in width; short rows simply lack trailing columns.
func ReadCSV(path string) (Relation, error) {
	file, err := os.Open(path)
	if err != nil {
		return Relation{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Relation{}, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Relation{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return Relation{Header: header, Rows: rows}, nil
}

// WriteCSV writes the relation to path as one blocking write: header row
// first, then every data row.
func (rel Relation) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(rel.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rel.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRecords exports records in the canonical column order.
func WriteRecords(path string, records []Record) error {
	rel := Relation{Header: Columns, Rows: make([][]string, 0, len(records))}
	for _, r := range records {
		rel.Rows = append(rel.Rows, r.Row())
	}
	return rel.WriteCSV(path)
}

// WriteRawRows exports raw (pre-repair) rows for manual audit. Rows keep
// whatever width the extractor produced.
func WriteRawRows(path string, rows [][]string) error {
	rel := Relation{Header: Columns, Rows: rows}
	return rel.WriteCSV(path)
}
