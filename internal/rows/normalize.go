package rows

import (
	"fmt"
	"strings"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/dataset"
)

// NormalizeValid promotes the first well-formed row to a header, fixes the
// mislabeled borough column, cleans the remaining rows, and converts the
// survivors to property records.
func NormalizeValid(raw [][]string) ([]dataset.Record, Stats, error) {
	if len(raw) == 0 {
		return nil, Stats{}, fmt.Errorf("no valid rows extracted: cannot promote a header")
	}

	// The raw header reuses a borough name where the borough column should
	// be, because the first tagged page is the Bronx listing.
	header := append([]string{}, raw[0]...)
	for i, h := range header {
		if h == "BRONX" {
			header[i] = dataset.ColBorough
		}
	}

	frame := &Frame{Header: header, Rows: raw[1:]}
	records, stats := clean(frame)
	return records, stats, nil
}

// clean applies the shared cleaning rules to a header-addressed frame and
// casts the surviving rows to records. Rows that break an invariant are
// filtered and counted, never errored.
func clean(f *Frame) ([]dataset.Record, Stats) {
	stats := Stats{Input: len(f.Rows)}

	blockIdx := f.ColumnIndex(dataset.ColBlock)
	addressIdx := f.ColumnIndex(dataset.ColAddress)
	zipIdx := f.ColumnIndex(dataset.ColZipCode)
	cdIdx := f.ColumnIndex(dataset.ColCD)

	var records []dataset.Record
	for _, row := range f.Rows {
		// Row text may span physical lines in the source rendering.
		cleaned := make([]string, len(row))
		for i, c := range row {
			cleaned[i] = strings.TrimSpace(strings.ReplaceAll(c, "\n", " "))
		}

		// Duplicate header rows re-embedded mid-table from a page break.
		if strings.Contains(cell(cleaned, blockIdx), dataset.ColBlock) {
			stats.Dropped++
			continue
		}
		if cell(cleaned, addressIdx) == "" {
			stats.Dropped++
			continue
		}
		if ParseIntOr(cell(cleaned, blockIdx), 0) == 0 {
			stats.Dropped++
			continue
		}
		if cell(cleaned, zipIdx) == "" {
			stats.Dropped++
			continue
		}
		if ParseIntOr(cell(cleaned, cdIdx), 0) == 0 {
			stats.Dropped++
			continue
		}

		records = append(records, toRecord(f, cleaned))
		stats.Kept++
	}
	return records, stats
}

// toRecord casts one cleaned row to a property record. The numeric fields
// are always integers after this point.
func toRecord(f *Frame, row []string) dataset.Record {
	return dataset.Record{
		Borough:           cell(row, f.ColumnIndex(dataset.ColBorough)),
		Block:             ParseIntOr(cell(row, f.ColumnIndex(dataset.ColBlock)), 0),
		Lot:               ParseIntOr(cell(row, f.ColumnIndex(dataset.ColLot)), 0),
		Address:           cell(row, f.ColumnIndex(dataset.ColAddress)),
		ZipCode:           ParseIntOr(cell(row, f.ColumnIndex(dataset.ColZipCode)), 0),
		Development:       cell(row, f.ColumnIndex(dataset.ColDevelopment)),
		ManagedBy:         cell(row, f.ColumnIndex(dataset.ColManagedBy)),
		CommunityDistrict: ParseIntOr(cell(row, f.ColumnIndex(dataset.ColCD)), 0),
		Facility:          cell(row, f.ColumnIndex(dataset.ColFacility)),
	}
}
