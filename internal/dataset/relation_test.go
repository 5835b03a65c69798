package dataset

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteRecordsAndReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.csv")

	records := []Record{
		{Borough: "BROOKLYN", Block: 2050, Lot: 1, Address: "10 MAIN ST", ZipCode: 11201,
			Development: "INGERSOLL", ManagedBy: "INGERSOLL", CommunityDistrict: 2, Facility: "PARKING LOT"},
	}
	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}

	rel, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if !reflect.DeepEqual(rel.Header, Columns) {
		t.Errorf("header = %v, want canonical columns %v", rel.Header, Columns)
	}
	if len(rel.Rows) != 1 || rel.Rows[0][rel.ColumnIndex(ColAddress)] != "10 MAIN ST" {
		t.Errorf("rows = %v, want the exported record back", rel.Rows)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	// Bad-row audit files carry whatever width the extractor produced.
	raw := [][]string{
		{"2050", "1", "10 MAIN ST"},
		{"2050", "1", "10 MAIN ST", "x", "11201", "I", "x", "I", "2", "LOT", "BROOKLYN"},
	}
	if err := WriteRawRows(path, raw); err != nil {
		t.Fatalf("WriteRawRows() error = %v", err)
	}

	rel, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rel.Rows) != 2 || len(rel.Rows[0]) != 3 || len(rel.Rows[1]) != 11 {
		t.Errorf("ragged rows not preserved: %v", rel.Rows)
	}
}

func TestMergeOrder(t *testing.T) {
	valid := []Record{{Address: "A"}, {Address: "B"}}
	repaired := []Record{{Address: "C"}}

	merged := Merge(valid, repaired)
	got := []string{merged[0].Address, merged[1].Address, merged[2].Address}
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() order = %v, want valid rows first then repaired", got)
	}
}
