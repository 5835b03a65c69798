package rows

import (
	"reflect"
	"testing"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/dataset"
)

func TestRepairBadPositionalRemap(t *testing.T) {
	// Positions 3 and 6 are rendering artifacts and must be discarded.
	raw := [][]string{
		{"2050", "1", "BED OF FLEET STREET", "artifact-1", "11201",
			"INGERSOLL", "artifact-2", "INGERSOLL", "2", "COMMERCIAL SPACE PARKING LOT", "BROOKLYN"},
	}

	records, stats := RepairBad(raw)
	if stats.Kept != 1 || stats.Unrepairable != 0 {
		t.Fatalf("stats = %+v, want 1 kept, 0 unrepairable", stats)
	}

	want := dataset.Record{
		Borough:           "BROOKLYN",
		Block:             2050,
		Lot:               1,
		Address:           "BED OF FLEET STREET",
		ZipCode:           11201,
		Development:       "INGERSOLL",
		ManagedBy:         "INGERSOLL",
		CommunityDistrict: 2,
		Facility:          "COMMERCIAL SPACE PARKING LOT",
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestRepairBadUnhandledShape(t *testing.T) {
	raw := [][]string{
		{"2050", "1", "10 MAIN ST"},
		{"2050", "1", "10 MAIN ST", "x", "11201", "INGERSOLL", "x", "INGERSOLL", "2", "LOT", "BROOKLYN", "EXTRA"},
	}

	records, stats := RepairBad(raw)
	if len(records) != 0 {
		t.Errorf("got %d records from unhandled shapes, want 0", len(records))
	}
	if stats.Unrepairable != 2 {
		t.Errorf("stats.Unrepairable = %d, want 2", stats.Unrepairable)
	}
}

func TestRepairBadAppliesCleaningRules(t *testing.T) {
	raw := [][]string{
		// Empty address: repaired shape, then dropped by the shared rules.
		{"2050", "1", "", "x", "11201", "INGERSOLL", "x", "INGERSOLL", "2", "LOT", "BROOKLYN"},
		// Non-numeric community district.
		{"2050", "1", "10 MAIN ST", "x", "11201", "INGERSOLL", "x", "INGERSOLL", "CD", "LOT", "BROOKLYN"},
	}

	records, stats := RepairBad(raw)
	if len(records) != 0 || stats.Dropped != 2 {
		t.Errorf("got %d records, stats %+v; want both rows dropped", len(records), stats)
	}
}

func TestRepairHeaderCoversCanonicalColumns(t *testing.T) {
	header := repairHeader()
	for _, col := range dataset.Columns {
		found := false
		for _, h := range header {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("repair header missing column %q", col)
		}
	}
}
