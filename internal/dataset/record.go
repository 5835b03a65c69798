package dataset

import "strconv"

// Columns is the canonical column order of the merged relation.
var Columns = []string{
	ColBorough,
	ColBlock,
	ColLot,
	ColAddress,
	ColZipCode,
	ColDevelopment,
	ColManagedBy,
	ColCD,
	ColFacility,
}

// Record is one normalized NYCHA property row.
type Record struct {
	Borough           string
	Block             int
	Lot               int
	Address           string
	ZipCode           int
	Development       string
	ManagedBy         string
	CommunityDistrict int
	Facility          string
}

// Row renders the record in canonical column order.
func (r Record) Row() []string {
	return []string{
		r.Borough,
		strconv.Itoa(r.Block),
		strconv.Itoa(r.Lot),
		r.Address,
		strconv.Itoa(r.ZipCode),
		r.Development,
		r.ManagedBy,
		strconv.Itoa(r.CommunityDistrict),
		r.Facility,
	}
}

// Merge concatenates the valid-path and repaired-path records, valid rows
// first. No deduplication across the two paths.
func Merge(valid, repaired []Record) []Record {
	merged := make([]Record, 0, len(valid)+len(repaired))
	merged = append(merged, valid...)
	merged = append(merged, repaired...)
	return merged
}
