package rows

import "github.com/itzamnahuerta/nycha-scraper-anhd/internal/dataset"

// remapEntry binds one raw bad-row position to a canonical column. An empty
// target marks a rendering artifact slot whose value is discarded.
type remapEntry struct {
	src    int
	target string
}

// badRowLayout is the fixed positional layout of a repairable bad row. Bad
// rows of any other width are unhandled shapes and are excluded, not
// guessed at.
var badRowLayout = []remapEntry{
	{0, dataset.ColBlock},
	{1, dataset.ColLot},
	{2, dataset.ColAddress},
	{3, ""},
	{4, dataset.ColZipCode},
	{5, dataset.ColDevelopment},
	{6, ""},
	{7, dataset.ColManagedBy},
	{8, dataset.ColCD},
	{9, dataset.ColFacility},
	{10, dataset.ColBorough},
}

// repairHeader returns the canonical columns of the repaired frame, in remap
// order with the discard slots gone.
func repairHeader() []string {
	var header []string
	for _, e := range badRowLayout {
		if e.target != "" {
			header = append(header, e.target)
		}
	}
	return header
}

// RepairBad remaps the accumulated bad rows onto the canonical column set,
// then applies the same cleaning rules as the valid path.
func RepairBad(raw [][]string) ([]dataset.Record, Stats) {
	frame := &Frame{Header: repairHeader()}
	unrepairable := 0

	for _, row := range raw {
		if len(row) != len(badRowLayout) {
			unrepairable++
			continue
		}
		remapped := make([]string, 0, len(frame.Header))
		for _, e := range badRowLayout {
			if e.target != "" {
				remapped = append(remapped, row[e.src])
			}
		}
		frame.Rows = append(frame.Rows, remapped)
	}

	records, stats := clean(frame)
	stats.Input = len(raw)
	stats.Unrepairable = unrepairable
	return records, stats
}
