// Package scrape drives the page-by-page traversal of the development-data
// document, tagging rows with their borough and routing them by shape.
package scrape

import (
	"log"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/borough"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/debug"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/pdfdoc"
)

// ExpectedColumns is the property table's column count before the borough
// tag is appended.
const ExpectedColumns = 8

// Result accumulates the traversal's output. The two row collections are
// owned by the caller; no package state is involved.
type Result struct {
	ValidRows [][]string
	BadRows   [][]string

	PagesSeen    int
	PagesSkipped int
	PagesFailed  int
}

// Traverse walks the document in page order. Pages with no recognizable
// borough contribute zero rows; rows whose cell count (tag included) is not
// expectedCols+1 go to the bad-row collection.
func Traverse(doc pdfdoc.Document, expectedCols int, localDebug bool) *Result {
	defer debug.Timing(localDebug, "document traversal")()

	result := &Result{}
	for i, page := range doc.Pages() {
		pageNum := i + 1
		result.PagesSeen++

		text, err := page.Text()
		if err != nil {
			log.Printf("Page %d: skipping, text extraction failed: %v", pageNum, err)
			result.PagesFailed++
			continue
		}

		name, ok := borough.Detect(text)
		if !ok {
			log.Printf("Page %d: skipping, no borough name found", pageNum)
			result.PagesSkipped++
			continue
		}

		tables, err := page.Tables()
		if err != nil {
			log.Printf("Page %d: skipping, table extraction failed: %v", pageNum, err)
			result.PagesFailed++
			continue
		}

		pageValid, pageBad := 0, 0
		for _, table := range tables {
			for _, row := range table {
				tagged := make([]string, 0, len(row)+1)
				tagged = append(tagged, row...)
				tagged = append(tagged, name)

				if len(tagged) == expectedCols+1 {
					result.ValidRows = append(result.ValidRows, tagged)
					pageValid++
				} else {
					result.BadRows = append(result.BadRows, tagged)
					pageBad++
				}
			}
		}
		debug.Output(localDebug, "Page %d (%s): %d valid rows, %d bad rows", pageNum, name, pageValid, pageBad)
	}
	return result
}
