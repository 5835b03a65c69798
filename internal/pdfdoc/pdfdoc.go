// Package pdfdoc wraps PDF access behind small page-oriented interfaces so
// the scrape pipeline can be driven by any page/table source.
package pdfdoc

// Page is one page of a paginated document.
type Page interface {
	// Text returns the full plain text of the page.
	Text() (string, error)
	// Tables returns the page's tables in order: each table is an ordered
	// list of rows, each row an ordered list of text cells.
	Tables() ([][][]string, error)
}

// Document is an open paginated document.
type Document interface {
	Pages() []Page
	Close() error
}

// Options tunes the positional table reconstruction of the PDF backend.
type Options struct {
	// RowTolerance is the maximum Y distance (in points) between fragments
	// considered to sit on the same physical row.
	RowTolerance float64
	// CellGap is the minimum X distance (in points) between fragments that
	// starts a new cell.
	CellGap float64
}

// DefaultOptions returns reconstruction thresholds that work for the NYCHA
// development-data rendering.
func DefaultOptions() Options {
	return Options{
		RowTolerance: 2.0,
		CellGap:      12.0,
	}
}
