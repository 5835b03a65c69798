// Package rows turns the raw rows accumulated by the document traversal into
// normalized property records: the well-formed rows through header promotion
// and cleaning, the malformed ones through a fixed positional repair first.
package rows

import (
	"strconv"
	"strings"
)

// Frame is a header-addressed block of raw text rows.
type Frame struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, h := range f.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns the row's value at idx, or "" when the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ParseIntOr parses s as an integer, falling back to def. Coercion failures
// are resolved by this fallback and the caller's invariant check, never by
// an error.
func ParseIntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Stats counts what each cleaning pass did with its input rows.
type Stats struct {
	Input        int
	Unrepairable int
	Dropped      int
	Kept         int
}
