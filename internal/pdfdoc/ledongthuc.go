package pdfdoc

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// fileDocument is the ledongthuc/pdf backed Document.
type fileDocument struct {
	f    *os.File
	r    *pdf.Reader
	opts Options
}

// Open opens a PDF file for page and table extraction.
func Open(path string, opts Options) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	return &fileDocument{f: f, r: r, opts: opts}, nil
}

func (d *fileDocument) Pages() []Page {
	pages := make([]Page, 0, d.r.NumPage())
	for i := 1; i <= d.r.NumPage(); i++ {
		pages = append(pages, &filePage{reader: d.r, number: i, opts: d.opts})
	}
	return pages
}

func (d *fileDocument) Close() error {
	return d.f.Close()
}

type filePage struct {
	reader *pdf.Reader
	number int
	opts   Options
}

// Text returns the page's plain text. Corrupt content streams surface as an
// error for this page only.
func (p *filePage) Text() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: text extraction panicked: %v", p.number, r)
		}
	}()

	page := p.reader.Page(p.number)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing page object", p.number)
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", p.number, err)
	}
	return text, nil
}

// Tables reconstructs one table per page from positioned text fragments:
// fragments are grouped into rows by Y proximity and split into cells at
// horizontal gaps wider than the configured cell gap.
func (p *filePage) Tables() (tables [][][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: content extraction panicked: %v", p.number, r)
		}
	}()

	page := p.reader.Page(p.number)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", p.number)
	}

	rows := buildRows(page.Content().Text, p.opts)
	if len(rows) == 0 {
		return nil, nil
	}
	return [][][]string{rows}, nil
}

// fragmentRow collects the text fragments sharing one baseline.
type fragmentRow struct {
	y     float64
	texts []pdf.Text
}

// buildRows groups positioned fragments into cell rows in reading order.
func buildRows(texts []pdf.Text, opts Options) [][]string {
	var rows []fragmentRow

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}

		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < opts.RowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, fragmentRow{y: t.Y, texts: []pdf.Text{t}})
		}
	}

	// PDF Y grows upward; document order is top to bottom.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, splitCells(row.texts, opts.CellGap))
	}
	return out
}

// splitCells orders a row's fragments left to right and breaks them into
// cells wherever the horizontal gap exceeds cellGap. Smaller gaps become a
// single space so words inside one cell stay joined.
func splitCells(texts []pdf.Text, cellGap float64) []string {
	sort.Slice(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	for i, t := range texts {
		if i > 0 {
			gap := t.X - prevEnd
			switch {
			case gap > cellGap:
				cells = append(cells, strings.TrimSpace(cell.String()))
				cell.Reset()
			case gap > 1.0:
				cell.WriteString(" ")
			}
		}
		cell.WriteString(t.S)
		if end := t.X + t.W; end > prevEnd {
			prevEnd = end
		}
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}
	return cells
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
