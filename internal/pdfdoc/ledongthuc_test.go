package pdfdoc

import (
	"reflect"
	"testing"

	"github.com/ledongthuc/pdf"
)

func frag(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestBuildRows(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name  string
		texts []pdf.Text
		want  [][]string
	}{
		{
			name: "single row split into cells at wide gaps",
			texts: []pdf.Text{
				frag("2050", 10, 700, 20),
				frag("1", 60, 700, 5),
				frag("FLEET", 100, 700, 30),
				frag("STREET", 133, 700, 35),
			},
			want: [][]string{{"2050", "1", "FLEET STREET"}},
		},
		{
			name: "rows ordered top to bottom",
			texts: []pdf.Text{
				frag("SECOND", 10, 650, 40),
				frag("FIRST", 10, 700, 30),
			},
			want: [][]string{{"FIRST"}, {"SECOND"}},
		},
		{
			name: "slight baseline jitter stays one row",
			texts: []pdf.Text{
				frag("A", 10, 700.0, 5),
				frag("B", 100, 701.4, 5),
			},
			want: [][]string{{"A", "B"}},
		},
		{
			name: "whitespace fragments dropped",
			texts: []pdf.Text{
				frag("  ", 10, 700, 5),
				frag("X", 100, 700, 5),
			},
			want: [][]string{{"X"}},
		},
		{
			name:  "empty page",
			texts: nil,
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildRows(tt.texts, opts)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildRows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitCellsAdjacentGlyphs(t *testing.T) {
	// Per-glyph fragments with no measurable gap must join without spaces.
	texts := []pdf.Text{
		frag("B", 10, 700, 6),
		frag("L", 16, 700, 6),
		frag("O", 22, 700, 6),
		frag("C", 28, 700, 6),
		frag("K", 34, 700, 6),
	}
	got := splitCells(texts, 12.0)
	want := []string{"BLOCK"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitCells() = %v, want %v", got, want)
	}
}
