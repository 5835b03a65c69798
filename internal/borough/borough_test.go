package borough

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{
			name:      "page header with single borough",
			text:      "NEW YORK CITY HOUSING AUTHORITY\nBROOKLYN\nBLOCK LOT ADDRESS",
			want:      "BROOKLYN",
			wantFound: true,
		},
		{
			name:      "borough embedded mid-line",
			text:      "DEVELOPMENTS IN QUEENS AS OF MARCH",
			want:      "QUEENS",
			wantFound: true,
		},
		{
			name:      "two-word borough",
			text:      "PROPERTY DIRECTORY STATEN ISLAND",
			want:      "STATEN ISLAND",
			wantFound: true,
		},
		{
			name:      "no borough name",
			text:      "TABLE OF CONTENTS\nINTRODUCTION",
			want:      "",
			wantFound: false,
		},
		{
			name:      "empty page",
			text:      "",
			want:      "",
			wantFound: false,
		},
		{
			name:      "two boroughs present, first enumerated wins",
			text:      "MANHATTAN AND BRONX JOINT LISTING",
			want:      "BRONX",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Detect(tt.text)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("Detect() = (%q, %v), want (%q, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestDetectTotalOverEnumeration(t *testing.T) {
	for _, name := range Names {
		got, found := Detect("SOME PAGE TEXT " + name + " MORE TEXT")
		if !found || got != name {
			t.Errorf("Detect() failed to recognize %q: got (%q, %v)", name, got, found)
		}
	}
}
