package borough

import "strings"

// Names is the fixed borough enumeration. Order matters: when a page's text
// contains more than one borough name, Detect returns the first one listed
// here.
var Names = []string{
	"BRONX",
	"BROOKLYN",
	"MANHATTAN",
	"QUEENS",
	"STATEN ISLAND",
}

// Detect scans page text for a borough name and returns the first match.
// The second return is false when no borough name appears.
func Detect(pageText string) (string, bool) {
	for _, name := range Names {
		if strings.Contains(pageText, name) {
			return name, true
		}
	}
	return "", false
}
