// Package reconcile computes the one-sided differences between two property
// relations joined on a shared key column.
package reconcile

import (
	"fmt"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/dataset"
)

// Diff holds the rows present on only one side of the comparison. Each side
// keeps its own schema in full.
type Diff struct {
	Key     string
	OnlyInA dataset.Relation
	OnlyInB dataset.Relation
}

// Compare joins two relations on literal, case-sensitive equality of the key
// column and returns the rows whose key is missing from the other side.
// Duplicate keys within one relation are all reported when the key is absent
// from the other; they are not separately diagnosed.
func Compare(a, b dataset.Relation, key string) (*Diff, error) {
	aIdx := a.ColumnIndex(key)
	if aIdx < 0 {
		return nil, fmt.Errorf("first relation has no column %q", key)
	}
	bIdx := b.ColumnIndex(key)
	if bIdx < 0 {
		return nil, fmt.Errorf("second relation has no column %q", key)
	}

	aKeys := keySet(a.Rows, aIdx)
	bKeys := keySet(b.Rows, bIdx)

	diff := &Diff{
		Key:     key,
		OnlyInA: dataset.Relation{Header: a.Header},
		OnlyInB: dataset.Relation{Header: b.Header},
	}
	for _, row := range a.Rows {
		if _, ok := bKeys[keyValue(row, aIdx)]; !ok {
			diff.OnlyInA.Rows = append(diff.OnlyInA.Rows, row)
		}
	}
	for _, row := range b.Rows {
		if _, ok := aKeys[keyValue(row, bIdx)]; !ok {
			diff.OnlyInB.Rows = append(diff.OnlyInB.Rows, row)
		}
	}
	return diff, nil
}

func keySet(rows [][]string, idx int) map[string]struct{} {
	keys := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		keys[keyValue(row, idx)] = struct{}{}
	}
	return keys
}

// keyValue treats a missing trailing cell as the empty string, matching how
// short rows read from flat files behave.
func keyValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
