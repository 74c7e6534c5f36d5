// Package engine builds the annotation index from a source table and
// applies it to a target table.
package engine

import (
	"fmt"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/parser"
)

// Column is a sync column resolved to its 0-based index.
type Column struct {
	Letter string
	Index  int
}

// Layout describes where the engine reads from in both tables.
type Layout struct {
	RegionCol   int
	NameCol     int
	SyncColumns []Column
	// StartRow is the first 1-based row considered; earlier rows are headers.
	StartRow int
}

// NewLayout resolves column letters once so the passes never re-parse them.
func NewLayout(regionCol, nameCol string, syncColumns []string, startRow int) (Layout, error) {
	region, err := parser.ColumnIndex(regionCol)
	if err != nil {
		return Layout{}, fmt.Errorf("region column %q: %w", regionCol, err)
	}
	name, err := parser.ColumnIndex(nameCol)
	if err != nil {
		return Layout{}, fmt.Errorf("name column %q: %w", nameCol, err)
	}
	if startRow < 1 {
		return Layout{}, fmt.Errorf("start row must be positive, got %d", startRow)
	}

	l := Layout{RegionCol: region, NameCol: name, StartRow: startRow}
	for _, letter := range syncColumns {
		idx, err := parser.ColumnIndex(letter)
		if err != nil {
			return Layout{}, fmt.Errorf("sync column %q: %w", letter, err)
		}
		l.SyncColumns = append(l.SyncColumns, Column{Letter: letter, Index: idx})
	}
	return l, nil
}

// Letters returns the sync column letters in declared order.
func (l Layout) Letters() []string {
	out := make([]string, len(l.SyncColumns))
	for i, c := range l.SyncColumns {
		out[i] = c.Letter
	}
	return out
}

func (l Layout) columnIndex(letter string) (int, bool) {
	for _, c := range l.SyncColumns {
		if c.Letter == letter {
			return c.Index, true
		}
	}
	return 0, false
}
