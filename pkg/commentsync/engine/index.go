package engine

import "github.com/ukaji3/commentsync-go/pkg/commentsync/models"

// BuildIndex scans the source table and maps each accepted name to the
// annotations found in the sync columns of its row.
//
// Rows before the layout's start row, rows whose region the filter rejects
// and rows with an empty name are skipped. When a name appears on several
// accepted rows, a later row replaces earlier entries column by column.
func BuildIndex(source *models.Table, layout Layout, filter models.RegionFilter) *models.AnnotationIndex {
	index := models.NewAnnotationIndex(layout.Letters())

	for _, row := range source.Rows {
		if row.Number < layout.StartRow {
			continue
		}
		if !filter.Accepts(row.Value(layout.RegionCol)) {
			continue
		}
		name := row.Value(layout.NameCol)
		if name == "" {
			continue
		}

		index.Touch(name)
		for _, col := range layout.SyncColumns {
			if a := row.Cell(col.Index).Annotation; a != nil {
				index.Put(name, col.Letter, *a)
			}
		}
	}

	return index
}
