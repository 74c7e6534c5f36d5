package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/xuri/excelize/v2"
)

// WriteAnnotations copies the annotations at the given cell references
// from table into the sheet, replacing any comment already there.
// Cells not listed are left untouched.
func WriteAnnotations(f *excelize.File, table *models.Table, refs []string) error {
	for _, ref := range refs {
		col, rowNum, err := parseCellRef(ref)
		if err != nil {
			return fmt.Errorf("invalid cell reference %q: %w", ref, err)
		}
		row, ok := table.Row(rowNum)
		if !ok {
			return fmt.Errorf("cell %s outside table", ref)
		}
		a := row.Cell(col).Annotation
		if err := f.DeleteComment(table.Sheet, ref); err != nil {
			return fmt.Errorf("delete comment %s: %w", ref, err)
		}
		if a == nil {
			continue
		}
		if err := f.AddComment(table.Sheet, excelize.Comment{
			Cell:   ref,
			Author: a.Author,
			Text:   a.Text,
		}); err != nil {
			return fmt.Errorf("add comment %s: %w", ref, err)
		}
	}
	return nil
}

// SaveAtomic writes the workbook to path through a temporary file in the
// same directory, then renames it into place. On failure the temporary
// file is removed and any existing file at path is left as it was.
func SaveAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
