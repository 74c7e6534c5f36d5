package parser

import (
	"fmt"

	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/xuri/excelize/v2"
)

// ActiveSheet returns the name of the workbook's active sheet.
func ActiveSheet(f *excelize.File) string {
	name := f.GetSheetName(f.GetActiveSheetIndex())
	if name == "" {
		if list := f.GetSheetList(); len(list) > 0 {
			name = list[0]
		}
	}
	return name
}

// ExtractTable reads cell values and annotations from a sheet.
// Rows run from 1 to the last row holding either a value or an annotation.
func ExtractTable(f *excelize.File, sheetName string) (models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	comments, err := f.GetComments(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	table := models.Table{Sheet: sheetName, Rows: make([]models.Row, len(rows))}
	for rowIdx, values := range rows {
		row := models.Row{Number: rowIdx + 1}
		if len(values) > 0 {
			row.Cells = make([]models.Cell, len(values))
			for colIdx, v := range values {
				row.Cells[colIdx].Value = v
			}
		}
		table.Rows[rowIdx] = row
	}

	for _, c := range comments {
		col, rowNum, err := parseCellRef(c.Cell)
		if err != nil {
			return models.Table{}, fmt.Errorf("comment reference %q: %w", c.Cell, err)
		}
		for len(table.Rows) < rowNum {
			table.Rows = append(table.Rows, models.Row{Number: len(table.Rows) + 1})
		}
		table.Rows[rowNum-1].SetAnnotation(col, annotationFromComment(c))
	}

	return table, nil
}

// annotationFromComment flattens a comment into plain text.
// Rich-text runs are concatenated in order after any plain text.
func annotationFromComment(c excelize.Comment) models.Annotation {
	text := c.Text
	for _, run := range c.Paragraph {
		text += run.Text
	}
	return models.Annotation{Text: text, Author: c.Author}
}
