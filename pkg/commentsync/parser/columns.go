// Package parser reads and writes worksheet cells and comments.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnIndex converts a column letter (A, B, ..., AA, ...) to a 0-based index.
func ColumnIndex(letter string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(letter))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// NormalizeColumn validates a column letter and returns it upper-cased.
func NormalizeColumn(letter string) (string, error) {
	idx, err := ColumnIndex(letter)
	if err != nil {
		return "", err
	}
	return excelize.ColumnNumberToName(idx + 1)
}

// CellRef joins a column letter and a 1-based row number, e.g. ("DO", 5) -> "DO5".
func CellRef(column string, row int) string {
	ref, err := excelize.JoinCellName(strings.TrimSpace(column), row)
	if err != nil {
		return fmt.Sprintf("%s%d", column, row)
	}
	return ref
}

// parseCellRef splits a cell reference like $DO$5 into a 0-based column
// index and a 1-based row number.
func parseCellRef(ref string) (col, row int, err error) {
	ref = strings.ReplaceAll(ref, "$", "")

	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, err
	}
	return c - 1, r, nil
}
