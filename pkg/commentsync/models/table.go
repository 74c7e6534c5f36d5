package models

// Table represents the active sheet of a workbook.
type Table struct {
	// Sheet is the sheet name the rows were read from.
	Sheet string `json:"sheet"`
	// Rows holds every row from 1 to the last row carrying a value or an annotation.
	Rows []Row `json:"rows,omitempty"`
}

// Row returns the row with the given 1-based number and whether it exists.
func (t *Table) Row(number int) (*Row, bool) {
	if number < 1 || number > len(t.Rows) {
		return nil, false
	}
	return &t.Rows[number-1], true
}

// AnnotationCount returns the number of annotated cells in the table.
func (t *Table) AnnotationCount() int {
	n := 0
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			if c.HasAnnotation() {
				n++
			}
		}
	}
	return n
}
