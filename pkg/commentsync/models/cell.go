// Package models defines data structures for annotation synchronization.
package models

// Annotation is a comment attached to a cell, distinct from the cell value.
type Annotation struct {
	// Text is the full comment text.
	Text string `json:"text"`
	// Author is the comment author ("" when absent).
	Author string `json:"author,omitempty"`
}

// Cell holds a cell value and its optional annotation.
type Cell struct {
	// Value is the formatted cell value ("" when empty).
	Value string `json:"value,omitempty"`
	// Annotation is the attached comment, nil when the cell has none.
	Annotation *Annotation `json:"annotation,omitempty"`
}

// HasAnnotation reports whether the cell carries an annotation.
func (c Cell) HasAnnotation() bool {
	return c.Annotation != nil
}

// Row represents a single sheet row.
type Row struct {
	// Number is the row index (1-based).
	Number int `json:"r"`
	// Cells is indexed by 0-based column index.
	Cells []Cell `json:"c,omitempty"`
}

// Cell returns the cell at the 0-based column index.
// Columns beyond the stored cells read as empty.
func (r Row) Cell(col int) Cell {
	if col < 0 || col >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[col]
}

// Value returns the value at the 0-based column index.
func (r Row) Value(col int) string {
	return r.Cell(col).Value
}

// SetAnnotation replaces the annotation at the 0-based column index,
// growing the row as needed.
func (r *Row) SetAnnotation(col int, a Annotation) {
	if col < 0 {
		return
	}
	for len(r.Cells) <= col {
		r.Cells = append(r.Cells, Cell{})
	}
	r.Cells[col].Annotation = &a
}
