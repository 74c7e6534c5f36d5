package engine

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/models"
	"github.com/ukaji3/commentsync-go/pkg/commentsync/parser"
)

// MergePolicy decides what happens when a target cell is already annotated.
type MergePolicy struct {
	// Enabled appends incoming text to existing annotations instead of replacing them.
	Enabled bool
	// Separator is placed between the existing and the incoming text.
	Separator string
	// TruncateLength bounds the text snapshots kept in merge details.
	TruncateLength int
}

// Result is the outcome of applying an index to a target table.
type Result struct {
	// Table is the new target state; the input table is not modified.
	Table models.Table
	// Operations lists every write in row-then-column order.
	Operations []models.SyncOperation
	// Merges lists the merge writes only, in the same order.
	Merges []models.MergeDetail
	Counts models.Counts
}

// CellRefs returns the references of every written cell.
func (r *Result) CellRefs() []string {
	refs := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		refs[i] = op.CellRef
	}
	return refs
}

// ApplySync writes the indexed annotations into a copy of the target table.
//
// For each row at or after the start row whose name is indexed, every
// indexed column of that name is written: merged into an existing
// annotation when the policy allows it, otherwise copied over it.
func ApplySync(target *models.Table, index *models.AnnotationIndex, layout Layout, policy MergePolicy) (*Result, error) {
	res := &Result{}
	if err := deepcopy.Copy(&res.Table, target); err != nil {
		return nil, fmt.Errorf("copy target table: %w", err)
	}
	res.Counts.MatchedNames = index.Len()

	for i := range res.Table.Rows {
		row := &res.Table.Rows[i]
		if row.Number < layout.StartRow {
			continue
		}
		name := row.Value(layout.NameCol)
		if !index.Has(name) {
			continue
		}

		for _, letter := range index.Columns(name) {
			col, ok := layout.columnIndex(letter)
			if !ok {
				return nil, fmt.Errorf("column %s is not a sync column", letter)
			}
			incoming, _ := index.Get(name, letter)
			ref := parser.CellRef(letter, row.Number)
			existing := row.Cell(col).Annotation

			var (
				next models.Annotation
				kind models.OperationKind
			)
			switch {
			case existing != nil && policy.Enabled:
				next = models.Annotation{
					Text:   existing.Text + policy.Separator + incoming.Text,
					Author: existing.Author,
				}
				if next.Author == "" {
					next.Author = incoming.Author
				}
				kind = models.OpMerge
				res.Counts.Merged++
				res.Merges = append(res.Merges, models.MergeDetail{
					Name:     name,
					Column:   letter,
					CellRef:  ref,
					Original: Truncate(existing.Text, policy.TruncateLength),
					Incoming: Truncate(incoming.Text, policy.TruncateLength),
				})
			case existing != nil:
				next = incoming
				kind = models.OpOverwrite
			default:
				next = incoming
				kind = models.OpNew
			}

			row.SetAnnotation(col, next)
			res.Counts.Updated++
			res.Operations = append(res.Operations, models.SyncOperation{
				Kind:       kind,
				Name:       name,
				Column:     letter,
				CellRef:    ref,
				Annotation: next,
			})
		}
	}

	return res, nil
}
