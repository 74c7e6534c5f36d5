package models

// OperationKind tags a single annotation write.
type OperationKind string

const (
	// OpNew creates an annotation on a cell that had none.
	OpNew OperationKind = "new"
	// OpOverwrite replaces an existing annotation.
	OpOverwrite OperationKind = "overwrite"
	// OpMerge appends the incoming text to an existing annotation.
	OpMerge OperationKind = "merge"
)

// SyncOperation records one (name, column) pair written to the target.
type SyncOperation struct {
	Kind    OperationKind `json:"kind"`
	Name    string        `json:"name"`
	Column  string        `json:"column"`
	CellRef string        `json:"cell"`
	// Annotation is the annotation now on the target cell.
	Annotation Annotation `json:"annotation"`
}

// MergeDetail carries truncated before/after text for a merge.
type MergeDetail struct {
	Name     string `json:"name"`
	Column   string `json:"column"`
	CellRef  string `json:"cell"`
	Original string `json:"original"`
	Incoming string `json:"incoming"`
}

// Counts aggregates a sync run.
type Counts struct {
	// MatchedNames is the number of names in the index.
	MatchedNames int `json:"matched_names"`
	// Updated is the number of cells written (new, overwrite and merge).
	Updated int `json:"updated"`
	// Merged is the subset of Updated that were merges.
	Merged int `json:"merged"`
}

// NewOrOverwritten returns the number of new and overwrite writes combined.
func (c Counts) NewOrOverwritten() int {
	return c.Updated - c.Merged
}
