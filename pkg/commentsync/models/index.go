package models

// AnnotationIndex maps person name to column letter to annotation.
// It is built once from the source table and only read afterwards.
type AnnotationIndex struct {
	columns []string
	names   []string
	entries map[string]map[string]Annotation
}

// NewAnnotationIndex creates an empty index over the given column letters.
// The column order is the iteration order used by Columns and Each.
func NewAnnotationIndex(columns []string) *AnnotationIndex {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &AnnotationIndex{
		columns: cols,
		entries: make(map[string]map[string]Annotation),
	}
}

// Touch registers name with an empty column map if it is not present yet.
func (x *AnnotationIndex) Touch(name string) {
	if _, ok := x.entries[name]; ok {
		return
	}
	x.entries[name] = make(map[string]Annotation)
	x.names = append(x.names, name)
}

// Put records an annotation for (name, column), replacing any earlier entry.
func (x *AnnotationIndex) Put(name, column string, a Annotation) {
	x.Touch(name)
	x.entries[name][column] = a
}

// Has reports whether name is present in the index.
func (x *AnnotationIndex) Has(name string) bool {
	_, ok := x.entries[name]
	return ok
}

// Get returns the annotation recorded for (name, column).
func (x *AnnotationIndex) Get(name, column string) (Annotation, bool) {
	a, ok := x.entries[name][column]
	return a, ok
}

// Columns returns the annotated columns for name in declared order.
func (x *AnnotationIndex) Columns(name string) []string {
	entry, ok := x.entries[name]
	if !ok {
		return nil
	}
	var out []string
	for _, col := range x.columns {
		if _, ok := entry[col]; ok {
			out = append(out, col)
		}
	}
	return out
}

// Names returns the indexed names in first-seen order.
func (x *AnnotationIndex) Names() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Len returns the number of indexed names.
func (x *AnnotationIndex) Len() int {
	return len(x.entries)
}

// Size returns the number of (name, column) pairs.
func (x *AnnotationIndex) Size() int {
	n := 0
	for _, entry := range x.entries {
		n += len(entry)
	}
	return n
}
