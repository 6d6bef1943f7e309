package quaycheck

// Table is one extracted page grid. Columns holds the detected header
// labels left-to-right; every row in Rows has exactly len(Columns) cells,
// aligned positionally with Columns. A page may repeat a header label, so
// Columns is a slice rather than a set.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the cell values of the first column with the given label,
// top to bottom. ok is false when no column carries the label.
func (t Table) Column(label string) (values []string, ok bool) {
	idx := t.ColumnIndex(label)
	if idx < 0 {
		return nil, false
	}
	values = make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// ColumnIndex returns the index of the first column with the given label,
// or -1. First occurrence wins when a label repeats.
func (t Table) ColumnIndex(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Section is a named lookup criterion for matching. Number is matched as a
// substring of the operator-code column; Date is carried through to the
// caller but does not participate in matching.
type Section struct {
	Number string `json:"number"`
	Date   string `json:"date"`
}

// SectionResult is the per-section match report returned to the client.
type SectionResult struct {
	Result string `json:"result"`
}
