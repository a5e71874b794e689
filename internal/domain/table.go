package domain

// Row is one spreadsheet data row, aligned with Table.Columns.
// An empty string stands for an empty or null cell.
type Row []string

// Get returns the cell at index i, or "" when the row is shorter.
func (r Row) Get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsEmpty reports whether every cell in the row is empty.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// Table is an in-memory sheet: a header and rows sharing that column set.
// Transformations return new tables and never modify the receiver.
type Table struct {
	Columns []string
	Rows    []Row
}

// Shape returns the row and column counts.
func (t *Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell of row i in the named column, or "" if either is missing.
func (t *Table) Value(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i].Get(t.ColumnIndex(column))
}

// Record returns row i as a column→value map.
func (t *Table) Record(i int) map[string]string {
	m := make(map[string]string, len(t.Columns))
	for j, c := range t.Columns {
		m[c] = t.Rows[i].Get(j)
	}
	return m
}

// EmptyCounts returns the number of empty cells per column, in column order.
func (t *Table) EmptyCounts() []int {
	counts := make([]int, len(t.Columns))
	for _, row := range t.Rows {
		for j := range t.Columns {
			if row.Get(j) == "" {
				counts[j]++
			}
		}
	}
	return counts
}
