package extractor

import (
	"strings"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// placeholderMarker identifies columns the loader named for blank headers.
const placeholderMarker = "Unnamed"

// Clean drops placeholder columns, then rows whose remaining cells are all
// empty. The result is a new, contiguous Table; t is not modified.
func Clean(t *domain.Table) *domain.Table {
	keep := make([]int, 0, len(t.Columns))
	columns := make([]string, 0, len(t.Columns))
	for i, c := range t.Columns {
		if isPlaceholderColumn(c) {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, c)
	}

	cleaned := &domain.Table{
		Columns: columns,
		Rows:    make([]domain.Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		projected := make(domain.Row, len(keep))
		for j, i := range keep {
			projected[j] = row.Get(i)
		}
		if projected.IsEmpty() {
			continue
		}
		cleaned.Rows = append(cleaned.Rows, projected)
	}

	return cleaned
}

func isPlaceholderColumn(name string) bool {
	return strings.Contains(name, placeholderMarker)
}
