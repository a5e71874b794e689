package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// WriteCSV writes the header and every row of t. Fields containing the
// delimiter, quotes or newlines are quoted.
func WriteCSV(w io.Writer, t *domain.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j := range record {
			record[j] = row.Get(j)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
