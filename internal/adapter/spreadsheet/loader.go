// Package spreadsheet loads dictionary workbooks into domain tables.
// The first row of a sheet is the header; every following row is data.
package spreadsheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// unnamedPrefix labels columns with a blank header cell.
const unnamedPrefix = "Unnamed: "

// Loader reads one sheet of an xlsx workbook.
type Loader struct {
	sheet string
}

// NewLoader creates a Loader for the named sheet. An empty name selects the
// first sheet of the workbook.
func NewLoader(sheet string) *Loader {
	return &Loader{sheet: sheet}
}

// Load opens the workbook at path and converts the selected sheet into a Table.
func (l *Loader) Load(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s: %w", path, domain.ErrEmptyTable)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	table, err := buildTable(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return table, nil
}

// buildTable turns raw sheet rows into a rectangular Table.
func buildTable(raw [][]string) (*domain.Table, error) {
	if len(raw) == 0 {
		return nil, domain.ErrEmptyTable
	}

	width := 0
	for _, r := range raw {
		width = max(width, len(r))
	}

	table := &domain.Table{
		Columns: headerNames(raw[0], width),
		Rows:    make([]domain.Row, 0, len(raw)-1),
	}

	for _, r := range raw[1:] {
		row := make(domain.Row, width)
		copy(row, r)
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// headerNames names every column up to width. Blank cells become
// "Unnamed: <index>" and repeated names get a ".<n>" suffix.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]bool, width)

	for i := range width {
		base := ""
		if i < len(header) {
			base = header[i]
		}
		if base == "" {
			base = unnamedPrefix + strconv.Itoa(i)
		}

		name := base
		for n := 1; seen[name]; n++ {
			name = base + "." + strconv.Itoa(n)
		}
		seen[name] = true
		names[i] = name
	}

	return names
}
