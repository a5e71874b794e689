package extractor

import (
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// ExtractRecords pairs each source language column with the Bulu column.
// French records for all rows come first, then English records, each in
// row order. Rows missing either side of a pair are skipped for that pair.
func ExtractRecords(t *domain.Table, cols Columns, p domain.Provenance) []domain.TranslationRecord {
	var records []domain.TranslationRecord

	buluIdx := t.ColumnIndex(cols.Bulu)
	for _, lang := range domain.SourceLanguages {
		srcIdx := t.ColumnIndex(cols.For(lang))
		if srcIdx < 0 || buluIdx < 0 {
			continue
		}
		for _, row := range t.Rows {
			rec, ok := domain.NewTranslationRecord(row.Get(srcIdx), lang, row.Get(buluIdx), p)
			if !ok {
				continue
			}
			records = append(records, rec)
		}
	}

	return records
}

// Sample returns the first n records, or all of them when there are fewer.
func Sample(records []domain.TranslationRecord, n int) []domain.TranslationRecord {
	return records[:max(0, min(n, len(records)))]
}
