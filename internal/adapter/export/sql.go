package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

const sqlHeader = "-- SQL Insert statements for Bulu dictionary\n\n"

// WriteSQL writes one multi-row INSERT statement per batchSize records into
// table. Values are inlined as SQL literals so the script runs without
// bind parameters; each statement ends with ";" and a blank line.
func WriteSQL(w io.Writer, table string, records []domain.TranslationRecord, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be > 0 (got %d)", batchSize)
	}

	if _, err := io.WriteString(w, sqlHeader); err != nil {
		return err
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		stmt, err := insertStatement(table, records[start:end])
		if err != nil {
			return fmt.Errorf("build batch %d: %w", start/batchSize+1, err)
		}
		if _, err := io.WriteString(w, stmt+";\n\n"); err != nil {
			return err
		}
	}
	return nil
}

func insertStatement(table string, batch []domain.TranslationRecord) (string, error) {
	q := sq.Insert(table).Columns(domain.RecordColumns...)
	for _, r := range batch {
		q = q.Values(
			quote(r.OriginalWord),
			quote(r.OriginalLanguage.String()),
			quote(r.Translation),
			quote(r.TranslationLanguage.String()),
			nullable(r.ExampleSentence),
			quote(r.Notes),
			quote(r.ContributorName),
			nullable(r.ContributorEmail),
			boolean(r.IsVerified),
			quote(Timestamp(r.CreatedAt)),
			quote(Timestamp(r.UpdatedAt)),
		)
	}

	stmt, _, err := q.ToSql()
	return stmt, err
}

// Timestamp formats t the way records carry it in JSON and SQL.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// quote renders s as a single-quoted SQL string literal, doubling inner quotes.
func quote(s string) sq.Sqlizer {
	return sq.Expr("'" + strings.ReplaceAll(s, "'", "''") + "'")
}

func nullable(s *string) sq.Sqlizer {
	if s == nil {
		return sq.Expr("NULL")
	}
	return quote(*s)
}

func boolean(b bool) sq.Sqlizer {
	if b {
		return sq.Expr("TRUE")
	}
	return sq.Expr("FALSE")
}
