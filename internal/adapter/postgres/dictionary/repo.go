// Package dictionary stores translation records in the dictionary table.
package dictionary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

const tableName = "dictionary"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dictionary repository. db is usually a *pgxpool.Pool;
// inside TxManager.RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// BulkInsert inserts records with a single multi-row INSERT and fresh ids.
// Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.TranslationRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	columns := append([]string{"id"}, domain.RecordColumns...)
	builder := psql.Insert(tableName).Columns(columns...)
	for _, rec := range records {
		builder = builder.Values(
			uuid.New(),
			rec.OriginalWord,
			string(rec.OriginalLanguage),
			rec.Translation,
			string(rec.TranslationLanguage),
			rec.ExampleSentence,
			rec.Notes,
			rec.ContributorName,
			rec.ContributorEmail,
			rec.IsVerified,
			rec.CreatedAt,
			rec.UpdatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, tableName)
	}

	return int(tag.RowsAffected()), nil
}

type languageCount struct {
	Language string `db:"original_language"`
	Count    int    `db:"count"`
}

// CountByLanguage returns the number of stored records per source language.
func (r *Repo) CountByLanguage(ctx context.Context) (map[domain.Language]int, error) {
	query, args, err := psql.
		Select("original_language", "count(*) AS count").
		From(tableName).
		GroupBy("original_language").
		OrderBy("original_language").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count: %w", err)
	}

	var rows []languageCount
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, tableName)
	}

	counts := make(map[domain.Language]int, len(rows))
	for _, row := range rows {
		counts[domain.Language(row.Language)] = row.Count
	}
	return counts, nil
}
