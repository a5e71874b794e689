// Package importer loads extracted translation records into the dictionary table.
package importer

import (
	"context"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// DictionaryRepo is the storage contract consumed by the importer.
// Implemented by dictionary.Repo.
type DictionaryRepo interface {
	BulkInsert(ctx context.Context, records []domain.TranslationRecord) (int, error)
	CountByLanguage(ctx context.Context) (map[domain.Language]int, error)
}

// TxRunner runs fn in a transaction carried by ctx.
// Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
