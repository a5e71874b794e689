//go:build integration

package dictionary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

func record(word string, lang domain.Language, bulu string) domain.TranslationRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.TranslationRecord{
		OriginalWord:        word,
		OriginalLanguage:    lang,
		Translation:         bulu,
		TranslationLanguage: domain.LanguageBulu,
		Notes:               "Imported from dictionary spreadsheet",
		ContributorName:     "Dictionary Import",
		IsVerified:          true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// The tests share one table, so they run sequentially.

func TestRepo_BulkInsertAndCount(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateDictionary(t, pool)
	repo := dictionary.New(pool)
	ctx := context.Background()

	inserted, err := repo.BulkInsert(ctx, []domain.TranslationRecord{
		record("bonjour", domain.LanguageFrench, "mbolo"),
		record("chat", domain.LanguageFrench, "nyo"),
		record("hello", domain.LanguageEnglish, "mbolo"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	counts, err := repo.CountByLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Language]int{
		domain.LanguageFrench:  2,
		domain.LanguageEnglish: 1,
	}, counts)

	var notes string
	var email *string
	err = pool.QueryRow(ctx,
		`SELECT notes, contributor_email FROM dictionary WHERE original_word = $1`, "chat",
	).Scan(&notes, &email)
	require.NoError(t, err)
	assert.Equal(t, "Imported from dictionary spreadsheet", notes)
	assert.Nil(t, email)
}

func TestRepo_BulkInsert_RollsBackWithTransaction(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateDictionary(t, pool)
	repo := dictionary.New(pool)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()
	sentinel := errors.New("abort batch")

	err := txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.BulkInsert(ctx, []domain.TranslationRecord{
			record("maison", domain.LanguageFrench, "nda"),
		}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	counts, err := repo.CountByLanguage(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRepo_BulkInsert_CheckViolation(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := dictionary.New(pool)

	bad := record("haus", domain.Language("german"), "nda")
	_, err := repo.BulkInsert(context.Background(), []domain.TranslationRecord{bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
