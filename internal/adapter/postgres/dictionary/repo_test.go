package dictionary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	postgres "github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func makeRecord(word string, lang domain.Language, bulu string) domain.TranslationRecord {
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
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

func recordArgs(rec domain.TranslationRecord) []any {
	return []any{
		pgxmock.AnyArg(),
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
	}
}

func TestRepo_BulkInsert(t *testing.T) {
	t.Parallel()

	records := []domain.TranslationRecord{
		makeRecord("bonjour", domain.LanguageFrench, "mbolo"),
		makeRecord("hello", domain.LanguageEnglish, "mbolo"),
	}
	args := append(recordArgs(records[0]), recordArgs(records[1])...)

	tests := []struct {
		name    string
		records []domain.TranslationRecord
		setup   func(mock pgxmock.PgxPoolIface)
		want    int
		wantErr error
	}{
		{
			name:    "inserts all records in one statement",
			records: records,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO dictionary \(id,original_word,.*,updated_at\) VALUES \(\$1,.*\$12\),\(\$13,.*\$24\)`).
					WithArgs(args...).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
			want: 2,
		},
		{
			name:    "empty input skips the query",
			records: nil,
			setup:   func(mock pgxmock.PgxPoolIface) {},
			want:    0,
		},
		{
			name:    "check violation maps to validation error",
			records: records[:1],
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO dictionary`).
					WithArgs(recordArgs(records[0])...).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := newMock(t)
			tt.setup(mock)

			got, err := New(mock).BulkInsert(context.Background(), tt.records)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("BulkInsert() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("BulkInsert() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BulkInsert() = %d, want %d", got, tt.want)
			}
			expectationsWereMet(t, mock)
		})
	}
}

func TestRepo_BulkInsert_UsesTransactionFromContext(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	rec := makeRecord("chat", domain.LanguageFrench, "nyo")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO dictionary`).
		WithArgs(recordArgs(rec)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := New(mock)
	err := postgres.NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
		n, err := repo.BulkInsert(ctx, []domain.TranslationRecord{rec})
		if err != nil {
			return err
		}
		if n != 1 {
			t.Errorf("BulkInsert() = %d, want 1", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}
	expectationsWereMet(t, mock)
}

func TestRepo_CountByLanguage(t *testing.T) {
	t.Parallel()

	t.Run("returns counts per language", func(t *testing.T) {
		t.Parallel()
		mock := newMock(t)
		rows := pgxmock.NewRows([]string{"original_language", "count"}).
			AddRow("english", 3).
			AddRow("french", 5)
		mock.ExpectQuery(`SELECT original_language, count\(\*\) AS count FROM dictionary GROUP BY original_language`).
			WillReturnRows(rows)

		got, err := New(mock).CountByLanguage(context.Background())
		if err != nil {
			t.Fatalf("CountByLanguage: %v", err)
		}
		if got[domain.LanguageFrench] != 5 || got[domain.LanguageEnglish] != 3 {
			t.Errorf("CountByLanguage() = %v", got)
		}
		expectationsWereMet(t, mock)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		mock := newMock(t)
		mock.ExpectQuery(`SELECT`).
			WillReturnRows(pgxmock.NewRows([]string{"original_language", "count"}))

		got, err := New(mock).CountByLanguage(context.Background())
		if err != nil {
			t.Fatalf("CountByLanguage: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("CountByLanguage() = %v, want empty", got)
		}
		expectationsWereMet(t, mock)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		mock := newMock(t)
		mock.ExpectQuery(`SELECT`).WillReturnError(context.DeadlineExceeded)

		_, err := New(mock).CountByLanguage(context.Background())
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("CountByLanguage() error = %v, want DeadlineExceeded", err)
		}
		expectationsWereMet(t, mock)
	})
}
