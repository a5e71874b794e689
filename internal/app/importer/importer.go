package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/heartmarshall/bulu-dictionary/internal/adapter/export"
	"github.com/heartmarshall/bulu-dictionary/internal/config"
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
	"github.com/heartmarshall/bulu-dictionary/pkg/ctxutil"
)

// Result holds the outcome of an import run.
type Result struct {
	Total    int
	Skipped  int
	Batches  int
	Inserted int
	Counts   map[domain.Language]int
	Duration time.Duration
}

// Importer inserts records in batches, one transaction per batch, and stops
// at the first failed batch.
type Importer struct {
	log   *slog.Logger
	repo  DictionaryRepo
	tx    TxRunner
	cfg   config.ImportConfig
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a new Importer.
func New(log *slog.Logger, repo DictionaryRepo, tx TxRunner, cfg config.ImportConfig) *Importer {
	return &Importer{
		log:   log,
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		sleep: sleepCtx,
	}
}

// LoadRecords reads a JSON record array and validates every record.
func LoadRecords(path string) ([]domain.TranslationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	records, err := export.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}

// Run imports records[cfg.StartIndex:]. In dry-run mode batches are only
// counted and logged.
func (im *Importer) Run(ctx context.Context, records []domain.TranslationRecord) (Result, error) {
	start := time.Now()
	res := Result{Total: len(records), Skipped: min(im.cfg.StartIndex, len(records))}

	log := im.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}

	pending := records[res.Skipped:]
	log.Info("starting import",
		slog.Int("total", res.Total),
		slog.Int("start_index", im.cfg.StartIndex),
		slog.Int("pending", len(pending)),
		slog.Int("batch_size", im.cfg.BatchSize),
		slog.Bool("dry_run", im.cfg.DryRun),
	)
	if len(pending) == 0 {
		log.Warn("nothing to import")
		res.Duration = time.Since(start)
		return res, nil
	}

	offset := res.Skipped
	for batch := range slices.Chunk(pending, im.cfg.BatchSize) {
		if res.Batches > 0 && !im.cfg.DryRun {
			if err := im.sleep(ctx, im.cfg.BatchDelay); err != nil {
				return im.finish(res, start), fmt.Errorf("wait before batch %d: %w", res.Batches+1, err)
			}
		}
		res.Batches++
		first, last := offset, offset+len(batch)-1

		if im.cfg.DryRun {
			log.Info("dry run: batch not written",
				slog.Int("batch", res.Batches),
				slog.Int("first", first),
				slog.Int("last", last),
			)
			offset += len(batch)
			continue
		}

		var inserted int
		err := im.tx.RunInTx(ctx, func(ctx context.Context) error {
			n, err := im.repo.BulkInsert(ctx, batch)
			inserted = n
			return err
		})
		if err != nil {
			log.Error("batch failed, stopping import",
				slog.Int("batch", res.Batches),
				slog.Int("first", first),
				slog.Int("last", last),
				slog.Int("resume_index", first),
				slog.String("error", err.Error()),
			)
			return im.finish(res, start), fmt.Errorf("batch %d (records %d-%d): %w", res.Batches, first, last, err)
		}

		res.Inserted += inserted
		offset += len(batch)
		log.Info("batch imported",
			slog.Int("batch", res.Batches),
			slog.Int("first", first),
			slog.Int("last", last),
			slog.Int("inserted", inserted),
		)
	}

	if !im.cfg.DryRun {
		counts, err := im.repo.CountByLanguage(ctx)
		if err != nil {
			return im.finish(res, start), fmt.Errorf("count by language: %w", err)
		}
		res.Counts = counts
		for _, lang := range domain.SourceLanguages {
			log.Info("dictionary rows", slog.String("language", lang.String()), slog.Int("count", counts[lang]))
		}
	}

	res = im.finish(res, start)
	log.Info("import completed",
		slog.Int("batches", res.Batches),
		slog.Int("inserted", res.Inserted),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (im *Importer) finish(res Result, start time.Time) Result {
	res.Duration = time.Since(start)
	return res
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
