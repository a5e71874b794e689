// Command import loads extracted translation records into the PostgreSQL
// dictionary table in batches, one transaction per batch.
//
// Flags:
//
//	--input        JSON record file (default: import.input_path)
//	--start-index  index of the first record to import (default: import.start_index)
//	--dry-run      parse and batch records without connecting to the database
//	--migrate      apply embedded migrations before importing
//
// The import stops at the first failed batch; the log names the index to
// resume from. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/bulu-dictionary/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/bulu-dictionary/internal/app"
	"github.com/heartmarshall/bulu-dictionary/internal/app/importer"
	"github.com/heartmarshall/bulu-dictionary/pkg/ctxutil"
)

// Compile-time interface assertions.
var (
	_ importer.DictionaryRepo = (*dictionary.Repo)(nil)
	_ importer.TxRunner       = (*postgres.TxManager)(nil)
)

func main() {
	inputFlag := flag.String("input", "", "JSON record file to import")
	startIndexFlag := flag.Int("start-index", -1, "index of the first record to import")
	dryRunFlag := flag.Bool("dry-run", false, "parse and batch records without writing to DB")
	migrateFlag := flag.Bool("migrate", false, "apply migrations before importing")
	flag.Parse()

	cfg, logger, err := app.Setup("import")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *inputFlag != "" {
		cfg.Import.InputPath = *inputFlag
	}
	if *startIndexFlag >= 0 {
		cfg.Import.StartIndex = *startIndexFlag
	}
	if *dryRunFlag {
		cfg.Import.DryRun = true
	}
	if *migrateFlag {
		cfg.Import.Migrate = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	records, err := importer.LoadRecords(cfg.Import.InputPath)
	if err != nil {
		logger.Error("load records", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("records loaded", slog.String("file", cfg.Import.InputPath), slog.Int("count", len(records)))

	// 30-minute context timeout, cancelled early on interrupt.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.New())

	if cfg.Import.DryRun {
		if _, err := importer.New(logger, nil, nil, cfg.Import).Run(ctx, records); err != nil {
			logger.Error("dry run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	// Connect to DB.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Import.Migrate {
		applied, err := postgres.Migrate(ctx, pool, logger)
		if err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	im := importer.New(logger, dictionary.New(pool), postgres.NewTxManager(pool), cfg.Import)
	if _, err := im.Run(ctx, records); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
