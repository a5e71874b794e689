// Command extract converts the French/English/Búlu dictionary spreadsheet
// into CSV, translation-record JSON and batched SQL insert statements.
//
// Flags:
//
//	--input       path to the .xlsx workbook (default: extract.input_path)
//	--output-dir  directory for the generated files (default: extract.output_dir)
//	--sheet       worksheet name (default: first sheet)
//
// Missing language columns are reported as a warning; the CSV files are
// still written. Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/bulu-dictionary/internal/adapter/spreadsheet"
	"github.com/heartmarshall/bulu-dictionary/internal/app"
	"github.com/heartmarshall/bulu-dictionary/internal/app/extractor"
)

// Compile-time interface assertion.
var _ extractor.TableLoader = (*spreadsheet.Loader)(nil)

func main() {
	inputFlag := flag.String("input", "", "path to the dictionary spreadsheet")
	outputDirFlag := flag.String("output-dir", "", "directory for generated files")
	sheetFlag := flag.String("sheet", "", "worksheet name (default: first sheet)")
	flag.Parse()

	cfg, logger, err := app.Setup("extract")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *inputFlag != "" {
		cfg.Extract.InputPath = *inputFlag
	}
	if *outputDirFlag != "" {
		cfg.Extract.OutputDir = *outputDirFlag
	}
	if *sheetFlag != "" {
		cfg.Extract.Sheet = *sheetFlag
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := extractor.NewPipeline(logger, spreadsheet.NewLoader(cfg.Extract.Sheet), cfg.Extract)
	res, err := pipeline.Run()
	if err != nil {
		logger.Error("extraction failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !res.Resolved {
		logger.Warn("finished without records: language columns not found",
			slog.Int("files", len(res.Files)),
		)
		return
	}

	logger.Info("extraction finished",
		slog.Int("rows", res.CleanedRows),
		slog.Int("records", res.Records),
		slog.Int("files", len(res.Files)),
	)
}
