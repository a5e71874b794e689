// Command convert saves the first worksheet of the dictionary spreadsheet
// as bulu_dictionary.csv without any cleaning.
//
// Flags:
//
//	--input       path to the .xlsx workbook (default: extract.input_path)
//	--output-dir  directory for the CSV file (default: extract.output_dir)
//	--sheet       worksheet name (default: first sheet)
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

func main() {
	inputFlag := flag.String("input", "", "path to the dictionary spreadsheet")
	outputDirFlag := flag.String("output-dir", "", "directory for the CSV file")
	sheetFlag := flag.String("sheet", "", "worksheet name (default: first sheet)")
	flag.Parse()

	cfg, logger, err := app.Setup("convert")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

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
	if _, err := pipeline.Convert(); err != nil {
		logger.Error("conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
