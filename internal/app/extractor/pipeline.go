// Package extractor turns a dictionary spreadsheet into cleaned tables and
// French/English→Bulu translation records, and writes them to disk.
package extractor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/bulu-dictionary/internal/adapter/export"
	"github.com/heartmarshall/bulu-dictionary/internal/config"
	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// Output file names, relative to the configured output directory.
const (
	RawCSVFile     = "bulu_dictionary.csv"
	CleanedCSVFile = "bulu_dictionary_cleaned.csv"
	EntriesFile    = "bulu_dictionary_entries.json"
	InsertSQLFile  = "bulu_dictionary_insert.sql"
	SampleFile     = "bulu_dictionary_small_batch.json"
)

// previewRows is how many rows are logged at debug level after loading.
const previewRows = 5

// TableLoader reads the source spreadsheet. Implemented by spreadsheet.Loader.
type TableLoader interface {
	Load(path string) (*domain.Table, error)
}

// Result summarizes one pipeline run.
type Result struct {
	RawRows     int
	CleanedRows int
	Columns     Columns
	Resolved    bool
	Records     int
	Sampled     int
	Files       []string
	Duration    time.Duration
}

// Pipeline runs load → clean → resolve → extract → write.
type Pipeline struct {
	log    *slog.Logger
	loader TableLoader
	cfg    config.ExtractConfig
	now    func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, loader TableLoader, cfg config.ExtractConfig) *Pipeline {
	return &Pipeline{
		log:    log,
		loader: loader,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Convert loads the spreadsheet and writes it unchanged as CSV.
func (p *Pipeline) Convert() (Result, error) {
	start := time.Now()

	table, err := p.load()
	if err != nil {
		return Result{}, err
	}

	res := Result{RawRows: len(table.Rows)}
	if err := p.write(&res, RawCSVFile, func(w io.Writer) error {
		return export.WriteCSV(w, table)
	}); err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	p.log.Info("conversion completed", slog.Int("rows", res.RawRows), slog.Duration("duration", res.Duration))
	return res, nil
}

// Run executes the full extraction. Unresolved language columns are not an
// error: the CSV files are written and extraction is skipped with a warning.
func (p *Pipeline) Run() (Result, error) {
	start := time.Now()

	// Step 1: Load. Nothing is written if this fails.
	table, err := p.load()
	if err != nil {
		return Result{}, err
	}

	res := Result{RawRows: len(table.Rows)}
	if err := p.write(&res, RawCSVFile, func(w io.Writer) error {
		return export.WriteCSV(w, table)
	}); err != nil {
		return res, err
	}

	// Step 2: Clean.
	cleaned := Clean(table)
	res.CleanedRows = len(cleaned.Rows)
	origRows, origCols := table.Shape()
	cleanRows, cleanCols := cleaned.Shape()
	p.log.Info("table cleaned",
		slog.String("original_shape", fmt.Sprintf("%dx%d", origRows, origCols)),
		slog.String("cleaned_shape", fmt.Sprintf("%dx%d", cleanRows, cleanCols)),
	)

	if err := p.write(&res, CleanedCSVFile, func(w io.Writer) error {
		return export.WriteCSV(w, cleaned)
	}); err != nil {
		return res, err
	}

	// Step 3: Resolve language columns.
	cols, err := ResolveColumns(cleaned.Columns)
	res.Columns = cols
	if err != nil {
		p.log.Warn("could not identify all language columns, skipping record extraction",
			slog.String("french", cols.French),
			slog.String("english", cols.English),
			slog.String("bulu", cols.Bulu),
			slog.String("error", err.Error()),
		)
		res.Duration = time.Since(start)
		return res, nil
	}
	res.Resolved = true
	p.log.Info("language columns resolved",
		slog.String("french", cols.French),
		slog.String("english", cols.English),
		slog.String("bulu", cols.Bulu),
	)

	// Step 4: Extract records.
	records := ExtractRecords(cleaned, cols, p.provenance())
	res.Records = len(records)
	p.log.Info("records extracted", slog.Int("records", res.Records))

	// Step 5: Serialize.
	if err := p.write(&res, EntriesFile, func(w io.Writer) error {
		return export.WriteJSON(w, records)
	}); err != nil {
		return res, err
	}

	if err := p.write(&res, InsertSQLFile, func(w io.Writer) error {
		return export.WriteSQL(w, p.cfg.SQLTable, records, p.cfg.SQLBatchSize)
	}); err != nil {
		return res, err
	}

	sample := Sample(records, p.cfg.SampleSize)
	res.Sampled = len(sample)
	if err := p.write(&res, SampleFile, func(w io.Writer) error {
		return export.WriteJSON(w, sample)
	}); err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	p.log.Info("extraction completed",
		slog.Int("records", res.Records),
		slog.Int("sampled", res.Sampled),
		slog.Int("files", len(res.Files)),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// load reads the workbook, logs its shape and prepares the output directory.
func (p *Pipeline) load() (*domain.Table, error) {
	table, err := p.loader.Load(p.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load spreadsheet: %w", err)
	}
	p.describe(table)

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return table, nil
}

func (p *Pipeline) describe(t *domain.Table) {
	rows, cols := t.Shape()
	p.log.Info("spreadsheet loaded",
		slog.String("path", p.cfg.InputPath),
		slog.Int("rows", rows),
		slog.Int("columns", cols),
		slog.Any("column_names", t.Columns),
	)

	empty := make(map[string]int, cols)
	for i, n := range t.EmptyCounts() {
		empty[t.Columns[i]] = n
	}
	p.log.Info("empty cells per column", slog.Any("counts", empty))

	for i := range min(previewRows, rows) {
		p.log.Debug("row preview", slog.Int("row", i), slog.Any("values", t.Record(i)))
	}
}

func (p *Pipeline) provenance() domain.Provenance {
	return domain.Provenance{
		Notes:            p.cfg.Notes,
		ContributorName:  p.cfg.ContributorName,
		ContributorEmail: p.cfg.ContributorEmailPtr(),
		Verified:         true,
		Timestamp:        p.now().UTC().Truncate(time.Microsecond),
	}
}

func (p *Pipeline) write(res *Result, name string, fn func(io.Writer) error) error {
	path := filepath.Join(p.cfg.OutputDir, name)
	if err := export.WriteFile(path, fn); err != nil {
		return err
	}
	res.Files = append(res.Files, path)
	p.log.Info("saved", slog.String("file", path))
	return nil
}
