package config

import "time"

// Config is the root configuration shared by the extract, convert and import commands.
type Config struct {
	Extract  ExtractConfig  `yaml:"extract"`
	Import   ImportConfig   `yaml:"import"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ExtractConfig holds spreadsheet extraction settings.
// Defaults reproduce the fixed input and output names of the original tooling.
type ExtractConfig struct {
	InputPath        string `yaml:"input_path"        env:"EXTRACT_INPUT_PATH"        env-default:"Français - English - Búlu(1).xlsx"`
	Sheet            string `yaml:"sheet"             env:"EXTRACT_SHEET"`
	OutputDir        string `yaml:"output_dir"        env:"EXTRACT_OUTPUT_DIR"        env-default:"."`
	SQLTable         string `yaml:"sql_table"         env:"EXTRACT_SQL_TABLE"         env-default:"dictionary"`
	SQLBatchSize     int    `yaml:"sql_batch_size"    env:"EXTRACT_SQL_BATCH_SIZE"    env-default:"100"`
	SampleSize       int    `yaml:"sample_size"       env:"EXTRACT_SAMPLE_SIZE"       env-default:"50"`
	Notes            string `yaml:"notes"             env:"EXTRACT_NOTES"             env-default:"Imported from dictionary spreadsheet"`
	ContributorName  string `yaml:"contributor_name"  env:"EXTRACT_CONTRIBUTOR_NAME"  env-default:"Dictionary Import"`
	ContributorEmail string `yaml:"contributor_email" env:"EXTRACT_CONTRIBUTOR_EMAIL"`
}

// ImportConfig holds settings for loading extracted records into PostgreSQL.
type ImportConfig struct {
	InputPath  string        `yaml:"input_path"  env:"IMPORT_INPUT_PATH"  env-default:"bulu_dictionary_entries.json"`
	BatchSize  int           `yaml:"batch_size"  env:"IMPORT_BATCH_SIZE"  env-default:"100"`
	StartIndex int           `yaml:"start_index" env:"IMPORT_START_INDEX" env-default:"0"`
	BatchDelay time.Duration `yaml:"batch_delay" env:"IMPORT_BATCH_DELAY" env-default:"2s"`
	DryRun     bool          `yaml:"dry_run"     env:"IMPORT_DRY_RUN"`
	Migrate    bool          `yaml:"migrate"     env:"IMPORT_MIGRATE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is only required by the import command; see DatabaseConfig.Validate.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ContributorEmailPtr returns the configured contributor email, or nil when unset
// so that it serializes as null/NULL.
func (c ExtractConfig) ContributorEmailPtr() *string {
	if c.ContributorEmail == "" {
		return nil
	}
	email := c.ContributorEmail
	return &email
}
