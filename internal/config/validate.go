package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Commands call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := c.Extract.validate(); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

func (e *ExtractConfig) validate() error {
	if e.InputPath == "" {
		return fmt.Errorf("input_path must not be empty")
	}
	if e.SQLTable == "" {
		return fmt.Errorf("sql_table must not be empty")
	}
	if e.SQLBatchSize <= 0 {
		return fmt.Errorf("sql_batch_size must be > 0 (got %d)", e.SQLBatchSize)
	}
	if e.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be > 0 (got %d)", e.SampleSize)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.InputPath == "" {
		return fmt.Errorf("input_path must not be empty")
	}
	if i.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", i.BatchSize)
	}
	if i.StartIndex < 0 {
		return fmt.Errorf("start_index must be >= 0 (got %d)", i.StartIndex)
	}
	if i.BatchDelay < 0 {
		return fmt.Errorf("batch_delay must be >= 0 (got %v)", i.BatchDelay)
	}
	return nil
}

// Validate checks the settings needed to open a connection pool.
func (d DatabaseConfig) Validate() error {
	if d.DSN == "" {
		return fmt.Errorf("database.dsn is required (DATABASE_DSN)")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	return nil
}
