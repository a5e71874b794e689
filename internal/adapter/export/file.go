// Package export serializes dictionary tables and translation records to
// CSV, JSON and SQL. Writers stream into an io.Writer; WriteFile binds one to a path.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteFile creates (or truncates) path and streams fn's output into it.
// A failure part-way leaves a truncated file behind.
func WriteFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
