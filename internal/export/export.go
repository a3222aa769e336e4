// Package export persists the ledger report produced by the order core.
// Writing is the only operation here that touches the filesystem; the
// ledger itself is never read or mutated.
package export

import (
	"fmt"
	"os"
)

// DefaultFilename is used when no export path is configured.
const DefaultFilename = "StoreOrders.txt"

// WriteReport writes the report text to path as UTF-8, overwriting any
// previous export. The file handle is closed on every exit path.
func WriteReport(path, report string) error {
	if path == "" {
		path = DefaultFilename
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}

	if _, err := f.WriteString(report); err != nil {
		f.Close()
		return fmt.Errorf("write export file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
