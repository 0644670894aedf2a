// Package artifact names and places export files.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stampLayout = "20060102_150405"

// Path returns dir/<prefix>_<YYYYMMDD_HHMMSS><suffix> and creates dir if needed.
func Path(dir, prefix string, at time.Time, suffix string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := at.Format(stampLayout) + suffix
	if prefix != "" {
		name = prefix + "_" + name
	}
	return filepath.Join(dir, name), nil
}
