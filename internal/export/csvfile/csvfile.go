// Package csvfile writes assignments as a pair of CSV files (by team and flat).
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export/artifact"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"

	"go.uber.org/zap"
)

// utf8BOM lets spreadsheet applications detect the encoding of non-ASCII names.
const utf8BOM = "\ufeff"

// Exporter writes <prefix>_<stamp>_by_team.csv and <prefix>_<stamp>_flat.csv.
type Exporter struct {
	log *zap.SugaredLogger
	cfg config.ExportConfig
	now func() time.Time
}

// New creates a CSV exporter.
func New(log *zap.SugaredLogger, cfg *config.Config) *Exporter {
	return &Exporter{
		log: log.Named("export.csv"),
		cfg: cfg.Export,
		now: time.Now,
	}
}

// Export writes both views and returns their paths (by-team first).
func (e *Exporter) Export(ctx context.Context, a entities.Assignment) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	at := e.now()
	byTeamPath, err := artifact.Path(e.cfg.Dir, e.cfg.Prefix, at, "_by_team.csv")
	if err != nil {
		return nil, err
	}
	flatPath, err := artifact.Path(e.cfg.Dir, e.cfg.Prefix, at, "_flat.csv")
	if err != nil {
		return nil, err
	}

	if err := writeCSV(byTeamPath, mapper.ByTeamGrid(a)); err != nil {
		return nil, err
	}

	flat := [][]string{mapper.FlatHeader}
	for _, r := range mapper.ToFlatRows(a) {
		flat = append(flat, r.Strings())
	}
	if err := writeCSV(flatPath, flat); err != nil {
		return nil, err
	}

	e.log.Infow("csv written", "by_team", byTeamPath, "flat", flatPath, "teams", len(a.Teams))
	return []string{byTeamPath, flatPath}, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.WriteString(utf8BOM); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
