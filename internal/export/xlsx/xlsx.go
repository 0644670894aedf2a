// Package xlsx writes assignments to an Excel workbook with a grouped and a flat sheet.
package xlsx

import (
	"context"
	"fmt"
	"time"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export/artifact"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names.
const (
	SheetByTeam = "ByTeam"
	SheetFlat   = "Flat"
)

// Exporter writes one workbook per call.
type Exporter struct {
	log *zap.SugaredLogger
	cfg config.ExportConfig
	now func() time.Time
}

// New creates an xlsx exporter.
func New(log *zap.SugaredLogger, cfg *config.Config) *Exporter {
	return &Exporter{
		log: log.Named("export.xlsx"),
		cfg: cfg.Export,
		now: time.Now,
	}
}

// Export writes the assignment and returns the workbook path.
func (e *Exporter) Export(ctx context.Context, a entities.Assignment) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := artifact.Path(e.cfg.Dir, e.cfg.Prefix, e.now(), ".xlsx")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetByTeam); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetFlat); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	if err := writeByTeam(f, a); err != nil {
		return nil, err
	}
	if err := writeFlat(f, a); err != nil {
		return nil, err
	}

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	e.log.Infow("workbook written", "path", path, "teams", len(a.Teams), "members", a.MemberCount())
	return []string{path}, nil
}

func writeByTeam(f *excelize.File, a entities.Assignment) error {
	for i, row := range mapper.ByTeamGrid(a) {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := setRow(f, SheetByTeam, i+1, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeFlat(f *excelize.File, a entities.Assignment) error {
	header := make([]any, len(mapper.FlatHeader))
	for i, h := range mapper.FlatHeader {
		header[i] = h
	}
	if err := setRow(f, SheetFlat, 1, header); err != nil {
		return err
	}

	for i, r := range mapper.ToFlatRows(a) {
		if err := setRow(f, SheetFlat, i+2, []any{r.Team, r.Role, r.Group, r.Name, r.Gender}); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetFlat, "D", "D", 20)
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
