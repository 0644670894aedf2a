// Package export provides factory for assignment exporters.
package export

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export/csvfile"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export/xlsx"

	"go.uber.org/zap"
)

// Exporter writes an assignment to one or more files and returns their paths.
type Exporter interface {
	Export(ctx context.Context, a entities.Assignment) ([]string, error)
}

// New constructs exporter backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Exporter, error) {
	switch name {
	case "xlsx":
		return xlsx.New(log, cfg), nil
	case "csv":
		return csvfile.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("%w: export backend %q", entities.ErrUnknownBackend, name)
	}
}
