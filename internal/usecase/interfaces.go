package usecase

import (
	"context"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// RosterUsecaseInterface abstracts roster loading for the delivery layer.
type RosterUsecaseInterface interface {
	LoadRoster(ctx context.Context) (entities.Roster, error)
	InitTemplates(ctx context.Context) ([]string, error)
}

// DrawUsecaseInterface abstracts team drawing.
type DrawUsecaseInterface interface {
	Draw(ctx context.Context, roster entities.Roster, seed *int64) (*entities.Assignment, error)
}

// ExportUsecaseInterface abstracts result export.
type ExportUsecaseInterface interface {
	Export(ctx context.Context, a *entities.Assignment) ([]string, error)
}
