package usecase

import (
	"context"
	"time"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RosterUsecaseInterface
	DrawUsecaseInterface
	ExportUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	exporter export.Exporter,
	timeout time.Duration,
	rules entities.DrawRules,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, exporter, timeout, rules)
}
