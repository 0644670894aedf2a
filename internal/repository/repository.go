// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository/csvfile"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository/yamlfile"

	"go.uber.org/zap"
)

// Repository aggregates all roster storage interfaces.
type Repository interface {
	LifecycleInterface
	RosterInterface
	TemplateInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "csv":
		return csvfile.New(ctx, log, cfg), nil
	case "yaml", "yml":
		return yamlfile.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("%w: roster backend %q", entities.ErrUnknownBackend, name)
	}
}
