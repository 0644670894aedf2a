// Package domain contains application services orchestrating domain logic by export.
package domain

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// Export writes a drawn assignment through the configured exporter.
func (u *Usecase) Export(ctx context.Context, a *entities.Assignment) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if a == nil || len(a.Teams) == 0 {
		return nil, fmt.Errorf("%w: draw before exporting", entities.ErrEmptyAssignment)
	}

	paths, err := u.exporter.Export(ctx, *a)
	if err != nil {
		u.log.Errorw("failed to export", "error", err)
		return nil, err
	}
	u.log.Infow("assignment exported", "files", paths)
	return paths, nil
}
