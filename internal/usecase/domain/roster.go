// Package domain contains application Usecases orchestrating domain logic by roster.
package domain

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// LoadRoster reads leaders and all pools from the repository.
func (u *Usecase) LoadRoster(ctx context.Context) (entities.Roster, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	leaders, err := u.repo.Leaders(ctx)
	if err != nil {
		u.log.Errorw("failed to load leaders", "error", err)
		return entities.Roster{}, err
	}

	roster := entities.Roster{Leaders: leaders}
	for _, c := range entities.Pools {
		people, err := u.repo.Pool(ctx, c)
		if err != nil {
			u.log.Errorw("failed to load pool", "pool", c, "error", err)
			return entities.Roster{}, fmt.Errorf("load %s pool: %w", c, err)
		}
		switch c {
		case entities.CategoryOB:
			roster.OB = people
		case entities.CategoryYB:
			roster.YB = people
		case entities.CategoryGirl:
			roster.Girls = people
		}
	}

	s := roster.Summary()
	u.log.Infow("roster loaded", "leaders", s.Leaders, "ob", s.OB, "yb", s.YB, "girls", s.Girls)
	return roster, nil
}

// InitTemplates writes template roster files that do not exist yet.
func (u *Usecase) InitTemplates(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	created, err := u.repo.EnsureTemplates(ctx)
	if err != nil {
		u.log.Errorw("failed to write templates", "error", err)
		return nil, err
	}
	u.log.Infow("templates ensured", "created", len(created))
	return created, nil
}
