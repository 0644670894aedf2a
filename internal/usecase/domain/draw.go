// Package domain contains application Usecases orchestrating domain logic by draw.
package domain

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/drawer"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// Draw checks the configured leader count and runs the drawer.
// A nil seed draws with a fresh random seed, reported on the result.
func (u *Usecase) Draw(ctx context.Context, roster entities.Roster, seed *int64) (*entities.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if n := u.rules.LeaderCount; n > 0 && len(roster.Leaders) != n {
		u.log.Errorw("failed to draw: unexpected leader count", "want", n, "got", len(roster.Leaders))
		return nil, fmt.Errorf("%w: expected %d leaders, got %d", entities.ErrInvalidRoster, n, len(roster.Leaders))
	}

	a, err := drawer.Draw(roster.Leaders, roster.OB, roster.YB, roster.Girls, seed)
	if err != nil {
		u.log.Errorw("failed to draw", "error", err)
		return nil, err
	}

	u.log.Infow("draw complete",
		"seed", a.Seed,
		"seeded", seed != nil,
		"teams", len(a.Teams),
		"members", a.MemberCount(),
	)
	return a, nil
}
