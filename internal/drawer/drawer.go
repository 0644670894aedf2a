// Package drawer splits candidate pools across leader-led teams.
package drawer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// Draw runs a full draw seeded from seed (nil means a fresh random seed).
// The returned assignment records the seed so the same draw can be reproduced.
func Draw(leaders, ob, yb, girls []entities.Person, seed *int64) (*entities.Assignment, error) {
	src, used := NewSource(seed)
	teams, err := DrawWith(leaders, ob, yb, girls, src)
	if err != nil {
		return nil, err
	}
	return &entities.Assignment{Seed: used, Teams: teams}, nil
}

// DrawWith distributes the pools across one team per leader using src.
//
// The source is consumed in a fixed order: male leaders, female leaders, OB, YB, GIRL,
// then each team's member list. Each pool is dealt round-robin over all teams; whatever
// does not divide evenly goes one per team to the priority leader group first (female
// leaders for OB/YB, male leaders for GIRL) and then to the other group. Within a group,
// teams holding fewer leftovers so far come first, ties broken by the shuffled leader order.
//
// Inputs are never modified. Teams are returned in leader input order.
func DrawWith(leaders, ob, yb, girls []entities.Person, src Source) ([]entities.Team, error) {
	if err := ValidateLeaders(leaders); err != nil {
		return nil, err
	}

	teams := make([]entities.Team, len(leaders))
	var male, female []int
	for i, l := range leaders {
		teams[i] = entities.Team{Index: i, Leader: l}
		if l.Gender == entities.GenderMale {
			male = append(male, i)
		} else {
			female = append(female, i)
		}
	}
	shuffle(src, male)
	shuffle(src, female)

	obPool := slices.Clone(ob)
	shuffle(src, obPool)
	ybPool := slices.Clone(yb)
	shuffle(src, ybPool)
	girlPool := slices.Clone(girls)
	shuffle(src, girlPool)

	d := &distributor{teams: teams, extra: make([]int, len(teams))}
	d.spread(obPool, female, male)
	d.spread(ybPool, female, male)
	d.spread(girlPool, male, female)

	for i := range teams {
		shuffle(src, teams[i].Members)
	}
	return teams, nil
}

// ValidateLeaders checks the leader preconditions of a draw.
func ValidateLeaders(leaders []entities.Person) error {
	if len(leaders) == 0 {
		return fmt.Errorf("%w: leader list is empty", entities.ErrInvalidRoster)
	}
	if len(leaders)%2 != 0 {
		return fmt.Errorf("%w: leader count must be even, got %d", entities.ErrInvalidRoster, len(leaders))
	}

	var male, female int
	for _, l := range leaders {
		switch l.Gender {
		case entities.GenderMale:
			male++
		case entities.GenderFemale:
			female++
		default:
			return fmt.Errorf("%w: leader %q has gender %q, want M or F", entities.ErrInvalidRoster, l.Name, l.Gender)
		}
	}
	if male != female {
		return fmt.Errorf("%w: %d male and %d female leaders, counts must match", entities.ErrInvalidRoster, male, female)
	}
	return nil
}

type distributor struct {
	teams []entities.Team
	// extra counts leftover members each team has received so far, across pools.
	extra []int
}

func (d *distributor) spread(pool []entities.Person, priority, other []int) {
	n := len(d.teams)
	bulk := len(pool) / n * n
	for i, p := range pool[:bulk] {
		t := &d.teams[i%n]
		t.Members = append(t.Members, p)
	}

	rest := pool[bulk:]
	if len(rest) == 0 {
		return
	}
	// len(rest) < n, so every leftover lands on a distinct team.
	order := append(d.rank(priority), d.rank(other)...)
	for i, p := range rest {
		idx := order[i]
		d.teams[idx].Members = append(d.teams[idx].Members, p)
		d.extra[idx]++
	}
}

func (d *distributor) rank(group []int) []int {
	ranked := slices.Clone(group)
	sort.SliceStable(ranked, func(a, b int) bool {
		return d.extra[ranked[a]] < d.extra[ranked[b]]
	})
	return ranked
}
