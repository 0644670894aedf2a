package filebase

import (
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// SampleRoster is written as a starting template: eight leaders (four of each gender)
// and four people in each pool.
func SampleRoster() entities.Roster {
	var r entities.Roster
	for i := 1; i <= 8; i++ {
		g := entities.GenderMale
		if i > 4 {
			g = entities.GenderFemale
		}
		r.Leaders = append(r.Leaders, entities.NewLeader(fmt.Sprintf("Leader%d", i), g))
	}
	for i := 1; i <= 4; i++ {
		r.OB = append(r.OB, entities.NewMember(fmt.Sprintf("OB%d", i), entities.CategoryOB))
		r.YB = append(r.YB, entities.NewMember(fmt.Sprintf("YB%d", i), entities.CategoryYB))
		r.Girls = append(r.Girls, entities.NewMember(fmt.Sprintf("G%d", i), entities.CategoryGirl))
	}
	return r
}
