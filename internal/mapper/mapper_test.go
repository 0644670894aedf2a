package mapper

import (
	"testing"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToLeaders(t *testing.T) {
	leaders, err := ToLeaders([]Record{
		{Name: " Kim ", Gender: "m"},
		{Name: "", Gender: "X"},
		{Name: "Lee", Gender: " F "},
	})
	require.NoError(t, err)
	require.Equal(t, []entities.Person{
		entities.NewLeader("Kim", entities.GenderMale),
		entities.NewLeader("Lee", entities.GenderFemale),
	}, leaders)
}

func TestToLeadersRejectsBadGender(t *testing.T) {
	_, err := ToLeaders([]Record{{Name: "Park", Gender: "x"}})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Contains(t, err.Error(), "Park")
}

func TestToMembers(t *testing.T) {
	members := ToMembers([]Record{{Name: "G1"}, {Name: "  "}, {Name: "G2", Gender: "M"}}, entities.CategoryGirl)
	require.Len(t, members, 2)
	for _, m := range members {
		require.Equal(t, entities.CategoryGirl, m.Category)
		require.Equal(t, entities.GenderFemale, m.Gender)
	}
}

func TestFromPeopleKeepsLeaderGenderOnly(t *testing.T) {
	records := FromPeople([]entities.Person{
		entities.NewLeader("Kim", entities.GenderFemale),
		entities.NewMember("OB1", entities.CategoryOB),
	})
	require.Equal(t, []Record{{Name: "Kim", Gender: "F"}, {Name: "OB1"}}, records)
}

func TestToFlatRows(t *testing.T) {
	a := entities.Assignment{Teams: []entities.Team{
		{
			Index:   0,
			Leader:  entities.NewLeader("Kim", entities.GenderMale),
			Members: []entities.Person{entities.NewMember("G1", entities.CategoryGirl)},
		},
		{
			Index:  1,
			Leader: entities.NewLeader("Lee", entities.GenderFemale),
		},
	}}

	rows := ToFlatRows(a)
	require.Equal(t, []FlatRow{
		{Team: 1, Role: RoleLeader, Group: "leader", Name: "Kim", Gender: "M"},
		{Team: 1, Role: RoleMember, Group: "girls", Name: "G1", Gender: "F"},
		{Team: 2, Role: RoleLeader, Group: "leader", Name: "Lee", Gender: "F"},
	}, rows)
	require.Equal(t, []string{"1", "member", "girls", "G1", "F"}, rows[1].Strings())
	require.Equal(t, "Leader: Lee (F)", LeaderCaption(a.Teams[1]))
}

func TestByTeamGrid(t *testing.T) {
	a := entities.Assignment{Teams: []entities.Team{
		{
			Index:  0,
			Leader: entities.NewLeader("Kim", entities.GenderMale),
			Members: []entities.Person{
				entities.NewMember("OB1", entities.CategoryOB),
				entities.NewMember("G1", entities.CategoryGirl),
			},
		},
		{
			Index:  1,
			Leader: entities.NewLeader("Lee", entities.GenderFemale),
		},
	}}

	grid := ByTeamGrid(a)
	require.Equal(t, [][]string{
		{"Team 1", "", "", "Team 2", ""},
		{"Leader: Kim (M)", "leader", "", "Leader: Lee (F)", "leader"},
		{"OB1", "ob", "", "", ""},
		{"G1", "girls", "", "", ""},
	}, grid)

	require.Nil(t, ByTeamGrid(entities.Assignment{}))
}
