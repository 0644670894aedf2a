// Package mapper converts between domain models and roster/export records.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// Record is one roster row as stored on disk.
type Record struct {
	Name   string `yaml:"name"`
	Gender string `yaml:"gender,omitempty"`
}

// ToLeaders builds leaders from records. Rows with a blank name are skipped;
// any other row must carry an M/F gender.
func ToLeaders(records []Record) ([]entities.Person, error) {
	res := make([]entities.Person, 0, len(records))
	for i, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		g, ok := entities.ParseGender(r.Gender)
		if !ok {
			return nil, fmt.Errorf("%w: leader %q (row %d) has gender %q, want M or F",
				entities.ErrInvalidArgument, name, i+1, strings.TrimSpace(r.Gender))
		}
		res = append(res, entities.NewLeader(name, g))
	}
	return res, nil
}

// ToMembers builds pool members of category c, skipping blank names.
func ToMembers(records []Record, c entities.Category) []entities.Person {
	res := make([]entities.Person, 0, len(records))
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		res = append(res, entities.NewMember(name, c))
	}
	return res
}

// FromPeople maps people back to records; gender is only kept for leaders.
func FromPeople(people []entities.Person) []Record {
	res := make([]Record, 0, len(people))
	for _, p := range people {
		r := Record{Name: p.Name}
		if p.IsLeader() {
			r.Gender = string(p.Gender)
		}
		res = append(res, r)
	}
	return res
}

// Roles used in flat exports.
const (
	RoleLeader = "leader"
	RoleMember = "member"
)

// FlatHeader is the column header of the flat view.
var FlatHeader = []string{"team", "role", "group", "name", "gender"}

// FlatRow is one person in the flat view of an assignment.
type FlatRow struct {
	Team   int
	Role   string
	Group  string
	Name   string
	Gender string
}

// Strings returns the row in FlatHeader column order.
func (r FlatRow) Strings() []string {
	return []string{strconv.Itoa(r.Team), r.Role, r.Group, r.Name, r.Gender}
}

// ToFlatRows lists every person of the assignment, leader first within each team.
// Team numbers are 1-based.
func ToFlatRows(a entities.Assignment) []FlatRow {
	rows := make([]FlatRow, 0, len(a.Teams)+a.MemberCount())
	for _, t := range a.Teams {
		rows = append(rows, FlatRow{
			Team:   t.Index + 1,
			Role:   RoleLeader,
			Group:  string(entities.CategoryLeader),
			Name:   t.Leader.Name,
			Gender: string(t.Leader.Gender),
		})
		for _, m := range t.Members {
			rows = append(rows, FlatRow{
				Team:   t.Index + 1,
				Role:   RoleMember,
				Group:  string(m.Category),
				Name:   m.Name,
				Gender: string(m.Gender),
			})
		}
	}
	return rows
}

// LeaderCaption renders the leader line of a team block, e.g. "Leader: Kim (F)".
func LeaderCaption(t entities.Team) string {
	return fmt.Sprintf("Leader: %s (%s)", t.Leader.Name, t.Leader.Gender)
}

// ByTeamGrid lays teams out side by side, three columns per team (name, group, spacer):
//
//	Team 1               |        | | Team 2 ...
//	Leader: Kim (M)      | leader | | ...
//	OB3                  | ob     | | ...
//
// The trailing spacer column is omitted. Rows are padded to equal width.
func ByTeamGrid(a entities.Assignment) [][]string {
	if len(a.Teams) == 0 {
		return nil
	}

	height := 0
	for _, t := range a.Teams {
		height = max(height, len(t.Members))
	}
	height += 2
	width := 3*len(a.Teams) - 1

	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
	}
	for k, t := range a.Teams {
		col := 3 * k
		grid[0][col] = t.Label()
		grid[1][col] = LeaderCaption(t)
		grid[1][col+1] = string(entities.CategoryLeader)
		for i, m := range t.Members {
			grid[i+2][col] = m.Name
			grid[i+2][col+1] = string(m.Category)
		}
	}
	return grid
}
