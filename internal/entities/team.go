// Package entities contains core business entities.
package entities

import "fmt"

// Team is one leader with the members drawn for them.
type Team struct {
	Index   int
	Leader  Person
	Members []Person
}

// Label is the 1-based display name of the team.
func (t Team) Label() string {
	return fmt.Sprintf("Team %d", t.Index+1)
}

// Size returns the member count, leader excluded.
func (t Team) Size() int {
	return len(t.Members)
}

// People returns the leader followed by the members.
func (t Team) People() []Person {
	res := make([]Person, 0, len(t.Members)+1)
	res = append(res, t.Leader)
	return append(res, t.Members...)
}

// Count returns how many members come from the given pool.
func (t Team) Count(c Category) int {
	n := 0
	for _, m := range t.Members {
		if m.Category == c {
			n++
		}
	}
	return n
}

// Assignment is the full result of one draw.
type Assignment struct {
	Seed  int64
	Teams []Team
}

// MemberCount returns the number of pool members placed across all teams.
func (a Assignment) MemberCount() int {
	n := 0
	for _, t := range a.Teams {
		n += len(t.Members)
	}
	return n
}

// DrawRules holds configurable checks applied before a draw.
type DrawRules struct {
	// LeaderCount is the exact number of leaders expected; 0 accepts any valid count.
	LeaderCount int
}
