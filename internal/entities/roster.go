// Package entities contains core business entities.
package entities

// Roster bundles the leader list and the three candidate pools.
type Roster struct {
	Leaders []Person
	OB      []Person
	YB      []Person
	Girls   []Person
}

// Pool returns the roster slice for a pool category.
func (r Roster) Pool(c Category) []Person {
	switch c {
	case CategoryOB:
		return r.OB
	case CategoryYB:
		return r.YB
	case CategoryGirl:
		return r.Girls
	case CategoryLeader:
		return r.Leaders
	default:
		return nil
	}
}

// RosterSummary holds per-roster head counts.
type RosterSummary struct {
	Leaders int `json:"leaders"`
	OB      int `json:"ob"`
	YB      int `json:"yb"`
	Girls   int `json:"girls"`
}

// Summary counts the people in each roster.
func (r Roster) Summary() RosterSummary {
	return RosterSummary{
		Leaders: len(r.Leaders),
		OB:      len(r.OB),
		YB:      len(r.YB),
		Girls:   len(r.Girls),
	}
}

// Total returns the number of pool members (leaders excluded).
func (s RosterSummary) Total() int {
	return s.OB + s.YB + s.Girls
}
