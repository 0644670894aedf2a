// Package entities contains core business entities.
package entities

import "strings"

// Category tags which roster a person was loaded from.
type Category string

const (
	// CategoryLeader marks a team leader.
	CategoryLeader Category = "leader"
	// CategoryOB marks an OB pool member.
	CategoryOB Category = "ob"
	// CategoryYB marks a YB pool member.
	CategoryYB Category = "yb"
	// CategoryGirl marks a GIRL pool member.
	CategoryGirl Category = "girls"
)

// Gender is a single-letter gender code.
type Gender string

const (
	// GenderMale is the male code.
	GenderMale Gender = "M"
	// GenderFemale is the female code.
	GenderFemale Gender = "F"
)

// ParseGender normalizes a raw gender code. The second result is false for anything but M/F.
func ParseGender(raw string) (Gender, bool) {
	switch Gender(strings.ToUpper(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// PoolGender returns the gender implied by a pool category.
func PoolGender(c Category) Gender {
	if c == CategoryGirl {
		return GenderFemale
	}
	return GenderMale
}

// Pools lists the non-leader categories in draw order.
var Pools = []Category{CategoryOB, CategoryYB, CategoryGirl}

// Person is a named individual loaded from a roster.
type Person struct {
	Name     string
	Category Category
	Gender   Gender
}

// NewLeader builds a leader with an explicit gender.
func NewLeader(name string, gender Gender) Person {
	return Person{Name: name, Category: CategoryLeader, Gender: gender}
}

// NewMember builds a pool member; gender follows the pool.
func NewMember(name string, category Category) Person {
	return Person{Name: name, Category: category, Gender: PoolGender(category)}
}

// IsLeader reports whether the person leads a team.
func (p Person) IsLeader() bool {
	return p.Category == CategoryLeader
}
