package testutils

import (
	"strconv"
	"strings"

	"coach-tree-portal/internal/models"
)

var firstNames = []string{"Vardas", "Jonas", "Petras", "Antanas", "Kazys", "Tomas", "Mantas", "Darius"}
var lastNames = []string{"Pavardenis", "Jonaitis", "Petraitis", "Antanaitis", "Kazlauskas", "Tomaitis", "Mantaitis", "Dariulis"}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member whose name and email pass the form rules
func (f *MemberFactory) Create(id, parentID int) models.Member {
	name := f.Name(id)
	return models.Member{
		ID:       id,
		ParentID: parentID,
		FullName: name,
		Email:    f.Email(name),
	}
}

// Name returns a distinct two word name for id
func (f *MemberFactory) Name(id int) string {
	i := id % len(firstNames)
	j := (id / len(firstNames)) % len(lastNames)
	return firstNames[i] + " " + lastNames[j]
}

// Email derives the email the form rules expect for name
func (f *MemberFactory) Email(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ".")) + "@example.com"
}

// Chain creates n members where each one coaches the next: 1 is a root, 2 under 1, 3 under 2
func (f *MemberFactory) Chain(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for id := 1; id <= n; id++ {
		members = append(members, f.Create(id, id-1))
	}
	return members
}

// Flat creates n root members
func (f *MemberFactory) Flat(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for id := 1; id <= n; id++ {
		members = append(members, f.Create(id, models.RootParentID))
	}
	return members
}

// ValidFields returns form input that passes every field rule as long as the name is not taken
// and coach references a loaded member
func (f *MemberFactory) ValidFields(coach string) models.FormFields {
	return models.FormFields{
		Name:        "Naujas Narys",
		Email:       "naujas.narys@example.com",
		CoachSelect: coach,
	}
}

// FieldsFor returns form input for a new member with the given id under coach
func (f *MemberFactory) FieldsFor(id, coach int) models.FormFields {
	name := f.Name(id)
	return models.FormFields{
		Name:        name,
		Email:       f.Email(name),
		CoachSelect: strconv.Itoa(coach),
	}
}
