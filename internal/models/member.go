package models

import (
	"cmp"
	"slices"
	"strings"
)

// RootParentID is the parentId of members that sit at the top of the coach tree
const RootParentID = 0

// Member is a node in the coach tree as returned by the members API
type Member struct {
	ID       int    `json:"id" example:"1"`
	ParentID int    `json:"parentId" example:"0"`
	FullName string `json:"fullName" example:"Vardas Pavardenis"`
	Email    string `json:"email" example:"vardas.pavardenis@example.com"`
}

// IsRoot reports whether the member hangs directly under the root sentinel
func (m Member) IsRoot() bool {
	return m.ParentID == RootParentID
}

// CreateMemberRequest is the payload for POST /members. ID is assigned by the backend when absent.
type CreateMemberRequest struct {
	ID       *int   `json:"id,omitempty"`
	ParentID int    `json:"parentId" example:"1"`
	FullName string `json:"fullName" example:"Jonas Pavardenis"`
	Email    string `json:"email" example:"jonas.pavardenis@example.com"`
}

// UpdateMemberRequest is the partial payload for PATCH /members/{id}
type UpdateMemberRequest struct {
	ParentID *int    `json:"parentId,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// IsEmpty reports whether the update sets no field at all
func (r UpdateMemberRequest) IsEmpty() bool {
	return r.ParentID == nil && r.FullName == nil && r.Email == nil
}

// FormFields is the transient state of the create-member form
type FormFields struct {
	Name        string `json:"name" example:"Vardas Pavardenis"`
	Email       string `json:"email" example:"vardas.pavardenis@example.com"`
	CoachSelect string `json:"coachSelect" example:"1"`
}

// Normalized returns the fields with surrounding whitespace removed
func (f FormFields) Normalized() FormFields {
	return FormFields{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		CoachSelect: strings.TrimSpace(f.CoachSelect),
	}
}

// SortByID returns a copy of members ordered by ascending id. The input slice is left untouched.
func SortByID(members []Member) []Member {
	sorted := make([]Member, len(members))
	copy(sorted, members)
	slices.SortFunc(sorted, func(a, b Member) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// FindByID returns the member with the given id
func FindByID(members []Member, id int) (Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}
