package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMembers() []Member {
	return []Member{
		{ID: 3, ParentID: 1, FullName: "Jonas Pavardenis Vardas", Email: "jonas.pavardenis.vardas@example.com"},
		{ID: 1, ParentID: 0, FullName: "Vardas Pavardenis", Email: "vardas.pavardenis@example.com"},
		{ID: 2, ParentID: 1, FullName: "Jonas Pavardenis", Email: "jonas.pavardenis@example.com"},
	}
}

func ids(members []Member) []int {
	out := make([]int, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}

func TestSortByID(t *testing.T) {
	t.Run("orders ascending by id", func(t *testing.T) {
		sorted := SortByID(sampleMembers())
		assert.Equal(t, []int{1, 2, 3}, ids(sorted))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := sampleMembers()
		_ = SortByID(in)
		assert.Equal(t, []int{3, 1, 2}, ids(in))
	})

	t.Run("empty and nil input", func(t *testing.T) {
		assert.Empty(t, SortByID(nil))
		assert.NotNil(t, SortByID(nil))
		assert.Empty(t, SortByID([]Member{}))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := SortByID(sampleMembers())
		assert.Equal(t, once, SortByID(once))
	})

	t.Run("independent of input permutation", func(t *testing.T) {
		base := sampleMembers()
		want := SortByID(base)
		perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, p := range perms {
			in := []Member{base[p[0]], base[p[1]], base[p[2]]}
			assert.Equal(t, want, SortByID(in))
		}
	})
}

func TestFindByID(t *testing.T) {
	m, ok := FindByID(sampleMembers(), 2)
	require.True(t, ok)
	assert.Equal(t, "Jonas Pavardenis", m.FullName)

	_, ok = FindByID(sampleMembers(), 42)
	assert.False(t, ok)
}

func TestUpdateMemberRequestIsEmpty(t *testing.T) {
	assert.True(t, UpdateMemberRequest{}.IsEmpty())

	parent := 1
	assert.False(t, UpdateMemberRequest{ParentID: &parent}.IsEmpty())

	name := "Jonas"
	assert.False(t, UpdateMemberRequest{FullName: &name}.IsEmpty())
}

func TestFormFieldsNormalized(t *testing.T) {
	f := FormFields{Name: "  Vardas Pavardenis ", Email: " vardas.pavardenis@example.com", CoachSelect: " 1 "}.Normalized()
	assert.Equal(t, "Vardas Pavardenis", f.Name)
	assert.Equal(t, "vardas.pavardenis@example.com", f.Email)
	assert.Equal(t, "1", f.CoachSelect)
}

func TestMemberIsRoot(t *testing.T) {
	assert.True(t, Member{ID: 1, ParentID: RootParentID}.IsRoot())
	assert.False(t, Member{ID: 2, ParentID: 1}.IsRoot())
}
