package main

import (
	"context"
	"testing"

	"coach-tree-portal/internal/config"
	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/models"
	"coach-tree-portal/internal/service"
	"coach-tree-portal/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedClient(t *testing.T, api *testutils.FakeMembersAPI) (*service.MembersClient, *service.MemberValidator) {
	t.Helper()
	client, err := service.NewMembersClient(&config.Config{MembersAPIBaseURL: api.URL(), MembersAPITimeoutSec: 5})
	require.NoError(t, err)
	mv, err := service.NewMemberValidator(validator.New())
	require.NoError(t, err)
	return client, mv
}

func TestLoadMembers(t *testing.T) {
	seeds, err := loadMembers("data")

	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, "Vardas Pavardenis", seeds[0].FullName)
	assert.Equal(t, "Vardas Pavardenis", seeds[1].Coach)
}

func TestSeedMembers_ResolvesCoaches(t *testing.T) {
	api := testutils.NewFakeMembersAPI()
	defer api.Close()
	client, mv := newSeedClient(t, api)

	seeds, err := loadMembers("data")
	require.NoError(t, err)

	created, skipped, err := seedMembers(context.Background(), client, mv, 10, nil, seeds)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, skipped)

	members := api.Members()
	require.Len(t, members, 2)
	assert.Equal(t, models.RootParentID, members[0].ParentID)
	assert.Equal(t, members[0].ID, members[1].ParentID)
}

func TestSeedMembers_SkipsExisting(t *testing.T) {
	factory := testutils.NewMemberFactory()
	existing := factory.Create(1, models.RootParentID)
	api := testutils.NewFakeMembersAPI(existing)
	defer api.Close()
	client, mv := newSeedClient(t, api)

	seeds := []MemberData{{FullName: existing.FullName, Email: existing.Email}}

	created, skipped, err := seedMembers(context.Background(), client, mv, 10, api.Members(), seeds)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 0, api.Calls("POST /members"))
}

func TestSeedMembers_StopsAtLimit(t *testing.T) {
	factory := testutils.NewMemberFactory()
	api := testutils.NewFakeMembersAPI(factory.Flat(1)...)
	defer api.Close()
	client, mv := newSeedClient(t, api)

	seeds := []MemberData{
		{FullName: factory.Name(2), Email: factory.Email(factory.Name(2))},
		{FullName: factory.Name(3), Email: factory.Email(factory.Name(3))},
	}

	created, _, err := seedMembers(context.Background(), client, mv, 2, api.Members(), seeds)

	require.Error(t, err)
	assert.True(t, apperrors.IsCapacityExceeded(err))
	assert.Equal(t, 1, created)
	assert.Len(t, api.Members(), 2)
}

func TestSeedMembers_RejectsInvalid(t *testing.T) {
	api := testutils.NewFakeMembersAPI()
	defer api.Close()
	client, mv := newSeedClient(t, api)

	seeds := []MemberData{{FullName: "vardas pavardenis", Email: "vardas.pavardenis@example.com"}}

	created, _, err := seedMembers(context.Background(), client, mv, 10, nil, seeds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting uppercase")
	assert.Equal(t, 0, created)
	assert.Empty(t, api.Members())
}
