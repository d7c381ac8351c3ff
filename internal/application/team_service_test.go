package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/recordstore"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

func newTeamFixture(t *testing.T) (*TeamService, *kvstore.UserRepository) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	users := kvstore.NewUserRepository(recordstore.NewMemoryStore(), codec.New(logger), kvstore.NewKeys(""), logger)
	return NewTeamService(users, logger), users
}

func TestAddMemberHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newTeamFixture(t)

	created, err := svc.AddMember(ctx, AddMemberInput{Email: " New@Example.COM ", Password: "secret1", Name: "New Member"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)
	assert.Equal(t, entity.RoleMember, created.Role)
	assert.Empty(t, created.Password)

	stored, err := users.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret1"))
}

func TestAddMemberValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamFixture(t)

	cases := []AddMemberInput{
		{Email: "", Password: "secret1"},
		{Email: "x@example.com", Password: ""},
		{Email: "not-an-email", Password: "secret1"},
		{Email: "x@example.com", Password: "short"},
	}
	for _, in := range cases {
		_, err := svc.AddMember(ctx, in)
		assert.True(t, apperr.IsValidation(err), "input %+v should be rejected", in)
	}
}

func TestAddMemberDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamFixture(t)

	_, err := svc.AddMember(ctx, AddMemberInput{Email: "x@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, AddMemberInput{Email: "X@EXAMPLE.com", Password: "secret1"})
	assert.True(t, apperr.IsValidation(err))
}

func TestListMembersFiltersByRoleAndStripsPasswords(t *testing.T) {
	ctx := context.Background()
	svc, users := newTeamFixture(t)

	_, err := users.Create(ctx, entity.User{Email: "boss@example.com", Role: entity.RoleManager, Password: "hash"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, AddMemberInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, AddMemberInput{Email: "b@example.com", Password: "secret1"})
	require.NoError(t, err)

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, entity.RoleMember, m.Role)
		assert.Empty(t, m.Password)
	}
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamFixture(t)

	created, err := svc.AddMember(ctx, AddMemberInput{Email: "x@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(ctx, created.ID))
	assert.True(t, apperr.IsNotFound(svc.RemoveMember(ctx, created.ID)))
}
