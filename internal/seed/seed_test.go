package seed

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/recordstore"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

func TestRunSeedsDemoData(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := recordstore.NewMemoryStore()
	c := codec.New(logger)
	keys := kvstore.NewKeys("")

	require.NoError(t, Run(ctx, store, c, keys, logger))

	users := kvstore.NewUserRepository(store, c, keys, logger)
	manager, err := users.GetByEmail(ctx, ManagerEmail)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, manager.Role)
	assert.True(t, helpers.CompareHashAndPassword(manager.Password, ManagerPassword))

	member, err := users.GetByEmail(ctx, MemberEmail)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, member.Role)

	projects := kvstore.NewProjectRepository(store, c, keys, logger)
	p, err := projects.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Website Redesign", p.Name)
	require.Len(t, p.Tasks, 1)
	assert.Equal(t, "Create wireframes", p.Tasks[0].Title)
	assert.Equal(t, entity.StatusInProgress, p.Tasks[0].Status)

	mark, ok, err := store.Get(ctx, keys.SeedMark())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", mark)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := recordstore.NewMemoryStore()
	c := codec.New(logger)
	keys := kvstore.NewKeys("")

	require.NoError(t, Run(ctx, store, c, keys, logger))
	require.NoError(t, Run(ctx, store, c, keys, logger))

	users, err := kvstore.NewUserRepository(store, c, keys, logger).List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	projects, err := kvstore.NewProjectRepository(store, c, keys, logger).List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestRunRespectsSeedMark(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := recordstore.NewMemoryStore()
	c := codec.New(logger)
	keys := kvstore.NewKeys("")

	// a cleared project list stays cleared once the marker is set
	require.NoError(t, store.Set(ctx, keys.SeedMark(), "true"))
	require.NoError(t, Run(ctx, store, c, keys, logger))

	projects, err := kvstore.NewProjectRepository(store, c, keys, logger).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
