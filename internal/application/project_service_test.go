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
)

func newProjectServiceFixture(t *testing.T, assigneeDomain string) *ProjectService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	repo := kvstore.NewProjectRepository(recordstore.NewMemoryStore(), codec.New(logger), kvstore.NewKeys(""), logger)
	return NewProjectService(repo, logger, assigneeDomain)
}

func TestCreateProjectValidation(t *testing.T) {
	svc := newProjectServiceFixture(t, "")

	_, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: "   "})
	assert.True(t, apperr.IsValidation(err))

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: "  Launch  "})
	require.NoError(t, err)
	assert.Equal(t, "Launch", created.Name)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Tasks)
}

func TestAddTaskValidation(t *testing.T) {
	ctx := context.Background()
	svc := newProjectServiceFixture(t, "")

	p, err := svc.CreateProject(ctx, CreateProjectInput{Name: "Launch"})
	require.NoError(t, err)

	_, err = svc.AddTask(ctx, p.ID, AddTaskInput{Title: ""})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", AssignedTo: "not-an-email"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", Status: "Blocked"})
	assert.True(t, apperr.IsValidation(err))

	task, err := svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", AssignedTo: "member@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusToDo, task.Status, "missing status defaults to To Do")
}

func TestAddTaskAssigneeDomainRestriction(t *testing.T) {
	ctx := context.Background()
	svc := newProjectServiceFixture(t, "gmail.com")

	p, err := svc.CreateProject(ctx, CreateProjectInput{Name: "Launch"})
	require.NoError(t, err)

	_, err = svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", AssignedTo: "member@example.com"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", AssignedTo: "Member@Gmail.com"})
	assert.NoError(t, err)
}

func TestAddTaskAssigneeNeedNotBeMember(t *testing.T) {
	ctx := context.Background()
	svc := newProjectServiceFixture(t, "")

	p, err := svc.CreateProject(ctx, CreateProjectInput{Name: "Launch"})
	require.NoError(t, err)

	// assign-then-invite: the assignee is not in the member list
	task, err := svc.AddTask(ctx, p.ID, AddTaskInput{Title: "t", AssignedTo: "outsider@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "outsider@example.com", task.AssignedTo)
}

func TestUpdateTaskStatusValidatesBeforeLookup(t *testing.T) {
	svc := newProjectServiceFixture(t, "")

	_, err := svc.UpdateTaskStatus(context.Background(), "missing", "missing", "Blocked")
	assert.True(t, apperr.IsValidation(err), "bad status rejected even for unknown ids")

	_, err = svc.UpdateTaskStatus(context.Background(), "missing", "missing", entity.StatusCompleted)
	assert.True(t, apperr.IsNotFound(err))
}

// Walks the manager/member flow end to end: create a project, hand a
// task to a member, watch their filtered view, complete the task, and
// confirm the manager sees the new status.
func TestManagerMemberWorkflow(t *testing.T) {
	ctx := context.Background()
	svc := newProjectServiceFixture(t, "")
	const memberEmail = "member@example.com"

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name: "Launch",
		Members: []entity.ProjectMember{
			{UserID: "manager1", Email: "manager@example.com", Role: entity.RoleManager},
			{UserID: "member1", Email: memberEmail, Role: entity.RoleMember},
		},
	})
	require.NoError(t, err)

	task, err := svc.AddTask(ctx, p.ID, AddTaskInput{
		Title:      "Write copy",
		AssignedTo: memberEmail,
		CreatedBy:  "manager@example.com",
		Priority:   entity.PriorityMedium,
	})
	require.NoError(t, err)

	all, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	mine := ProjectsForMember(all, memberEmail)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Tasks, 1)
	assert.Equal(t, entity.StatusToDo, mine[0].Tasks[0].Status)

	_, err = svc.UpdateTaskStatus(ctx, p.ID, task.ID, entity.StatusCompleted)
	require.NoError(t, err)

	got, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, entity.StatusCompleted, got.Tasks[0].Status)

	stats := ComputeStats([]entity.Project{*got})
	assert.Equal(t, TaskStats{TotalTasks: 1, Completed: 1}, stats)
}
