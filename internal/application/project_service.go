package application

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
)

// Matches the address syntax the mobile client accepted: something@host.tld
// with no whitespace. Deliberately loose; this is not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProjectService wraps the repository with input validation. When
// AssigneeDomain is set (e.g. "gmail.com"), task assignees are restricted
// to that domain — a deliberate narrowing carried over from the client.
type ProjectService struct {
	Projects       repository.ProjectRepository
	Logger         *logrus.Logger
	AssigneeDomain string
}

func NewProjectService(projects repository.ProjectRepository, logger *logrus.Logger, assigneeDomain string) *ProjectService {
	return &ProjectService{Projects: projects, Logger: logger, AssigneeDomain: assigneeDomain}
}

type CreateProjectInput struct {
	Name        string
	Description string
	DueDate     string
	Members     []entity.ProjectMember
}

type AddTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	CreatedBy   string
	Status      string
	Priority    string
	DueDate     string
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return s.Projects.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	return s.Projects.GetByID(ctx, projectID)
}

func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*entity.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("project name is required")
	}
	p := entity.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		DueDate:     strings.TrimSpace(in.DueDate),
		Members:     in.Members,
		Tasks:       []entity.Task{},
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	return s.Projects.Create(ctx, p)
}

func (s *ProjectService) AddTask(ctx context.Context, projectID string, in AddTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validation("task title is required")
	}
	assignee := strings.TrimSpace(in.AssignedTo)
	if assignee != "" {
		if err := s.validateAssignee(assignee); err != nil {
			return nil, err
		}
	}
	status := in.Status
	if status == "" {
		status = entity.StatusToDo
	}
	if !entity.ValidStatus(status) {
		return nil, apperr.Validation("unknown task status")
	}

	t := entity.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		AssignedTo:  assignee,
		CreatedBy:   strings.TrimSpace(in.CreatedBy),
		Status:      status,
		Priority:    in.Priority,
		DueDate:     strings.TrimSpace(in.DueDate),
		Comments:    []entity.TaskComment{},
	}
	return s.Projects.AppendTask(ctx, projectID, t)
}

func (s *ProjectService) UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*entity.Task, error) {
	if !entity.ValidStatus(status) {
		return nil, apperr.Validation("unknown task status")
	}
	return s.Projects.UpdateTaskStatus(ctx, projectID, taskID, status)
}

// Note: an assignee is not required to be a member of the project. The
// client allowed assign-then-invite and this keeps that behavior.
func (s *ProjectService) validateAssignee(assignee string) error {
	lower := strings.ToLower(assignee)
	if !emailPattern.MatchString(lower) {
		return apperr.Validation("assignee must be a valid email address")
	}
	if s.AssigneeDomain != "" && !strings.HasSuffix(lower, "@"+strings.ToLower(s.AssigneeDomain)) {
		return apperr.Validation("assignee must be a " + s.AssigneeDomain + " address")
	}
	return nil
}
