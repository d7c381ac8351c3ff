package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/application"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/pkg/response"
	"github.com/talawarsneha/project-management-app/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type memberRef struct {
	UserID string `json:"userId"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"`
}

type createProjectRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	DueDate     string      `json:"dueDate"`
	Members     []memberRef `json:"members" binding:"omitempty,dive"`
}

type addTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List returns the full collection: the manager's unfiltered view.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load projects. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, projects, "projects")
}

// Mine returns the member dashboard view: projects where the caller is a
// member with assigned tasks, tasks narrowed to their own.
func (h *ProjectHandler) Mine(c *gin.Context) {
	projects, err := h.Svc.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load projects. Please try again.")
		return
	}
	email := c.GetString(middleware.CtxUserEmailKey)
	response.Success(c, http.StatusOK, application.ProjectsForMember(projects, email), "assigned projects")
}

// Stats aggregates task counts. scope=mine restricts to the caller's
// filtered view; anything else covers the whole collection.
func (h *ProjectHandler) Stats(c *gin.Context) {
	projects, err := h.Svc.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load projects. Please try again.")
		return
	}
	if c.Query("scope") == "mine" {
		projects = application.ProjectsForMember(projects, c.GetString(middleware.CtxUserEmailKey))
	}
	response.Success(c, http.StatusOK, application.ComputeStats(projects), "task stats")
}

// Search applies the case-insensitive task query and status filter.
func (h *ProjectHandler) Search(c *gin.Context) {
	projects, err := h.Svc.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load projects. Please try again.")
		return
	}
	result := application.SearchAndFilter(projects, c.Query("q"), c.Query("status"))
	response.Success(c, http.StatusOK, result, "search results")
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load project. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, p, "project")
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	members := make([]entity.ProjectMember, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, entity.ProjectMember{UserID: m.UserID, Email: m.Email, Role: m.Role})
	}
	p, err := h.Svc.CreateProject(c.Request.Context(), application.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Members:     members,
	})
	if err != nil {
		respondError(c, h.Logger, err, "Failed to save project. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, p, "project created")
}

func (h *ProjectHandler) AddTask(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.AddTask(c.Request.Context(), c.Param("id"), application.AddTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   c.GetString(middleware.CtxUserEmailKey),
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(c, h.Logger, err, "Failed to save task. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, t, "task created")
}

func (h *ProjectHandler) UpdateTaskStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.UpdateTaskStatus(c.Request.Context(), c.Param("id"), c.Param("taskId"), req.Status)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to update task status. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, t, "task status updated")
}
