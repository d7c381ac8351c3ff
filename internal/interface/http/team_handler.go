package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/application"
	"github.com/talawarsneha/project-management-app/pkg/response"
	"github.com/talawarsneha/project-management-app/pkg/validation"
)

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type addMemberRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.Svc.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load team members. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, members, "team members")
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.AddMember(c.Request.Context(), application.AddMemberInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, h.Logger, err, "Failed to add team member. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, u, "team member added")
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	if err := h.Svc.RemoveMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, err, "Failed to remove team member. Please try again.")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"removed": true}, "team member removed")
}
