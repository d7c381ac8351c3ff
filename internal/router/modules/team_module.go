package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	handlers "github.com/talawarsneha/project-management-app/internal/interface/http"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

type TeamModule struct {
	Handler  *handlers.TeamHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewTeamModule(h *handlers.TeamHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *TeamModule {
	return &TeamModule{Handler: h, Sessions: sessions, JWT: jwt}
}

// Team management is manager-only end to end.
func (m *TeamModule) Register(rg *gin.RouterGroup) {
	team := rg.Group("/team")
	team.Use(middleware.Auth(m.Sessions, m.JWT))
	team.Use(middleware.RequireRole(entity.RoleManager))
	{
		team.GET("/members", m.Handler.ListMembers)
		team.POST("/members", m.Handler.AddMember)
		team.DELETE("/members/:id", m.Handler.RemoveMember)
	}
}
