package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	handlers "github.com/talawarsneha/project-management-app/internal/interface/http"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

type ProjectModule struct {
	Handler  *handlers.ProjectHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	{
		auth.GET("/projects", m.Handler.List)
		auth.GET("/projects/mine", m.Handler.Mine)
		auth.GET("/projects/stats", m.Handler.Stats)
		auth.GET("/projects/search", m.Handler.Search)
		auth.GET("/projects/:id", m.Handler.Get)

		// Status updates stay open to members so they can move their own work.
		auth.PATCH("/projects/:id/tasks/:taskId/status", m.Handler.UpdateTaskStatus)

		manager := auth.Group("/")
		manager.Use(middleware.RequireRole(entity.RoleManager))
		{
			manager.POST("/projects", m.Handler.Create)
			manager.POST("/projects/:id/tasks", m.Handler.AddTask)
		}
	}
}
