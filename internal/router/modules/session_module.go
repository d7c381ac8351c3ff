package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talawarsneha/project-management-app/internal/container"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	handlers "github.com/talawarsneha/project-management-app/internal/interface/http"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

type SessionModule struct {
	Handler  *handlers.SessionHandler
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
}

func NewSessionModule(h *handlers.SessionHandler, sessions repository.SessionStore, jwt *helpers.JWTManager) *SessionModule {
	return &SessionModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	// Login attempts are rate limited per client IP; redis failures fail open.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.POST("/auth/refresh", m.Handler.Refresh)
	rg.GET("/auth/session", m.Handler.Session)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
