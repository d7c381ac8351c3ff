package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/application"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
	"github.com/talawarsneha/project-management-app/pkg/response"
	"github.com/talawarsneha/project-management-app/pkg/validation"
)

type SessionHandler struct {
	Svc     *application.SessionService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewSessionHandler(svc *application.SessionService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *SessionHandler {
	return &SessionHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(u entity.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Cookies.Clear(c)
		respondError(c, h.Logger, err, "Failed to sign in. Please try again.")
		return
	}

	if err := h.setTokenPair(c, *u); err != nil {
		respondError(c, h.Logger, err, "Failed to sign in. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, userPayload(*u), "login successful")
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context())
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Session reports the restored session, if any. The mobile client calls
// this once at startup to decide between the login and dashboard routes.
func (h *SessionHandler) Session(c *gin.Context) {
	u, ok := h.Svc.Restore(c.Request.Context())
	if !ok {
		response.Success[any](c, http.StatusOK, gin.H{"authenticated": false}, "anonymous")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"authenticated": true, "user": userPayload(*u)}, "session restored")
}

// Refresh rotates the cookie pair when the refresh token is valid and the
// persisted session still belongs to the same user.
func (h *SessionHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	claims, err := h.JWT.ParseRefreshToken(refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	u, ok := h.Svc.Restore(c.Request.Context())
	if !ok || u.ID != claims.UserID {
		response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
		return
	}
	if err := h.setTokenPair(c, *u); err != nil {
		respondError(c, h.Logger, err, "Failed to refresh session. Please try again.")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed")
}

// Profile returns the authenticated user's own record.
func (h *SessionHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load profile. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"name":      u.Name,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}, "profile")
}

func (h *SessionHandler) setTokenPair(c *gin.Context, u entity.User) error {
	access, aexp, err := h.JWT.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return err
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(u.ID, u.Email, u.Role)
	if err != nil {
		return err
	}
	h.Cookies.SetPair(c, access, aexp, refresh, rexp)
	return nil
}
