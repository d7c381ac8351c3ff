package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
	"github.com/talawarsneha/project-management-app/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth validates the access token cookie and requires that the persisted
// session still belongs to the same user; logging out elsewhere on the
// device invalidates otherwise-valid tokens. Sets userID, userEmail, and
// userRole in the Gin context on success.
func Auth(sessions repository.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		sess, ok, err := sessions.Load(c.Request.Context())
		if err != nil || !ok || sess.User.ID != claims.UserID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, sess.User.ID)
		c.Set(CtxUserEmailKey, sess.User.Email)
		c.Set(CtxUserRoleKey, sess.User.Role)
		c.Next()
	}
}

// RequireRole guards manager-only routes; run it after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != role {
			response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
