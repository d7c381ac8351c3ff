package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talawarsneha/project-management-app/internal/application"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/recordstore"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
	"github.com/talawarsneha/project-management-app/pkg/validation"
)

type testApp struct {
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := recordstore.NewMemoryStore()
	c := codec.New(logger)
	keys := kvstore.NewKeys("")

	users := kvstore.NewUserRepository(store, c, keys, logger)
	projects := kvstore.NewProjectRepository(store, c, keys, logger)
	sessions := kvstore.NewSessionStore(store, c, keys)

	for _, u := range []struct {
		id, email, role, password string
	}{
		{"manager1", "manager@example.com", entity.RoleManager, "manager123"},
		{"member1", "member@example.com", entity.RoleMember, "member123"},
	} {
		hash, err := helpers.HashPassword(u.password)
		require.NoError(t, err)
		_, err = users.Create(context.Background(), entity.User{ID: u.id, Email: u.email, Role: u.role, Password: hash})
		require.NoError(t, err)
	}

	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	sessionSvc := application.NewSessionService(users, sessions, logger)
	projectSvc := application.NewProjectService(projects, logger, "")

	sh := NewSessionHandler(sessionSvc, jwt, logger, "", false)
	ph := NewProjectHandler(projectSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/login", sh.Login)
	api.POST("/logout", sh.Logout)
	api.GET("/session", sh.Session)

	authed := api.Group("")
	authed.Use(middleware.Auth(sessions, jwt))
	authed.GET("/projects", ph.List)
	authed.GET("/projects/mine", ph.Mine)
	authed.PATCH("/projects/:id/tasks/:taskId/status", ph.UpdateTaskStatus)

	manager := authed.Group("")
	manager.Use(middleware.RequireRole(entity.RoleManager))
	manager.POST("/projects", ph.Create)
	manager.POST("/projects/:id/tasks", ph.AddTask)

	return &testApp{router: r}
}

func (a *testApp) do(t *testing.T, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", `{"email":"`+email+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/login", `{"email":"manager@example.com","password":"manager123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "manager1", data["id"])
	assert.NotContains(t, w.Body.String(), "password")

	names := []string{}
	for _, ck := range w.Result().Cookies() {
		names = append(names, ck.Name)
	}
	assert.Contains(t, names, "access_token")
	assert.Contains(t, names, "refresh_token")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/login", `{"email":"manager@example.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/api/login", `{"email":"not-an-email","password":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionEndpointReflectsLoginState(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataField(t, w)["authenticated"])

	cookies := app.login(t, "member@example.com", "member123")

	w = app.do(t, http.MethodGet, "/api/session", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataField(t, w)["authenticated"])

	w = app.do(t, http.MethodPost, "/api/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/session", "", nil)
	assert.Equal(t, false, dataField(t, w)["authenticated"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMemberCannotCreateProjects(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "member@example.com", "member123")

	w := app.do(t, http.MethodPost, "/api/projects", `{"name":"Forbidden"}`, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Full manager/member flow over HTTP. The session record is singular, so
// the member logs in after the manager has finished setting up.
func TestProjectLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	managerCookies := app.login(t, "manager@example.com", "manager123")

	createBody := `{"name":"Launch","members":[` +
		`{"userId":"manager1","email":"manager@example.com","role":"manager"},` +
		`{"userId":"member1","email":"member@example.com","role":"member"}]}`
	w := app.do(t, http.MethodPost, "/api/projects", createBody, managerCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	projectID, _ := dataField(t, w)["id"].(string)
	require.NotEmpty(t, projectID)

	w = app.do(t, http.MethodPost, "/api/projects/"+projectID+"/tasks",
		`{"title":"Write copy","assignedTo":"member@example.com"}`, managerCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	taskID, _ := dataField(t, w)["id"].(string)
	require.NotEmpty(t, taskID)
	assert.Equal(t, entity.StatusToDo, dataField(t, w)["status"])

	w = app.do(t, http.MethodPost, "/api/projects/"+projectID+"/tasks",
		`{"title":"Bad status","status":"Blocked"}`, managerCookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	memberCookies := app.login(t, "member@example.com", "member123")

	// logging in as the member invalidated the manager's token pair
	w = app.do(t, http.MethodPost, "/api/projects", `{"name":"Stale"}`, managerCookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/projects/mine", "", memberCookies)
	require.Equal(t, http.StatusOK, w.Code)
	var mineEnvelope struct {
		Data []entity.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mineEnvelope))
	require.Len(t, mineEnvelope.Data, 1)
	require.Len(t, mineEnvelope.Data[0].Tasks, 1)
	assert.Equal(t, "Write copy", mineEnvelope.Data[0].Tasks[0].Title)

	w = app.do(t, http.MethodPatch, "/api/projects/"+projectID+"/tasks/"+taskID+"/status",
		`{"status":"Completed"}`, memberCookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.StatusCompleted, dataField(t, w)["status"])

	w = app.do(t, http.MethodPatch, "/api/projects/"+projectID+"/tasks/missing/status",
		`{"status":"Completed"}`, memberCookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
