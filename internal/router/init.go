package router

import (
	"github.com/talawarsneha/project-management-app/internal/application"
	"github.com/talawarsneha/project-management-app/internal/container"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	handlers "github.com/talawarsneha/project-management-app/internal/interface/http"
	"github.com/talawarsneha/project-management-app/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	store := container.GetStore()
	blobCodec := container.GetCodec()
	keys := container.GetKeys()
	logger := container.GetLogger()
	cfg := container.GetConfig()
	jwt := container.GetJWT()

	projects := kvstore.NewProjectRepository(store, blobCodec, keys, logger)
	users := kvstore.NewUserRepository(store, blobCodec, keys, logger)
	sessions := kvstore.NewSessionStore(store, blobCodec, keys)

	sessionSvc := application.NewSessionService(users, sessions, logger)
	projectSvc := application.NewProjectService(projects, logger, cfg.TaskAssigneeDomain)
	teamSvc := application.NewTeamService(users, logger)

	sessionHandler := handlers.NewSessionHandler(sessionSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	projectHandler := handlers.NewProjectHandler(projectSvc, logger)
	teamHandler := handlers.NewTeamHandler(teamSvc, logger)

	r.Add(modules.NewSessionModule(sessionHandler, sessions, jwt))
	r.Add(modules.NewProjectModule(projectHandler, sessions, jwt))
	r.Add(modules.NewTeamModule(teamHandler, sessions, jwt))
	r.Add(modules.NewDebugModule())
}
