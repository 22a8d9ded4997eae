package router

import (
	"github.com/yogaprasetya/akun-api/internal/application"
	"github.com/yogaprasetya/akun-api/internal/container"
	pginfra "github.com/yogaprasetya/akun-api/internal/infrastructure/postgres"
	handlers "github.com/yogaprasetya/akun-api/internal/interface/http"
	"github.com/yogaprasetya/akun-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(repo, container.GetTokens(), container.GetLogger())

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	userHandler := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, svc))
}
