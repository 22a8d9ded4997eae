package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/yogaprasetya/akun-api/internal/application"
	handlers "github.com/yogaprasetya/akun-api/internal/interface/http"
	"github.com/yogaprasetya/akun-api/internal/interface/middleware"
)

// UserModule wires profile routes.
// Public: GET /users/:user_id, PATCH /users/:user_id
// Protected: GET /me (bearer token)
type UserModule struct {
	Handler *handlers.UserHandler
	Svc     *application.Service
}

func NewUserModule(h *handlers.UserHandler, svc *application.Service) *UserModule {
	return &UserModule{Handler: h, Svc: svc}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/:user_id", m.Handler.GetUser)
	rg.PATCH("/users/:user_id", m.Handler.UpdateUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
