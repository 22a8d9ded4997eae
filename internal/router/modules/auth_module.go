package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/yogaprasetya/akun-api/internal/interface/http"
)

// AuthModule wires the public account endpoints.
// POST /register, POST /token
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/token", m.Handler.Token)
}
