package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yogaprasetya/akun-api/internal/application"
	"github.com/yogaprasetya/akun-api/internal/domain/entity"
	"github.com/yogaprasetya/akun-api/pkg/response"
)

const ctxUserKey = "currentUser"

// Auth validates the Authorization bearer token and resolves it to an
// active user, which it stores in the Gin context for handlers.
func Auth(svc *application.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.BearerChallenge(c, "Not authenticated")
			return
		}
		u, err := svc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, application.ErrInactive) {
				response.AbortDetail(c, http.StatusBadRequest, "Inactive user")
				return
			}
			response.BearerChallenge(c, "Could not validate credentials")
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth, or nil outside it.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
