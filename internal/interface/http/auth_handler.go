package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogaprasetya/akun-api/internal/application"
	"github.com/yogaprasetya/akun-api/pkg/response"
	"github.com/yogaprasetya/akun-api/pkg/validation"
)

// AuthHandler serves account creation and the password-for-token exchange.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Alamat   string `json:"alamat"`
	NomorHP  string `json:"nomor_hp"`
}

// registerResponse mirrors the original register reply, hash included.
// The plaintext credential is never echoed anywhere.
type registerResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Alamat   string `json:"alamat"`
	NomorHP  string `json:"nomor_hp"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ID          int64  `json:"id"`
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Alamat:   req.Alamat,
		NomorHP:  req.NomorHP,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, registerResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Password: u.Password,
		Alamat:   u.Alamat,
		NomorHP:  u.NomorHP,
	})
}

type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Token handles POST /token, the OAuth2 password flow: form-encoded
// credentials in, bearer token out.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) || errors.Is(err, application.ErrBadCredentials) {
			h.Logger.WithFields(logrus.Fields{
				"username": req.Username,
				"ip":       clientIP(c),
			}).Warn("login rejected")
			response.BearerChallenge(c, "Incorrect username or password")
			return
		}
		h.Logger.WithError(err).Error("authenticate failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, _, err := h.Svc.IssueToken(u, 0)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer", ID: u.ID})
}
