package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogaprasetya/akun-api/internal/application"
	"github.com/yogaprasetya/akun-api/internal/domain/entity"
	"github.com/yogaprasetya/akun-api/internal/interface/middleware"
	"github.com/yogaprasetya/akun-api/pkg/response"
)

// UserHandler serves profile reads and partial updates.
type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// userInfo is the profile shape: no id, no hash.
type userInfo struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Alamat   string `json:"alamat"`
	NomorHP  string `json:"nomor_hp"`
}

func toUserInfo(u *entity.User) userInfo {
	return userInfo{Email: u.Email, Username: u.Username, Alamat: u.Alamat, NomorHP: u.NomorHP}
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

// GetUser handles GET /users/:user_id. A miss is an explicit 404 rather
// than an empty payload.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).Error("get user failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, toUserInfo(u))
}

type updateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username"`
	Alamat   *string `json:"alamat"`
	NomorHP  *string `json:"nomor_hp"`
}

// UpdateUser handles PATCH /users/:user_id. Only fields present in the
// body are overwritten; an empty or absent body is a 400.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	in := application.UpdateInput{
		Email:    req.Email,
		Username: req.Username,
		Alamat:   req.Alamat,
		NomorHP:  req.NomorHP,
	}
	if in.Empty() {
		response.Detail(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).Error("update user failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, toUserInfo(u))
}

// Me handles GET /me for the bearer-authenticated account.
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.BearerChallenge(c, "Could not validate credentials")
		return
	}
	c.JSON(http.StatusOK, toUserInfo(u))
}
