package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload shape the API clients already consume:
// a single "detail" member, either a message string or a field->message map.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// Detail writes an error response with the given status and detail payload.
func Detail(c *gin.Context, status int, detail interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{Detail: detail})
}

// AbortDetail writes an error response and aborts the handler chain.
// Used from middleware.
func AbortDetail(c *gin.Context, status int, detail interface{}) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}

// BearerChallenge writes a 401 with the WWW-Authenticate: Bearer header,
// as the token endpoint and protected routes must.
func BearerChallenge(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Detail: detail})
}
