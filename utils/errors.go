package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every failed request. The detail
// field carries the underlying error message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondWithError sends the error envelope with the given status
func RespondWithError(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// RespondWithBadRequest sends a 400 Bad Request error
func RespondWithBadRequest(c *gin.Context, detail string) {
	RespondWithError(c, http.StatusBadRequest, detail)
}

// RespondWithInternalError sends a 500 Internal Server Error
func RespondWithInternalError(c *gin.Context, detail string) {
	RespondWithError(c, http.StatusInternalServerError, detail)
}
