package middleware

import (
	"net/http"

	"rag-analyzer/utils"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimit rejects request bodies above maxSize before reading
// them. MaxBytesReader backstops clients that lie about Content-Length.
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "Request body exceeds maximum size")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
