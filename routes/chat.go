package routes

import (
	"net/http"

	"rag-analyzer/internal/logger"
	"rag-analyzer/middleware"
	"rag-analyzer/models"
	"rag-analyzer/services"
	"rag-analyzer/utils"

	"github.com/gin-gonic/gin"
)

// SetupChatRoutes registers the question answering endpoint.
func SetupChatRoutes(router *gin.Engine, answers *services.AnswerService) {
	router.POST("/chat", func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data")
			return
		}

		answer, err := answers.Answer(c.Request.Context(), req.Question)
		if err != nil {
			status := services.StatusOf(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Chat failed",
					"error", err,
					"request_id", middleware.GetRequestID(c))
			}
			utils.RespondWithError(c, status, err.Error())
			return
		}

		c.JSON(http.StatusOK, models.ChatResponse{Answer: answer})
	})
}
