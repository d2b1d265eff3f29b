package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"rag-analyzer/internal/logger"
	"rag-analyzer/internal/telemetry"
	"rag-analyzer/middleware"
	"rag-analyzer/models"
	"rag-analyzer/services"
	"rag-analyzer/utils"

	"github.com/gin-gonic/gin"
)

// SetupUploadRoutes registers the PDF ingestion endpoint.
func SetupUploadRoutes(router *gin.Engine, ingest *services.IngestService, metrics *telemetry.Metrics) {
	router.POST("/upload", func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			utils.RespondWithBadRequest(c, "No file provided. Send the PDF as multipart field 'file'.")
			return
		}

		start := time.Now()
		total, err := ingest.Ingest(c.Request.Context(), header)
		if err != nil {
			status := services.StatusOf(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Upload failed",
					"filename", header.Filename,
					"error", err,
					"request_id", middleware.GetRequestID(c))
			}
			metrics.RecordPDFProcessing(time.Since(start).Seconds(), "error")
			utils.RespondWithError(c, status, err.Error())
			return
		}

		metrics.RecordPDFProcessing(time.Since(start).Seconds(), "success")
		metrics.RecordChunksStored(int64(total))

		c.JSON(http.StatusOK, models.UploadResponse{
			Message:     "File successfully uploaded and processed.",
			Filename:    filepath.Base(header.Filename),
			TotalChunks: total,
		})
	})
}
