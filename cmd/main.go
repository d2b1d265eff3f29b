package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rag-analyzer/internal/ai"
	"rag-analyzer/internal/config"
	"rag-analyzer/internal/logger"
	"rag-analyzer/internal/telemetry"
	"rag-analyzer/internal/vectorstore"
	"rag-analyzer/middleware"
	"rag-analyzer/routes"
	"rag-analyzer/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	// Optional tracing
	if cfg.OtelEnabled {
		shutdownTracer, err := telemetry.InitTracer("rag-analyzer", cfg.OtelEndpoint)
		if err != nil {
			log.Printf("Failed to initialize tracer: %v", err)
		} else {
			defer shutdownTracer()
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Fatal("Failed to initialize metrics:", err)
	}

	ctx := context.Background()

	// Vector store backend
	var store services.VectorStore
	switch cfg.VectorBackend {
	case "memory":
		store = vectorstore.NewMemoryStore()
		logger.Info("Using in-memory vector store")
	default:
		mongoClient, err := config.ConnectMongoDB(cfg)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			mongoClient.Disconnect(ctx)
		}()

		mongoStore := vectorstore.NewMongoStore(mongoClient, cfg.DBName, cfg.VectorIndexName, cfg.VectorDimensions)
		if err := mongoStore.EnsureSearchIndex(ctx); err != nil {
			logger.Warn("Vector search index bootstrap failed, create it on Atlas manually", "error", err)
		}
		store = mongoStore
	}

	// Gemini clients, constructed once and injected
	embedder, err := ai.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbeddingModel)
	if err != nil {
		log.Fatal("Failed to create Gemini embedder:", err)
	}
	defer embedder.Close()

	generator, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature, cfg.GeminiRPM)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}
	defer generator.Close()

	// Pipeline services
	uploads, err := services.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to create upload store:", err)
	}

	chunker, err := services.NewChunker(cfg.MaxChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatal("Invalid chunking config:", err)
	}

	ingest := services.NewIngestService(uploads, services.NewPDFExtractor(), chunker, embedder, store)
	answers := services.NewAnswerService(embedder, store, generator, cfg.TopK)

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestSizeLimit(cfg.MaxFileSize))
	router.Use(middleware.MetricsMiddleware(metrics))
	if cfg.OtelEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}

	// Redis-backed rate limiting, enabled only when configured
	if cfg.RedisURL != "" {
		rdb, err := config.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, rate limiting disabled", "error", err)
		} else {
			defer rdb.Close()
			router.Use(middleware.RateLimitMiddleware(rdb, cfg))
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	// Setup routes
	routes.SetupUploadRoutes(router, ingest, metrics)
	routes.SetupChatRoutes(router, answers)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Background sweep of staged uploads leaked by crashed requests
	janitor := services.NewJanitor(uploads,
		time.Duration(cfg.CleanupEveryMin)*time.Minute,
		time.Duration(cfg.UploadTTLMin)*time.Minute)
	if err := janitor.Start(); err != nil {
		logger.Warn("Failed to start upload janitor", "error", err)
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	janitor.Stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
