package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigins []string

	// Gemini
	GeminiAPIKey         string
	GeminiModel          string
	GeminiEmbeddingModel string
	GeminiTemperature    float64
	GeminiRPM            int

	// Vector store
	VectorBackend    string // "mongo" (default), "memory"
	MongoURI         string
	DBName           string
	VectorIndexName  string
	VectorDimensions int
	TopK             int

	// Chunking
	MaxChunkSize int
	ChunkOverlap int

	// Upload staging
	MaxFileSize     int64
	UploadDir       string
	UploadTTLMin    int
	CleanupEveryMin int

	// Redis (rate limiting; empty URL disables it)
	RedisURL        string
	RedisPassword   string
	RedisDB         int
	RateLimitReqs   int
	RateLimitWindow int

	// Telemetry
	OtelEnabled  bool
	OtelEndpoint string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),

		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiEmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		GeminiTemperature:    getEnvFloat64("GEMINI_TEMPERATURE", 0.3),
		GeminiRPM:            getEnvInt("GEMINI_RPM", 15),

		VectorBackend:    getEnv("VECTOR_BACKEND", "mongo"),
		MongoURI:         getEnv("MONGO_URI", ""),
		DBName:           getEnv("DB_NAME", "rag_analyzer"),
		VectorIndexName:  getEnv("MONGO_VECTOR_INDEX", "chunks_vector_index"),
		VectorDimensions: getEnvInt("VECTOR_DIM", 768),
		TopK:             getEnvInt("TOP_K", 3),

		MaxChunkSize: getEnvInt("MAX_CHUNK_SIZE", 1000),
		ChunkOverlap: getEnvInt("CHUNK_OVERLAP", 200),

		MaxFileSize:     getEnvInt64("MAX_FILE_SIZE", 10485760), // 10MB
		UploadDir:       getEnv("UPLOAD_DIR", "./temp_uploads"),
		UploadTTLMin:    getEnvInt("UPLOAD_TTL_MINUTES", 60),
		CleanupEveryMin: getEnvInt("CLEANUP_INTERVAL_MINUTES", 30),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RateLimitReqs:   getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),

		OtelEnabled:  getEnvBool("OTEL_ENABLED", false),
		OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	// Validate required fields
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required - set it in .env file")
	}

	switch cfg.VectorBackend {
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required when VECTOR_BACKEND=mongo")
		}
	case "memory":
	default:
		return nil, fmt.Errorf("unknown VECTOR_BACKEND %q (want mongo or memory)", cfg.VectorBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
