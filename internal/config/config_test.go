package config

import "testing"

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("VECTOR_BACKEND", "memory")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error without GEMINI_API_KEY")
	}
}

func TestLoadConfigMongoRequiresURI(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VECTOR_BACKEND", "mongo")
	t.Setenv("MONGO_URI", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error without MONGO_URI for the mongo backend")
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VECTOR_BACKEND", "pinecone")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VECTOR_BACKEND", "memory")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.MaxChunkSize != 1000 || cfg.ChunkOverlap != 200 {
		t.Errorf("chunking defaults = %d/%d, want 1000/200", cfg.MaxChunkSize, cfg.ChunkOverlap)
	}
	if cfg.GeminiEmbeddingModel != "text-embedding-004" {
		t.Errorf("embedding model = %q", cfg.GeminiEmbeddingModel)
	}
	if cfg.VectorIndexName != "chunks_vector_index" {
		t.Errorf("index name = %q", cfg.VectorIndexName)
	}
	if cfg.VectorDimensions != 768 {
		t.Errorf("dimensions = %d, want 768", cfg.VectorDimensions)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VECTOR_BACKEND", "memory")
	t.Setenv("MAX_CHUNK_SIZE", "500")
	t.Setenv("CHUNK_OVERLAP", "100")
	t.Setenv("TOP_K", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxChunkSize != 500 || cfg.ChunkOverlap != 100 || cfg.TopK != 5 {
		t.Errorf("overrides not applied: %d/%d/%d", cfg.MaxChunkSize, cfg.ChunkOverlap, cfg.TopK)
	}
}
