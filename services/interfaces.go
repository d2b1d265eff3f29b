package services

import (
	"context"

	"rag-analyzer/models"
)

// Embedder turns one piece of text into a vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a completion for a fully assembled prompt.
type Generator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// VectorStore persists embedded chunks and serves similarity queries.
// Upsert replaces any chunk already stored under the same ChunkID. Query
// returns at most k chunks ordered by descending similarity.
type VectorStore interface {
	Upsert(ctx context.Context, chunks []models.StoredChunk) error
	Query(ctx context.Context, vector []float32, k int) ([]models.RetrievedChunk, error)
}
