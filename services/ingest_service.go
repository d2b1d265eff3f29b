package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"rag-analyzer/internal/logger"
	"rag-analyzer/models"
)

// IngestService runs the upload pipeline: stage the file, extract its
// text, chunk, embed every chunk and write the whole batch to the vector
// store in one call.
type IngestService struct {
	uploads   *UploadStore
	extractor TextExtractor
	chunker   *Chunker
	embedder  Embedder
	store     VectorStore
}

func NewIngestService(uploads *UploadStore, extractor TextExtractor, chunker *Chunker, embedder Embedder, store VectorStore) *IngestService {
	return &IngestService{
		uploads:   uploads,
		extractor: extractor,
		chunker:   chunker,
		embedder:  embedder,
		store:     store,
	}
}

// Ingest processes one uploaded PDF and returns the number of chunks
// written. The filename is checked before the upload is opened, so a
// rejected extension never touches disk. The staged copy is removed on
// every path once processing ends.
func (s *IngestService) Ingest(ctx context.Context, header *multipart.FileHeader) (int, error) {
	filename := filepath.Base(header.Filename)
	if !strings.HasSuffix(filename, ".pdf") {
		return 0, Errorf(KindInvalidInput, "Invalid file type. Only PDFs are allowed.")
	}

	src, err := header.Open()
	if err != nil {
		return 0, Errorf(KindStorage, "could not read upload: %w", err)
	}
	defer src.Close()

	path, cleanup, err := s.uploads.Stage(src)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	text, err := s.extractor.ExtractText(ctx, path)
	if err != nil {
		return 0, err
	}

	chunks := s.chunker.Chunk(text)
	if len(chunks) == 0 {
		logger.Info("Upload produced no text", "filename", filename)
		return 0, nil
	}

	docID := uuid.NewString()
	now := time.Now().UTC()
	stored := make([]models.StoredChunk, 0, len(chunks))
	for _, chunk := range chunks {
		vector, err := s.embedder.EmbedText(ctx, chunk.Text)
		if err != nil {
			return 0, Errorf(KindEmbedding, "failed to embed chunk %d: %w", chunk.Order, err)
		}
		stored = append(stored, models.StoredChunk{
			ChunkID:   fmt.Sprintf("%s_%d", docID, chunk.Order),
			Text:      chunk.Text,
			Vector:    vector,
			Source:    filename,
			Order:     chunk.Order,
			Offset:    chunk.Offset,
			CreatedAt: now,
		})
	}

	if err := s.store.Upsert(ctx, stored); err != nil {
		return 0, Errorf(KindStoreWrite, "failed to store chunks: %w", err)
	}

	logger.Info("Processed upload", "filename", filename, "chunks", len(stored))
	return len(stored), nil
}
