package services

import (
	"context"
	"fmt"
	"strings"

	"rag-analyzer/internal/logger"
)

const answerPromptTemplate = `Use the following pieces of retrieved context to answer the question.
If you don't know the answer, just say that you don't know.
Keep the answer concise and professional.

Context: %s

Question: %s

Answer:`

// AnswerService runs the question pipeline: embed the question, retrieve
// the most similar chunks, assemble the prompt and ask the model.
type AnswerService struct {
	embedder  Embedder
	store     VectorStore
	generator Generator
	topK      int
}

func NewAnswerService(embedder Embedder, store VectorStore, generator Generator, topK int) *AnswerService {
	if topK <= 0 {
		topK = 3
	}
	return &AnswerService{
		embedder:  embedder,
		store:     store,
		generator: generator,
		topK:      topK,
	}
}

// Answer returns the model's completion for the question, grounded on the
// most similar stored chunks joined most-relevant first. When nothing is
// retrieved the model is still asked, with an empty context.
func (s *AnswerService) Answer(ctx context.Context, question string) (string, error) {
	vector, err := s.embedder.EmbedText(ctx, question)
	if err != nil {
		return "", Errorf(KindEmbedding, "failed to embed question: %w", err)
	}

	hits, err := s.store.Query(ctx, vector, s.topK)
	if err != nil {
		return "", Errorf(KindStoreQuery, "failed to query vector store: %w", err)
	}

	parts := make([]string, 0, len(hits))
	for _, hit := range hits {
		parts = append(parts, hit.Text)
	}
	prompt := fmt.Sprintf(answerPromptTemplate, strings.Join(parts, "\n\n"), question)

	answer, err := s.generator.GenerateAnswer(ctx, prompt)
	if err != nil {
		return "", Errorf(KindModel, "failed to generate answer: %w", err)
	}

	logger.Debug("Answered question", "retrieved", len(hits))
	return answer, nil
}
