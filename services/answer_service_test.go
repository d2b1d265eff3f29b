package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rag-analyzer/models"
)

func TestAnswerJoinsContextMostRelevantFirst(t *testing.T) {
	store := &fakeVectorStore{hits: []models.RetrievedChunk{
		{Text: "Paris is the capital of France.", Score: 0.92},
		{Text: "France is in Europe.", Score: 0.61},
		{Text: "The Seine crosses Paris.", Score: 0.47},
	}}
	generator := &fakeGenerator{answer: "Paris."}
	svc := NewAnswerService(&fakeEmbedder{}, store, generator, 3)

	answer, err := svc.Answer(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != "Paris." {
		t.Errorf("answer = %q", answer)
	}

	if len(generator.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(generator.prompts))
	}
	prompt := generator.prompts[0]
	wantContext := "Paris is the capital of France.\n\nFrance is in Europe.\n\nThe Seine crosses Paris."
	if !strings.Contains(prompt, wantContext) {
		t.Errorf("prompt does not join chunks most relevant first:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Question: What is the capital of France?") {
		t.Errorf("prompt is missing the question verbatim:\n%s", prompt)
	}
	if store.lastK != 3 {
		t.Errorf("queried k = %d, want 3", store.lastK)
	}
}

func TestAnswerNoHitsStillAsksModel(t *testing.T) {
	store := &fakeVectorStore{}
	generator := &fakeGenerator{answer: "I don't know."}
	svc := NewAnswerService(&fakeEmbedder{}, store, generator, 3)

	answer, err := svc.Answer(context.Background(), "Anything indexed?")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != "I don't know." {
		t.Errorf("answer = %q", answer)
	}
	if len(generator.prompts) != 1 {
		t.Fatalf("generator must still be asked with an empty context")
	}
	if !strings.Contains(generator.prompts[0], "Context: \n") {
		t.Errorf("expected an empty context section:\n%s", generator.prompts[0])
	}
}

func TestAnswerDefaultsTopK(t *testing.T) {
	store := &fakeVectorStore{}
	svc := NewAnswerService(&fakeEmbedder{}, store, &fakeGenerator{answer: "ok"}, 0)

	if _, err := svc.Answer(context.Background(), "q"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if store.lastK != 3 {
		t.Errorf("default k = %d, want 3", store.lastK)
	}
}

func TestAnswerEmbedFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("embedding backend down")}
	generator := &fakeGenerator{}
	svc := NewAnswerService(embedder, &fakeVectorStore{}, generator, 3)

	_, err := svc.Answer(context.Background(), "q")
	if kind, ok := KindOf(err); !ok || kind != KindEmbedding {
		t.Errorf("expected embedding kind, got %v", err)
	}
	if len(generator.prompts) != 0 {
		t.Errorf("model must not run after an embedding failure")
	}
}

func TestAnswerQueryFailure(t *testing.T) {
	store := &fakeVectorStore{queryErr: errors.New("index unavailable")}
	generator := &fakeGenerator{}
	svc := NewAnswerService(&fakeEmbedder{}, store, generator, 3)

	_, err := svc.Answer(context.Background(), "q")
	if kind, ok := KindOf(err); !ok || kind != KindStoreQuery {
		t.Errorf("expected store query kind, got %v", err)
	}
	if len(generator.prompts) != 0 {
		t.Errorf("model must not run after a retrieval failure")
	}
}

func TestAnswerModelFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("model temporarily unavailable")}
	svc := NewAnswerService(&fakeEmbedder{}, &fakeVectorStore{}, generator, 3)

	_, err := svc.Answer(context.Background(), "q")
	if kind, ok := KindOf(err); !ok || kind != KindModel {
		t.Errorf("expected model kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "model temporarily unavailable") {
		t.Errorf("underlying cause missing from %q", err.Error())
	}
}
