package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatus(t *testing.T) {
	if got := KindInvalidInput.Status(); got != http.StatusBadRequest {
		t.Errorf("invalid input should map to 400, got %d", got)
	}
	for _, kind := range []Kind{KindStorage, KindExtraction, KindEmbedding, KindStoreWrite, KindStoreQuery, KindModel} {
		if got := kind.Status(); got != http.StatusInternalServerError {
			t.Errorf("%s should map to 500, got %d", kind, got)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindInvalidInput: "invalid_input",
		KindStorage:      "storage_error",
		KindExtraction:   "extraction_error",
		KindEmbedding:    "embedding_error",
		KindStoreWrite:   "store_write_error",
		KindStoreQuery:   "store_query_error",
		KindModel:        "model_error",
		Kind(99):         "unknown_error",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestPipelineErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Errorf(KindStoreWrite, "failed to store chunks: %w", cause)

	if err.Error() != "failed to store chunks: connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("wrapped cause must stay reachable through the chain")
	}
}

func TestKindOf(t *testing.T) {
	err := NewError(KindEmbedding, errors.New("quota exhausted"))

	kind, ok := KindOf(err)
	if !ok || kind != KindEmbedding {
		t.Errorf("KindOf = (%v, %v), want (KindEmbedding, true)", kind, ok)
	}

	// Kind survives further wrapping
	wrapped := fmt.Errorf("ingest: %w", err)
	kind, ok = KindOf(wrapped)
	if !ok || kind != KindEmbedding {
		t.Errorf("KindOf of wrapped = (%v, %v), want (KindEmbedding, true)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Errorf("plain errors carry no kind")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(Errorf(KindInvalidInput, "bad name")); got != http.StatusBadRequest {
		t.Errorf("StatusOf invalid input = %d, want 400", got)
	}
	if got := StatusOf(Errorf(KindModel, "breaker open")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf model error = %d, want 500", got)
	}
	if got := StatusOf(errors.New("unclassified")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf unclassified = %d, want 500", got)
	}
}
