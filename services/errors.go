package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure. The set is closed: every error the
// ingestion and answer pipelines can surface carries exactly one of these.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindStorage
	KindExtraction
	KindEmbedding
	KindStoreWrite
	KindStoreQuery
	KindModel
)

// String returns the stable snake_case code used in logs.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindStorage:
		return "storage_error"
	case KindExtraction:
		return "extraction_error"
	case KindEmbedding:
		return "embedding_error"
	case KindStoreWrite:
		return "store_write_error"
	case KindStoreQuery:
		return "store_query_error"
	case KindModel:
		return "model_error"
	default:
		return "unknown_error"
	}
}

// Status maps the kind to its HTTP status. Only bad input is a client
// error; everything else is a dependency or local failure.
func (k Kind) Status() int {
	if k == KindInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PipelineError is a classified failure. The wrapped error keeps the
// underlying cause reachable via errors.Is / errors.As.
type PipelineError struct {
	Kind Kind
	Err  error
}

func (e *PipelineError) Error() string { return e.Err.Error() }

func (e *PipelineError) Unwrap() error { return e.Err }

// NewError wraps err with a kind.
func NewError(kind Kind, err error) *PipelineError {
	return &PipelineError{Kind: kind, Err: err}
}

// Errorf builds a classified error; the format supports %w.
func Errorf(kind Kind, format string, a ...any) *PipelineError {
	return &PipelineError{Kind: kind, Err: fmt.Errorf(format, a...)}
}

// KindOf extracts the kind from an error chain, or ok=false when the error
// did not originate in a pipeline.
func KindOf(err error) (Kind, bool) {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

// StatusOf maps any error to an HTTP status, defaulting to 500 for
// unclassified failures.
func StatusOf(err error) int {
	if kind, ok := KindOf(err); ok {
		return kind.Status()
	}
	return http.StatusInternalServerError
}
