package ports

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

// DocumentSource loads a full document by location (a file path for the CLI).
type DocumentSource interface {
	Read(ctx context.Context, location string) (domain.Document, error)
}

// ResultSink delivers a formatted result to a destination. Implementations
// must not leave partial output behind on failure.
type ResultSink interface {
	Write(ctx context.Context, location string, formatted string) error
}
