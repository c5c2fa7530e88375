package ports

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between documents.
type SimilarityCalculator interface {
	Compute(ctx context.Context, original, candidate domain.Document) domain.Result
}
