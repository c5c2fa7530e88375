package lcs

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// MetricName identifies results produced by this package.
const MetricName = "lcs_similarity"

// SimilarityConfig holds configuration for the LCS similarity calculator.
type SimilarityConfig struct {
	// Threshold at or above which a pair is flagged as potential plagiarism.
	Threshold float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: 0.5,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	return nil
}

// Calculator implements the LCS similarity calculation.
type Calculator struct {
	config     SimilarityConfig
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a new LCS similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Calculator{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Compute calculates the LCS similarity between two documents.
// Score equals ComputeSimilarity for the same inputs when the normalizer only strips whitespace.
func (c *Calculator) Compute(ctx context.Context, original, candidate domain.Document) domain.Result {
	c.logger.Debug("Starting LCS similarity computation",
		"original_present", original.Present(),
		"candidate_present", candidate.Present(),
		"original_bytes", len(original.Text()),
		"candidate_bytes", len(candidate.Text()),
	)

	details := make(map[string]interface{})

	o := decide(original, candidate, c.normalizer.Normalize)
	defer o.release()
	if o.stage == StageLCS {
		// Check context cancellation.
		select {
		case <-ctx.Done():
			c.logger.Error("Computation cancelled", "error", ctx.Err())
			details["error"] = "computation cancelled"
			return domain.Result{
				Name:      MetricName,
				Score:     0,
				Flagged:   false,
				Threshold: c.config.Threshold,
				Details:   details,
			}
		default:
		}

		c.logger.Debug("Running LCS dynamic program",
			"original_length", o.origLen(),
			"candidate_length", o.candLen(),
			"table_cells", TableCells(o.origLen(), o.candLen()),
		)
		o.finish()
	}

	flagged := o.score >= c.config.Threshold

	details["stage"] = o.stage
	details["original_length"] = o.origLen()
	details["candidate_length"] = o.candLen()
	details["lcs_length"] = o.lcsLength
	details["threshold"] = c.config.Threshold

	c.logger.Debug("Computed LCS similarity",
		"score", o.score,
		"flagged", flagged,
		"details", details,
	)

	return domain.Result{
		Name:            MetricName,
		Score:           o.score,
		Flagged:         flagged,
		OriginalLength:  o.origLen(),
		CandidateLength: o.candLen(),
		LCSLength:       o.lcsLength,
		Threshold:       c.config.Threshold,
		Details:         details,
	}
}
