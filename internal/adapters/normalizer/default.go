package normalizer

import (
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// DefaultNormalizer implements the default text normalization strategy.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize removes every whitespace rune. Runs collapse to nothing, not to a single space.
func (n *DefaultNormalizer) Normalize(text string) string {
	return lcs.StripWhitespace(text)
}
