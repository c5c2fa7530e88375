package normalizer

import (
	"unicode/utf8"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// FastNormalizer strips whitespace with a precomputed ASCII table and pooled buffers.
// Its output is identical to DefaultNormalizer.
type FastNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiSpace [128]bool

	bytePool *pool.BufferPool
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		n.asciiSpace[i] = lcs.IsWhitespace(rune(i))
	}

	return n
}

// Normalize removes whitespace, taking a byte-level path for ASCII-only input.
func (n *FastNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			asciiOnly = false
			break
		}
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	if asciiOnly {
		for i := 0; i < len(text); i++ {
			b := text[i]
			if !n.asciiSpace[b] {
				*buffer = append(*buffer, b)
			}
		}
		return string(*buffer)
	}

	// Whitespace is ASCII only, so every multi-byte rune is kept.
	for _, r := range text {
		if r < utf8.RuneSelf {
			if !n.asciiSpace[r] {
				*buffer = append(*buffer, byte(r))
			}
			continue
		}
		*buffer = utf8.AppendRune(*buffer, r)
	}

	return string(*buffer)
}
