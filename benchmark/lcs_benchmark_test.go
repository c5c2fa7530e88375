package benchmark

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	lcssimilarity "github.com/baditaflorin/go_lcs_similarity"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/l"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and is commonly used for testing text processing algorithms and systems."
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	// Ensure we don't return more than requested size
	if sb.Len() > size {
		return sb.String()[:size]
	}

	return sb.String()
}

func generateCJKText(runes int) string {
	sample := []rune("今天是星期天，天气晴。我们一起去公园散步，看见很多人在放风筝。")
	out := make([]rune, runes)
	for i := range out {
		out[i] = sample[i%len(sample)]
	}
	return string(out)
}

// BenchmarkNormalizers compares the performance of the normalizers
func BenchmarkNormalizers(b *testing.B) {
	smallText := generateText(100)
	mediumText := generateText(10000)
	largeText := generateText(100000)
	cjkText := generateCJKText(10000)

	factory := normalizer.NewNormalizerFactory()

	benchmarks := []struct {
		name     string
		normType normalizer.NormalizerType
		input    string
	}{
		{"Default-Small", normalizer.DefaultNormalizerType, smallText},
		{"Default-Medium", normalizer.DefaultNormalizerType, mediumText},
		{"Default-Large", normalizer.DefaultNormalizerType, largeText},
		{"Default-CJK", normalizer.DefaultNormalizerType, cjkText},

		{"Fast-Small", normalizer.FastNormalizerType, smallText},
		{"Fast-Medium", normalizer.FastNormalizerType, mediumText},
		{"Fast-Large", normalizer.FastNormalizerType, largeText},
		{"Fast-CJK", normalizer.FastNormalizerType, cjkText},
	}

	for _, bm := range benchmarks {
		norm := factory.CreateNormalizer(bm.normType)

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_ = norm.Normalize(bm.input)
			}
		})
	}
}

// BenchmarkLCSLength compares the rolling-row DP with the full table
func BenchmarkLCSLength(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"100", 100},
		{"1000", 1000},
		{"5000", 5000},
	}

	for _, sz := range sizes {
		a := []rune(generateText(sz.size))
		c := []rune(strings.Replace(generateText(sz.size), "the", "a", -1))

		b.Run("Rolling-"+sz.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = lcs.LCSLength(a, c)
			}
		})

		if sz.size > 1000 {
			continue
		}
		b.Run("Table-"+sz.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = lcs.LCSTable(a, c)
			}
		})
	}
}

// BenchmarkComputeSimilarity covers the early exits and the DP path
func BenchmarkComputeSimilarity(b *testing.B) {
	original := generateText(2000)
	similar := strings.Replace(original, "the", "a", 10)

	cases := []struct {
		name      string
		original  domain.Document
		candidate domain.Document
	}{
		{"Absent", domain.AbsentDocument(), domain.NewDocument(original)},
		{"RawEqual", domain.NewDocument(original), domain.NewDocument(original)},
		{"Similar", domain.NewDocument(original), domain.NewDocument(similar)},
		{"CJK", domain.NewDocument(generateCJKText(2000)), domain.NewDocument(generateCJKText(1900))},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = lcs.ComputeSimilarity(bc.original, bc.candidate)
			}
		})
	}
}

// BenchmarkLCSSimilarity benchmarks the facade with different configurations
func BenchmarkLCSSimilarity(b *testing.B) {
	original := generateText(2000)
	similar := strings.Replace(original, "the", "a", 10)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lg, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		b.Fatalf("CreateLogger: %v", err)
	}
	defer lg.Close()

	configs := []struct {
		name string
		opts []lcssimilarity.Option
	}{
		{"Standard", nil},
		{"FastNormalizer", []lcssimilarity.Option{lcssimilarity.WithFastNormalizer()}},
		{"WithWarmUp", []lcssimilarity.Option{lcssimilarity.WithFastNormalizer(), lcssimilarity.WithWarmUp(true)}},
	}

	for _, cfg := range configs {
		b.Run(cfg.name, func(b *testing.B) {
			opts := append([]lcssimilarity.Option{lcssimilarity.WithLogger(lg)}, cfg.opts...)
			ls, err := lcssimilarity.New(opts...)
			if err != nil {
				b.Fatalf("New: %v", err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = ls.Compute(ctx, original, similar)
			}
		})
	}
}
