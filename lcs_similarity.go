// lcs_similarity.go
// Package lcssimilarity scores how much of one document reappears, in order,
// in another, to flag potential plagiarism. The metric is the longest common
// subsequence (LCS) of the two texts with all whitespace removed:
//
//	score = LCS(a, b) / ((len(a) + len(b)) / 2)
//
// A score of 1 means the texts are identical once whitespace is ignored; 0
// means they share no characters, or one of them is absent or blank. Lengths
// count Unicode code points and characters are compared exactly, without case
// folding. Time is O(len(a) * len(b)), so callers should cap document size
// for untrusted input.
//
// This version uses the functional options pattern to configure the
// plagiarism threshold, normalizer, logging and warm-up.
package lcssimilarity

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/go_lcs_similarity/internal/report"
	"github.com/baditaflorin/go_lcs_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of one comparison.
type Result = domain.Result

// Document is a text that may be absent.
type Document = domain.Document

// NewDocument wraps text as a present document.
func NewDocument(text string) Document { return domain.NewDocument(text) }

// AbsentDocument returns the absent document.
func AbsentDocument() Document { return domain.AbsentDocument() }

// WarmupConfig controls the optional warm-up run by WithWarmUpConfig.
type WarmupConfig = warmup.WarmupConfig

// DefaultWarmupConfig returns the warm-up settings used by WithWarmUp.
func DefaultWarmupConfig() WarmupConfig { return warmup.DefaultWarmupConfig() }

// DefaultThreshold is the flagging threshold used when none is configured.
var DefaultThreshold = lcs.DefaultConfig().Threshold

// ComputeSimilarity returns the LCS similarity of two texts in [0, 1].
// A nil pointer is an absent text and scores 0. Texts are read as UTF-8 and
// each invalid byte counts as U+FFFD, so texts differing only in invalid
// bytes score 1; validate untrusted input with utf8.ValidString first.
func ComputeSimilarity(text1, text2 *string) float64 {
	return lcs.ComputeSimilarity(domain.DocumentFromPtr(text1), domain.DocumentFromPtr(text2))
}

// LCSLength returns the longest common subsequence length of a and b in code points.
func LCSLength(a, b string) int {
	return lcs.LCSLength([]rune(a), []rune(b))
}

// FormatResult renders a score as a percentage with two decimals, e.g. "85.60%".
func FormatResult(score float64) string {
	return report.FormatResult(score)
}

// LCSSimilarity computes LCS similarity with a configured threshold and logger.
type LCSSimilarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring LCSSimilarity.
type Option func(*config)

type config struct {
	Threshold    float64
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig WarmupConfig
}

// WithThreshold sets the score at or above which results are flagged.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithCustomLogger sets a logger that already satisfies the ports.Logger
// interface, such as the zerolog adapter.
func WithCustomLogger(lg ports.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = lg
	}
}

// WithNormalizer sets a custom normalizer. It should only remove whitespace,
// otherwise scores diverge from ComputeSimilarity.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithFastNormalizer sets the pooled ASCII fast-path normalizer.
func WithFastNormalizer() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.FastNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new LCSSimilarity. If no logger is provided, a default logger is created.
func New(opts ...Option) (*LCSSimilarity, error) {
	cfg := &config{
		Threshold:    DefaultThreshold,
		WarmUpConfig: DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	calculator, err := lcs.NewCalculator(lcs.SimilarityConfig{Threshold: cfg.Threshold}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	ls := &LCSSimilarity{
		calculator: calculator,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
	}

	if cfg.WarmUp {
		ls.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return ls, nil
}

// Compute compares two present texts.
func (ls *LCSSimilarity) Compute(ctx context.Context, original, candidate string) Result {
	return ls.calculator.Compute(ctx, domain.NewDocument(original), domain.NewDocument(candidate))
}

// ComputeDocuments compares two documents, either of which may be absent.
func (ls *LCSSimilarity) ComputeDocuments(ctx context.Context, original, candidate Document) Result {
	return ls.calculator.Compute(ctx, original, candidate)
}

// WarmUp performs system warm-up to optimize performance.
func (ls *LCSSimilarity) WarmUp(ctx context.Context, wc WarmupConfig) {
	if ls.warmed {
		ls.logger.Debug("System already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(ls.logger, wc)
	mgr.RegisterCalculator(ls.calculator)
	mgr.RegisterNormalizer(ls.normalizer)

	mgr.WarmUp(ctx)
	ls.warmed = true
}
