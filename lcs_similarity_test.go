// lcs_similarity_test.go
package lcssimilarity

import (
	"context"
	"io"
	"testing"

	"github.com/baditaflorin/l"
)

func quietLogger(t *testing.T) l.Logger {
	t.Helper()
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("CreateLogger: %v", err)
	}
	t.Cleanup(func() { _ = lg.Close() })
	return lg
}

func strPtr(s string) *string { return &s }

func TestComputeSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		text1    *string
		text2    *string
		expected float64
	}{
		{name: "identical", text1: strPtr("今天是星期天，天气晴。"), text2: strPtr("今天是星期天，天气晴。"), expected: 1},
		{name: "nil first", text1: nil, text2: strPtr("text"), expected: 0},
		{name: "nil second", text1: strPtr("text"), text2: nil, expected: 0},
		{name: "both nil", text1: nil, text2: nil, expected: 0},
		{name: "both empty", text1: strPtr(""), text2: strPtr(""), expected: 1},
		{name: "empty and text", text1: strPtr(""), text2: strPtr("text"), expected: 0},
		{name: "whitespace only", text1: strPtr("   "), text2: strPtr("\t \t"), expected: 1},
		{name: "whitespace insensitive", text1: strPtr(" test "), text2: strPtr("test"), expected: 1},
		{name: "single char match", text1: strPtr("a"), text2: strPtr("a"), expected: 1},
		{name: "single char mismatch", text1: strPtr("a"), text2: strPtr("b"), expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeSimilarity(tc.text1, tc.text2); got != tc.expected {
				t.Errorf("ComputeSimilarity = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestLCSLength(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"ABCDGH", "AEDFHR", 3},
		{"AGGTAB", "GXTXAYB", 4},
		{"", "ABC", 0},
		{"ABC", "ABC", 3},
	}
	for _, tc := range tests {
		if got := LCSLength(tc.a, tc.b); got != tc.expected {
			t.Errorf("LCSLength(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestFormatResult(t *testing.T) {
	tests := map[float64]string{
		0.0:     "0.00%",
		1.0:     "100.00%",
		0.12345: "12.35%",
		0.856:   "85.60%",
	}
	for score, want := range tests {
		if got := FormatResult(score); got != want {
			t.Errorf("FormatResult(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestNewAndCompute(t *testing.T) {
	ls, err := New(WithThreshold(0.8), WithLogger(quietLogger(t)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := ls.Compute(context.Background(), "The quick brown fox", "The quick brown fox!")
	if !result.Flagged {
		t.Errorf("expected near copy to be flagged, got %+v", result)
	}
	if result.Threshold != 0.8 {
		t.Errorf("Threshold = %v, want 0.8", result.Threshold)
	}

	result = ls.ComputeDocuments(context.Background(), AbsentDocument(), NewDocument("x"))
	if result.Score != 0 || result.Flagged {
		t.Errorf("expected absent document to score 0 unflagged, got %+v", result)
	}
}

func TestNewRejectsInvalidThreshold(t *testing.T) {
	if _, err := New(WithThreshold(1.5), WithLogger(quietLogger(t))); err == nil {
		t.Error("expected error for threshold above 1")
	}
}

func TestFastNormalizerAgreesWithDefault(t *testing.T) {
	lg := quietLogger(t)
	def, err := New(WithLogger(lg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fast, err := New(WithLogger(lg), WithFastNormalizer())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pairs := [][2]string{
		{"今天是星期天，天气晴，今天晚上我要去看电影。", "今天是周天，天气晴朗，我晚上要去看电影。"},
		{"The quick brown fox", "the  quick\tbrown\nfox"},
		{"", "   "},
	}
	for _, p := range pairs {
		a := def.Compute(context.Background(), p[0], p[1]).Score
		b := fast.Compute(context.Background(), p[0], p[1]).Score
		if a != b {
			t.Errorf("scores differ for %q/%q: default %v, fast %v", p[0], p[1], a, b)
		}
	}
}

func TestWarmUpOnlyOnce(t *testing.T) {
	ls, err := New(
		WithLogger(quietLogger(t)),
		WithWarmUpConfig(WarmupConfig{Concurrency: 1, Iterations: 3, SampleTextSize: 50}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !ls.warmed {
		t.Fatal("expected warm-up to run during New")
	}
	// A second call is a no-op.
	ls.WarmUp(context.Background(), DefaultWarmupConfig())
}

func TestNewUsesDefaultThreshold(t *testing.T) {
	ls, err := New(WithLogger(quietLogger(t)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := ls.Compute(context.Background(), "ABCDGH", "AEDFHR")
	if result.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want DefaultThreshold %v", result.Threshold, DefaultThreshold)
	}
	if result.Flagged != (result.Score >= DefaultThreshold) {
		t.Errorf("Flagged = %v for score %v", result.Flagged, result.Score)
	}
}

func TestComputeSimilarityInvalidUTF8(t *testing.T) {
	a, b := "a\xffb c", "a\xfeb c"
	if got := ComputeSimilarity(&a, &b); got != 1 {
		t.Errorf("ComputeSimilarity = %v, want 1 for texts differing only in invalid bytes", got)
	}
}
