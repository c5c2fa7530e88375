package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "spaces only", input: "   ", expected: ""},
		{name: "mixed whitespace only", input: "\t \n\r\v\f", expected: ""},
		{name: "leading and trailing", input: " test ", expected: "test"},
		{name: "internal runs collapse to nothing", input: "a  b\t\tc\n\nd", expected: "abcd"},
		{name: "case and punctuation kept", input: "Hello, World!", expected: "Hello,World!"},
		{name: "unicode text", input: "今天 是\t星期天，天气晴。", expected: "今天是星期天，天气晴。"},
		{name: "unicode spaces are content", input: "a\u00a0b\u3000c\u2003d", expected: "a\u00a0b\u3000c\u2003d"},
		{name: "next line is content", input: "x\u0085y", expected: "x\u0085y"},
		{name: "ideographic space with ascii whitespace", input: "今天\u3000 天气\n", expected: "今天\u3000天气"},
	}

	factory := NewNormalizerFactory()
	normalizers := map[string]NormalizerType{
		"default": DefaultNormalizerType,
		"fast":    FastNormalizerType,
	}

	for normName, normType := range normalizers {
		n := factory.CreateNormalizer(normType)
		for _, tc := range tests {
			t.Run(normName+"/"+tc.name, func(t *testing.T) {
				if got := n.Normalize(tc.input); got != tc.expected {
					t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
				}
			})
		}
	}
}

func TestFastNormalizerMatchesDefaultOnLargeInput(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("The quick brown fox\tjumps über den faulen Hund.\n")
	}
	text := sb.String()

	want := NewDefaultNormalizer().Normalize(text)
	fast := NewFastNormalizer()
	// Run twice so the second call reuses a pooled buffer.
	for i := 0; i < 2; i++ {
		if got := fast.Normalize(text); got != want {
			t.Fatalf("fast normalizer diverged from default on iteration %d", i)
		}
	}
}
