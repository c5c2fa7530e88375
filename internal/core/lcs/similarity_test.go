package lcs

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

func doc(s string) domain.Document { return domain.NewDocument(s) }

func TestComputeSimilarityEdgeCases(t *testing.T) {
	absent := domain.AbsentDocument()
	tests := []struct {
		name     string
		text1    domain.Document
		text2    domain.Document
		expected float64
	}{
		{name: "absent first", text1: absent, text2: doc("text"), expected: 0},
		{name: "absent second", text1: doc("text"), text2: absent, expected: 0},
		{name: "both absent", text1: absent, text2: absent, expected: 0},
		{name: "absent and empty", text1: absent, text2: doc(""), expected: 0},
		{name: "both empty", text1: doc(""), text2: doc(""), expected: 1},
		{name: "empty and text", text1: doc(""), text2: doc("测试文本"), expected: 0},
		{name: "text and empty", text1: doc("测试文本"), text2: doc(""), expected: 0},
		{name: "whitespace only", text1: doc("   "), text2: doc("\t \t"), expected: 1},
		{name: "whitespace and empty", text1: doc(" \n "), text2: doc(""), expected: 1},
		{name: "whitespace and text", text1: doc(" \n "), text2: doc("x"), expected: 0},
		{name: "surrounding whitespace", text1: doc(" test "), text2: doc("test"), expected: 1},
		{name: "internal whitespace differs", text1: doc("a b\tc"), text2: doc("abc"), expected: 1},
		{name: "same single char", text1: doc("a"), text2: doc("a"), expected: 1},
		{name: "different single char", text1: doc("a"), text2: doc("b"), expected: 0},
		{name: "case sensitive", text1: doc("abc"), text2: doc("ABC"), expected: 0},
		{name: "half shared", text1: doc("ABCDGH"), text2: doc("AEDFHR"), expected: 0.5},
		{name: "completely different", text1: doc("今天天气很好"), text2: doc("明年计划去旅行"), expected: 0},
		{name: "ideographic space is content", text1: doc("a\u3000b"), text2: doc("ab"), expected: 2 / 2.5},
		{name: "no-break space is content", text1: doc("今天\u00a0天气"), text2: doc("今天天气"), expected: 4 / 4.5},
		{name: "invalid bytes decode alike", text1: doc("a\xffb c"), text2: doc("a\xfeb c"), expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeSimilarity(tc.text1, tc.text2); got != tc.expected {
				t.Errorf("ComputeSimilarity = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestComputeSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "a", "今天是星期天，天气晴，今天晚上我要去看电影。", "The quick brown fox."} {
		if got := ComputeSimilarity(doc(s), doc(s)); got != 1 {
			t.Errorf("ComputeSimilarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestComputeSimilarityPartial(t *testing.T) {
	got := ComputeSimilarity(
		doc("今天是星期天，天气晴，今天晚上我要去看电影。"),
		doc("今天是周天，天气晴朗，我晚上要去看电影。"),
	)
	if got <= 0.5 || got >= 1.0 {
		t.Errorf("expected similarity in (0.5, 1.0), got %v", got)
	}
}

func TestComputeSimilarityRangeAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ab c\t\nxyz今天星期🙂é　")
	for i := 0; i < 500; i++ {
		a := doc(string(randomRunes(rng, alphabet, rng.Intn(60))))
		b := doc(string(randomRunes(rng, alphabet, rng.Intn(60))))

		ab := ComputeSimilarity(a, b)
		ba := ComputeSimilarity(b, a)
		if ab < 0 || ab > 1 {
			t.Fatalf("score %v out of range for %q, %q", ab, a.Text(), b.Text())
		}
		if ab != ba {
			t.Fatalf("asymmetric score for %q, %q: %v vs %v", a.Text(), b.Text(), ab, ba)
		}
	}
}

func TestComputeSimilarityThousandCharDocuments(t *testing.T) {
	base := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 23)[:1000]
	edited := strings.ReplaceAll(base, "lazy", "sleepy")

	start := time.Now()
	score := ComputeSimilarity(doc(base), doc(edited))
	elapsed := time.Since(start)

	if score <= 0.8 || score >= 1 {
		t.Errorf("expected high but imperfect similarity, got %v", score)
	}
	if elapsed > 2*time.Second {
		t.Errorf("1000-char comparison took %v", elapsed)
	}
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: " a\tb\nc\r\v\fd e ", expected: "abcde"},
		{input: "a\u3000b\u00a0c\u0085d e", expected: "a\u3000b\u00a0c\u0085de"},
		{input: "今天 是\u3000星期天", expected: "今天是\u3000星期天"},
	}

	for _, tc := range tests {
		if got := StripWhitespace(tc.input); got != tc.expected {
			t.Errorf("StripWhitespace(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestRuneBuffersReleasedBetweenCalls(t *testing.T) {
	long := strings.Repeat("今天是星期天 ", 50)
	first := ComputeSimilarity(doc(long), doc(long+"x"))
	for i := 0; i < 20; i++ {
		if got := ComputeSimilarity(doc(long), doc(long+"x")); got != first {
			t.Fatalf("call %d: score %v differs from first call %v", i, got, first)
		}
		if got := ComputeSimilarity(doc("ab"), doc("ba")); got != 0.5 {
			t.Fatalf("call %d: short pair scored %v, want 0.5", i, got)
		}
	}
}
