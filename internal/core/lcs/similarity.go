package lcs

import (
	"strings"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

// Stages record which rule decided a score.
const (
	StageAbsent    = "absent"
	StageRawEqual  = "raw_equal"
	StageBothEmpty = "both_empty"
	StageOneEmpty  = "one_empty"
	StageLCS       = "lcs"
)

// IsWhitespace reports whether r is one of the six ASCII whitespace
// characters: space, tab, newline, vertical tab, form feed and carriage
// return. Other Unicode spaces such as U+00A0 and U+3000 are content.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// StripWhitespace removes every whitespace rune from text.
func StripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if IsWhitespace(r) {
			return -1
		}
		return r
	}, text)
}

// ComputeSimilarity returns the LCS similarity of two documents in [0, 1].
// It never fails: absent input scores 0.
//
// Text is decoded as UTF-8 and every invalid byte becomes U+FFFD, so two
// texts differing only in their invalid bytes compare as equal once the
// raw-equality check has failed. Validate input first when that matters.
func ComputeSimilarity(text1, text2 domain.Document) float64 {
	o := decide(text1, text2, StripWhitespace)
	defer o.release()
	if o.stage == StageLCS {
		o.finish()
	}
	return o.score
}

// outcome carries the intermediate values of one evaluation. The rune
// slices are pooled and valid until release.
type outcome struct {
	stage     string
	score     float64
	origRunes []rune
	candRunes []rune
	lcsLength int

	origBuf *[]rune
	candBuf *[]rune
}

// pooledRunes decodes s into a buffer from runePool.
func pooledRunes(s string) *[]rune {
	buf := runePool.Get()
	for _, r := range s {
		*buf = append(*buf, r)
	}
	return buf
}

// release hands the rune buffers back to the pool.
func (o *outcome) release() {
	if o.origBuf != nil {
		runePool.Put(o.origBuf)
	}
	if o.candBuf != nil && o.candBuf != o.origBuf {
		runePool.Put(o.candBuf)
	}
	o.origBuf, o.candBuf = nil, nil
	o.origRunes, o.candRunes = nil, nil
}

func (o outcome) origLen() int { return len(o.origRunes) }
func (o outcome) candLen() int { return len(o.candRunes) }

// decide applies the edge-case rules in order. When no rule settles the score
// it returns stage StageLCS and the caller runs finish.
func decide(original, candidate domain.Document, normalize func(string) string) outcome {
	if !original.Present() || !candidate.Present() {
		return outcome{stage: StageAbsent, score: 0}
	}
	// Raw equality is checked before normalization.
	if original.Equal(candidate) {
		buf := pooledRunes(normalize(original.Text()))
		return outcome{
			stage:     StageRawEqual,
			score:     1,
			origRunes: *buf,
			candRunes: *buf,
			lcsLength: len(*buf),
			origBuf:   buf,
			candBuf:   buf,
		}
	}

	origBuf := pooledRunes(normalize(original.Text()))
	candBuf := pooledRunes(normalize(candidate.Text()))
	o := outcome{
		origRunes: *origBuf,
		candRunes: *candBuf,
		origBuf:   origBuf,
		candBuf:   candBuf,
	}
	switch {
	case o.origLen() == 0 && o.candLen() == 0:
		o.stage, o.score = StageBothEmpty, 1
	case o.origLen() == 0 || o.candLen() == 0:
		o.stage, o.score = StageOneEmpty, 0
	default:
		o.stage = StageLCS
	}
	return o
}

// finish runs the dynamic program and derives the ratio.
func (o *outcome) finish() {
	o.lcsLength = LCSLength(o.origRunes, o.candRunes)
	mean := float64(o.origLen()+o.candLen()) / 2.0
	o.score = float64(o.lcsLength) / mean
}
