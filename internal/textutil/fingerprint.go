package textutil

import (
	"math"
	"strings"
	"unicode"
)

// Fingerprint is a normalized term-frequency vector over the tokens of a
// text, used for fuzzy utterance matching.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// Tokenize lowercases text and splits it on non-alphanumeric runes. Empty
// tokens are dropped; short tokens are kept since call transcripts lean on
// words like "um" and "ok".
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return fields
}

// NewFingerprint builds a fingerprint from text. Returns nil when the text
// has no tokens.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	var sumSquares float64
	for _, count := range counts {
		sumSquares += count * count
	}

	return &Fingerprint{tokens: counts, norm: math.Sqrt(sumSquares)}
}

// Cosine computes the cosine similarity between two fingerprints. Returns 0
// when either side is nil or has zero norm.
func Cosine(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}
