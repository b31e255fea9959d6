package conversation

import (
	"strings"

	"vauxly/internal/textutil"
)

// fuzzyMatchThreshold is the minimum fingerprint cosine similarity accepted
// when no utterance contains the phrase verbatim.
const fuzzyMatchThreshold = 0.5

// FindMessageExact returns the index of the first utterance whose message
// contains the phrase, case-insensitively. Returns -1 and false when no
// utterance contains it.
func FindMessageExact(utterances []Utterance, phrase string) (int, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return -1, false
	}

	lowered := strings.ToLower(phrase)
	for i, u := range utterances {
		if strings.Contains(strings.ToLower(u.Message), lowered) {
			return i, true
		}
	}
	return -1, false
}

// FindMessage locates a phrase the way FindMessageExact does, then falls
// back to comparing token fingerprints and accepts the best match at or
// above fuzzyMatchThreshold. Returns -1 and false when nothing matches.
//
// Callers typically jump audio playback to the matched utterance's
// timestamp.
func FindMessage(utterances []Utterance, phrase string) (int, bool) {
	if i, ok := FindMessageExact(utterances, phrase); ok {
		return i, ok
	}
	if strings.TrimSpace(phrase) == "" {
		return -1, false
	}

	needle := textutil.NewFingerprint(phrase)
	if needle == nil {
		return -1, false
	}

	bestIndex := -1
	bestScore := 0.0
	for i, u := range utterances {
		score := textutil.Cosine(needle, textutil.NewFingerprint(u.Message))
		if score > bestScore {
			bestIndex = i
			bestScore = score
		}
	}
	if bestScore >= fuzzyMatchThreshold {
		return bestIndex, true
	}
	return -1, false
}
