package metrics

import (
	"regexp"
	"strings"

	"vauxly/internal/conversation"
)

// fillerLexicon is the fixed set of words and phrases counted as verbal
// fillers.
var fillerLexicon = []string{"like", "uh", "um", "you know", "kinda", "kind of", "sorta", "sort of"}

var fillerPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(fillerLexicon))
	for _, filler := range fillerLexicon {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(filler)+`\b`))
	}
	return patterns
}()

// CountFillerWords counts whole-word, case-insensitive occurrences of the
// filler lexicon in one message.
func CountFillerWords(message string) int {
	if message == "" {
		return 0
	}
	count := 0
	for _, pattern := range fillerPatterns {
		count += len(pattern.FindAllStringIndex(message, -1))
	}
	return count
}

// FillerWordPercentage is the share of the representative's words that are
// fillers, scaled to 0-100. Returns 0 when the representative spoke no
// words.
func FillerWordPercentage(bundle *conversation.Bundle) float64 {
	totalWords := 0
	fillerCount := 0
	for _, u := range bundle.BySpeaker(conversation.SpeakerRep) {
		if u.Message == "" {
			continue
		}
		totalWords += len(strings.Fields(u.Message))
		fillerCount += CountFillerWords(u.Message)
	}
	if totalWords == 0 {
		return 0
	}
	return float64(fillerCount) / float64(totalWords) * 100
}
