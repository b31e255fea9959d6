package metrics

import "vauxly/internal/conversation"

// SentimentHitCounts tallies how often each sentiment name appears among the
// representative's top sentiments, for the tone summary panel. Returns an
// empty map when the representative never spoke.
func SentimentHitCounts(bundle *conversation.Bundle) map[string]int {
	counts := make(map[string]int)
	for _, u := range bundle.BySpeaker(conversation.SpeakerRep) {
		for _, sentiment := range u.TopSentiments {
			counts[sentiment.Name]++
		}
	}
	return counts
}
