package metrics

import (
	"strings"

	"vauxly/internal/conversation"
)

// WordsPerMinute is the representative's speaking rate: total words divided
// by total per-utterance speaking time. Returns 0 when the representative
// said nothing or the recorded durations sum to zero.
func WordsPerMinute(bundle *conversation.Bundle) float64 {
	rep := bundle.BySpeaker(conversation.SpeakerRep)
	if len(rep) == 0 {
		return 0
	}

	totalWords := 0
	totalSeconds := 0.0
	for _, u := range rep {
		totalWords += len(strings.Fields(u.Message))
		totalSeconds += u.TimestampEnd - u.Timestamp
	}

	totalMinutes := totalSeconds / 60
	if totalMinutes <= 0 {
		return 0
	}
	return float64(totalWords) / totalMinutes
}
