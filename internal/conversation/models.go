package conversation

import (
	"strings"

	"vauxly/internal/emotion"
)

// Speaker identifies which party produced an utterance.
type Speaker string

const (
	SpeakerCustomer Speaker = "Customer"
	SpeakerRep      Speaker = "Rep"
)

// ParseSpeaker normalizes a free-form speaker label. Returns false when the
// label matches neither party.
func ParseSpeaker(label string) (Speaker, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "customer":
		return SpeakerCustomer, true
	case "rep", "representative":
		return SpeakerRep, true
	default:
		return "", false
	}
}

// Utterance is one timed, speaker-attributed unit of transcript text.
// Timestamps default to 0 when the source prediction carried no timing.
type Utterance struct {
	Speaker       Speaker             `json:"speaker"`
	Timestamp     float64             `json:"timestamp"`
	TimestampEnd  float64             `json:"timestamp_end"`
	Message       string              `json:"message"`
	TopSentiments []emotion.Sentiment `json:"top_sentiments"`
}

// Duration returns the utterance length in seconds, never negative.
func (u Utterance) Duration() float64 {
	if d := u.TimestampEnd - u.Timestamp; d > 0 {
		return d
	}
	return 0
}

// Bundle is the ordered transcript for one call, sorted ascending by
// utterance timestamp.
type Bundle struct {
	Conversation []Utterance `json:"conversation"`
}

// Empty reports whether the bundle holds no utterances.
func (b *Bundle) Empty() bool {
	return b == nil || len(b.Conversation) == 0
}

// BySpeaker returns the utterances produced by one party, in transcript
// order.
func (b *Bundle) BySpeaker(speaker Speaker) []Utterance {
	if b == nil {
		return nil
	}
	var out []Utterance
	for _, u := range b.Conversation {
		if u.Speaker == speaker {
			out = append(out, u)
		}
	}
	return out
}
