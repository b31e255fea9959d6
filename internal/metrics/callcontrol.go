package metrics

import (
	"strings"

	"vauxly/internal/conversation"
)

// neutralCallControl is returned when neither party asked a question.
const neutralCallControl = 50

// CallControl measures which party drove the conversation, as the share of
// question marks appearing in the representative's messages versus the
// customer's, scaled to 0-100. A question-free call scores the neutral 50.
func CallControl(bundle *conversation.Bundle) float64 {
	repQuestions := 0
	customerQuestions := 0
	if bundle != nil {
		for _, u := range bundle.Conversation {
			count := strings.Count(u.Message, "?")
			switch u.Speaker {
			case conversation.SpeakerRep:
				repQuestions += count
			case conversation.SpeakerCustomer:
				customerQuestions += count
			}
		}
	}

	total := repQuestions + customerQuestions
	if total == 0 {
		return neutralCallControl
	}
	return float64(repQuestions) / float64(total) * 100
}
